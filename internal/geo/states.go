package geo

// stateSymbols are the playful badges the frontend shows next to a state.
var stateSymbols = map[string]string{
	"AL": "⭐", "AK": "❄️", "AZ": "🌵", "AR": "💎",
	"CA": "🐻", "CO": "⛰️", "CT": "⚓", "DE": "💙",
	"FL": "🌴", "GA": "🍑", "HI": "🌺", "ID": "🥔",
	"IL": "🌽", "IN": "🏎️", "IA": "🌾", "KS": "🌻",
	"KY": "🐴", "LA": "🎺", "ME": "🦞", "MD": "🦀",
	"MA": "⛵", "MI": "🚗", "MN": "🏒", "MS": "🎸",
	"MO": "🎭", "MT": "🏔️", "NE": "🌽", "NV": "🎰",
	"NH": "🍁", "NJ": "🌊", "NM": "🌶️", "NY": "🗽",
	"NC": "✈️", "ND": "🦬", "OH": "🏈", "OK": "🤠",
	"OR": "🌲", "PA": "🔔", "RI": "⚓", "SC": "🏖️",
	"SD": "🗻", "TN": "🎵", "TX": "⭐", "UT": "⛷️",
	"VT": "🍁", "VA": "🏛️", "WA": "🌲", "WV": "⛰️",
	"WI": "🧀", "WY": "🦌", "DC": "🏛️",
}

var stateColors = map[string]string{
	"AL": "#C8102E", "AK": "#0D3B66", "AZ": "#CD5C5C", "AR": "#0066CC",
	"CA": "#FDB515", "CO": "#003F87", "CT": "#00247D", "DE": "#006EB6",
	"FL": "#EE7F2D", "GA": "#CC0000", "HI": "#0052A5", "ID": "#2E5090",
	"IL": "#E84A27", "IN": "#002868", "IA": "#FFD700", "KS": "#0033A0",
	"KY": "#003DA5", "LA": "#003087", "ME": "#003DA5", "MD": "#E03C31",
	"MA": "#003F87", "MI": "#002F6C", "MN": "#003F87", "MS": "#003087",
	"MO": "#003F87", "MT": "#003F87", "NE": "#FFD700", "NV": "#003F87",
	"NH": "#003F87", "NJ": "#E84A27", "NM": "#FFD700", "NY": "#003F87",
	"NC": "#003087", "ND": "#0033A0", "OH": "#C8102E", "OK": "#0033A0",
	"OR": "#003F87", "PA": "#003F87", "RI": "#0033A0", "SC": "#003087",
	"SD": "#003F87", "TN": "#C8102E", "TX": "#002868", "UT": "#002868",
	"VT": "#003F87", "VA": "#003087", "WA": "#00534C", "WV": "#0033A0",
	"WI": "#003F87", "WY": "#003F87", "DC": "#CC0000",
}

// StateSymbol returns the badge emoji for a state abbreviation.
func StateSymbol(abbr string) string {
	if s, ok := stateSymbols[abbr]; ok {
		return s
	}
	return "🏴"
}

// StateColor returns the badge color for a state abbreviation.
func StateColor(abbr string) string {
	if c, ok := stateColors[abbr]; ok {
		return c
	}
	return "#003F87"
}
