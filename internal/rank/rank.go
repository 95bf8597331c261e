// Package rank is the ZIP-code aggregation core. Every function here is
// a pure transformation over user/action slices already fetched by the
// caller; the package never touches the database or the network.
package rank

import (
	"math"
	"sort"

	"github.com/basquehq/basque-backend/internal/model"
)

// DefaultLimit is how many ZIPs the leaderboard displays.
const DefaultLimit = 50

// ZipAggregate is the per-ZIP leaderboard row. AvgPoints is rounded to
// one decimal for display; ranking happens on the unrounded average.
type ZipAggregate struct {
	ZipCode     string  `json:"zipCode"`
	TotalPoints int     `json:"totalPoints"`
	UserCount   int     `json:"userCount"`
	AvgPoints   float64 `json:"avgPoints"`
	TopScore    int     `json:"topScore"`
	Rank        int     `json:"rank"`
}

type zipGroup struct {
	zip    string
	total  int
	count  int
	top    int
	rawAvg float64
}

func groupByZip(users []model.User) []zipGroup {
	byZip := make(map[string]*zipGroup)
	order := make([]string, 0)
	for i := range users {
		u := &users[i]
		if u.ZipCode == "" {
			continue
		}
		g, ok := byZip[u.ZipCode]
		if !ok {
			g = &zipGroup{zip: u.ZipCode}
			byZip[u.ZipCode] = g
			order = append(order, u.ZipCode)
		}
		g.total += u.Points
		g.count++
		if u.Points > g.top {
			g.top = u.Points
		}
	}
	groups := make([]zipGroup, 0, len(order))
	for _, zip := range order {
		g := byZip[zip]
		g.rawAvg = float64(g.total) / float64(g.count)
		groups = append(groups, *g)
	}
	return groups
}

// rankGroups sorts by unrounded average descending (zip ascending among
// exact ties, so output is deterministic) and assigns standard
// competition ranks: a run of k tied entries starting at sorted position
// p all get rank p, and the next distinct average gets rank p+k.
func rankGroups(groups []zipGroup) []ZipAggregate {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].rawAvg != groups[j].rawAvg {
			return groups[i].rawAvg > groups[j].rawAvg
		}
		return groups[i].zip < groups[j].zip
	})

	out := make([]ZipAggregate, len(groups))
	rank := 0
	prev := math.Inf(1)
	for i, g := range groups {
		if g.rawAvg != prev {
			rank = i + 1
			prev = g.rawAvg
		}
		out[i] = ZipAggregate{
			ZipCode:     g.zip,
			TotalPoints: g.total,
			UserCount:   g.count,
			AvgPoints:   round1(g.rawAvg),
			TopScore:    g.top,
			Rank:        rank,
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ComputeLeaderboard groups users by ZIP, ranks the ZIPs by average
// points, and returns the first limit entries in rank order. Users with
// an empty ZIP are excluded. limit <= 0 falls back to DefaultLimit.
func ComputeLeaderboard(users []model.User, limit int) []ZipAggregate {
	if limit <= 0 {
		limit = DefaultLimit
	}
	ranked := rankGroups(groupByZip(users))
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// FindZipRank computes the full untruncated ranking and returns the
// aggregate for zip with its true numeric rank. The second return is
// false when no user carries that ZIP.
func FindZipRank(users []model.User, zip string) (ZipAggregate, bool) {
	for _, agg := range rankGroups(groupByZip(users)) {
		if agg.ZipCode == zip {
			return agg, true
		}
	}
	return ZipAggregate{}, false
}

// CategoryStat is one row of a user's per-category completion summary.
type CategoryStat struct {
	Category    string `json:"category"`
	Count       int    `json:"count"`
	TotalPoints int    `json:"totalPoints"`
}

// CategoryBreakdown resolves the user's completed action ids against the
// catalog and sums points and counts per category, in first-completion
// order. Ids that no longer resolve (deleted actions) are skipped.
func CategoryBreakdown(user *model.User, actions []model.Action) []CategoryStat {
	byID := make(map[uint64]*model.Action, len(actions))
	for i := range actions {
		byID[actions[i].ID] = &actions[i]
	}

	idx := make(map[string]int)
	stats := make([]CategoryStat, 0)
	for _, id := range user.CompletedActionIDs() {
		a, ok := byID[id]
		if !ok {
			continue
		}
		i, ok := idx[a.Category]
		if !ok {
			i = len(stats)
			idx[a.Category] = i
			stats = append(stats, CategoryStat{Category: a.Category})
		}
		stats[i].Count++
		stats[i].TotalPoints += a.PointValue
	}
	return stats
}

// Comparison summarizes a ZIP community for the stats page.
type Comparison struct {
	AvgPoints   float64 `json:"avgPoints"`
	AvgActions  float64 `json:"avgActions"`
	MemberCount int     `json:"totalUsers"`
}

// CommunityComparison averages points and completed-action counts over
// the users sharing zip. An empty group yields the zero value so the
// display layer always has something to render.
func CommunityComparison(users []model.User, zip string) Comparison {
	var points, actions, n int
	for i := range users {
		if users[i].ZipCode != zip {
			continue
		}
		points += users[i].Points
		actions += len(users[i].CompletedActions)
		n++
	}
	if n == 0 {
		return Comparison{}
	}
	return Comparison{
		AvgPoints:   round1(float64(points) / float64(n)),
		AvgActions:  round1(float64(actions) / float64(n)),
		MemberCount: n,
	}
}
