// Package score computes the Basque sustainability score shown right
// after the quiz. The rubric is a product contract shared with the
// frontend; changing a weight here changes every displayed score.
package score

import (
	"strings"

	"github.com/basquehq/basque-backend/internal/model"
)

// Compute starts from 100 and applies the fixed deductions per answer,
// clamped to [0, 100].
func Compute(u *model.User) int {
	score := 100

	switch u.Transportation {
	case "Drive alone":
		score -= 30
	case "Carpool":
		score -= 15
	case "Public transit":
		score -= 5
	}

	switch u.Diet {
	case "Meat with most meals":
		score -= 25
	case "Meat sometimes":
		score -= 10
	case "Vegetarian":
		score -= 5
	}

	if strings.Contains(u.HomeEnergy, "gas") {
		score -= 15
	}

	th := u.Thermostat
	if th == "72°F+ year-round" {
		score -= 10
	} else if strings.Contains(th, "70") {
		score -= 6
	} else if strings.Contains(th, "68") || strings.Contains(th, "75") {
		score -= 3
	}

	rec := strings.ToLower(u.Recycling)
	if strings.Contains(rec, "rarely") {
		score -= 8
	} else if strings.Contains(rec, "some") {
		score -= 4
	}

	switch u.WaterUsage {
	case "High":
		score -= 6
	case "Moderate":
		score -= 3
	}

	switch u.FlightsPerYear {
	case "6+":
		score -= 20
	case "3-5":
		score -= 12
	case "1-2":
		score -= 6
	}

	if strings.Contains(u.HomeSize, "Large") {
		score -= 6
	} else if strings.Contains(u.HomeSize, "Medium") {
		score -= 3
	}

	switch u.WFHDays {
	case "0":
		score -= 5
	case "1-2":
		score -= 3
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// Band returns the encouragement line for a score tier.
func Band(score int) string {
	switch {
	case score >= 80:
		return "Great job — you're already very climate-conscious!"
	case score >= 60:
		return "Solid foundation — a few tweaks can make a big impact."
	case score >= 40:
		return "Lots of opportunity — try a few actions below to level up."
	default:
		return "Every step counts — start small and build momentum."
	}
}
