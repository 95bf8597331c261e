package rank

import (
	"sort"

	"github.com/basquehq/basque-backend/internal/model"
)

// DefaultTaskCount is how many suggested tasks the dashboard shows.
const DefaultTaskCount = 8

// SelectEligibleActions picks the actions to suggest to a user: those
// whose eligibility matches the user's answers (ANY_MATCH, with an empty
// condition set meaning universal), minus actions already completed,
// sorted by point value descending. Equal point values keep their
// catalog order. topN <= 0 falls back to DefaultTaskCount.
func SelectEligibleActions(user *model.User, actions []model.Action, topN int) []model.Action {
	if topN <= 0 {
		topN = DefaultTaskCount
	}
	profile := user.Profile()

	eligible := make([]model.Action, 0, len(actions))
	for _, a := range actions {
		if user.HasCompleted(a.ID) {
			continue
		}
		if !a.ShowIf.Matches(profile) {
			continue
		}
		eligible = append(eligible, a)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].PointValue > eligible[j].PointValue
	})

	if len(eligible) > topN {
		eligible = eligible[:topN]
	}
	return eligible
}
