package rank

import (
	"testing"

	"github.com/basquehq/basque-backend/internal/model"
)

func TestSelectEligibleActionsAnyMatch(t *testing.T) {
	user := &model.User{Transportation: "Drive alone"}
	actions := []model.Action{
		{ID: 1, Title: "A", PointValue: 100, ShowIf: model.Eligibility{"transportation": {"Drive alone"}}},
		{ID: 2, Title: "B", PointValue: 50, ShowIf: model.Eligibility{}},
	}

	got := SelectEligibleActions(user, actions, DefaultTaskCount)
	if len(got) != 2 || got[0].Title != "A" || got[1].Title != "B" {
		t.Fatalf("got=%+v", got)
	}
}

func TestSelectEligibleActionsFiltersNonMatching(t *testing.T) {
	user := &model.User{Transportation: "Bike/Walk", Diet: "Vegetarian"}
	actions := []model.Action{
		{ID: 1, PointValue: 100, ShowIf: model.Eligibility{"transportation": {"Drive alone", "Carpool"}}},
		{ID: 2, PointValue: 80, ShowIf: model.Eligibility{"diet": {"Vegetarian"}, "transportation": {"Drive alone"}}},
		{ID: 3, PointValue: 40, ShowIf: model.Eligibility{}},
	}

	got := SelectEligibleActions(user, actions, DefaultTaskCount)
	// 1 fails both conditions; 2 passes via diet alone (ANY_MATCH); 3 is universal
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("got=%+v", got)
	}
}

func TestSelectEligibleActionsExcludesCompleted(t *testing.T) {
	user := &model.User{
		CompletedActions: []model.CompletedAction{{ActionID: 1}},
	}
	actions := []model.Action{
		{ID: 1, PointValue: 100},
		{ID: 2, PointValue: 50},
	}

	got := SelectEligibleActions(user, actions, DefaultTaskCount)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("got=%+v", got)
	}
}

func TestSelectEligibleActionsStableOrderAndTruncation(t *testing.T) {
	user := &model.User{}
	actions := []model.Action{
		{ID: 1, PointValue: 50},
		{ID: 2, PointValue: 90},
		{ID: 3, PointValue: 50},
		{ID: 4, PointValue: 70},
	}

	got := SelectEligibleActions(user, actions, 3)
	if len(got) != 3 {
		t.Fatalf("len=%d", len(got))
	}
	// ties keep catalog order: 90, 70, then id 1 before id 3
	wantIDs := []uint64{2, 4, 1}
	for i, a := range got {
		if a.ID != wantIDs[i] {
			t.Fatalf("pos %d: id=%d want %d (%+v)", i, a.ID, wantIDs[i], got)
		}
	}
}
