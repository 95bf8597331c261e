package model

import "testing"

func TestEligibilityMatches(t *testing.T) {
	profile := map[string]string{
		"transportation": "Drive alone",
		"diet":           "Vegetarian",
		"homeEnergy":     "",
	}

	tests := []struct {
		name string
		e    Eligibility
		want bool
	}{
		{"empty is universal", Eligibility{}, true},
		{"nil is universal", nil, true},
		{"single match", Eligibility{"transportation": {"Drive alone"}}, true},
		{"value in set", Eligibility{"transportation": {"Carpool", "Drive alone"}}, true},
		{"no match", Eligibility{"transportation": {"Carpool"}}, false},
		{"any condition suffices", Eligibility{"transportation": {"Carpool"}, "diet": {"Vegetarian"}}, true},
		{"unknown field ignored", Eligibility{"budget": {"Low"}}, false},
		{"empty profile value ignored", Eligibility{"homeEnergy": {""}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Matches(profile); got != tt.want {
				t.Fatalf("got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestEligibilityRoundTrip(t *testing.T) {
	e := Eligibility{"diet": {"Meat sometimes", "Vegetarian"}}
	v, err := e.Value()
	if err != nil {
		t.Fatal(err)
	}
	var back Eligibility
	if err := back.Scan(v); err != nil {
		t.Fatal(err)
	}
	if len(back["diet"]) != 2 || back["diet"][0] != "Meat sometimes" {
		t.Fatalf("back=%+v", back)
	}
}
