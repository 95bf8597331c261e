package score

import (
	"testing"

	"github.com/basquehq/basque-backend/internal/model"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		user model.User
		want int
	}{
		{"no answers keeps 100", model.User{}, 100},
		{
			"greenest answers",
			model.User{Transportation: "Bike/Walk", Diet: "Mostly plant-based", FlightsPerYear: "0", WFHDays: "5"},
			100,
		},
		{
			"drive alone only",
			model.User{Transportation: "Drive alone"},
			70,
		},
		{
			"mixed profile",
			model.User{
				Transportation: "Carpool",          // -15
				Diet:           "Meat sometimes",   // -10
				HomeEnergy:     "Mostly gas",       // -15
				Thermostat:     "Around 70°F",      // -6
				Recycling:      "Sometimes",        // -4
				WaterUsage:     "Moderate",         // -3
				FlightsPerYear: "1-2",              // -6
				HomeSize:       "Medium apartment", // -3
				WFHDays:        "1-2",              // -3
			},
			35,
		},
		{
			"worst case clamps at zero",
			model.User{
				Transportation: "Drive alone",
				Diet:           "Meat with most meals",
				HomeEnergy:     "All gas",
				Thermostat:     "72°F+ year-round",
				Recycling:      "Rarely",
				WaterUsage:     "High",
				FlightsPerYear: "6+",
				HomeSize:       "Large house",
				WFHDays:        "0",
			},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(&tt.user); got != tt.want {
				t.Fatalf("got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestBand(t *testing.T) {
	if Band(85) == Band(20) {
		t.Fatal("bands should differ across tiers")
	}
	for _, s := range []int{0, 39, 40, 59, 60, 79, 80, 100} {
		if Band(s) == "" {
			t.Fatalf("empty band for %d", s)
		}
	}
}
