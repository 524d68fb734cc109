package models

import (
	"math"
	"testing"
	"time"
)

func TestCalculateCarbonAbsorption(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tree := Tree{
		Species:   "Quercus robur",
		Height:    5,
		PlantDate: now.AddDate(-1, 0, 0),
	}

	// one year old oak at half the size cap: 10 * 1.5 * 0.5 * 1.0
	got := tree.CalculateCarbonAbsorption(now)
	if math.Abs(got-7.5) > 0.1 {
		t.Errorf("Expected roughly 7.5 kg, got %f", got)
	}
}

func TestCarbonAbsorptionUnknownSpecies(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tree := Tree{
		Species:   "Ficus mysteriosa",
		Height:    10,
		PlantDate: now.AddDate(-1, 0, 0),
	}

	// neutral multiplier: 10 * 1.0 * 1.0 * 1.0
	got := tree.CalculateCarbonAbsorption(now)
	if math.Abs(got-10) > 0.1 {
		t.Errorf("Expected roughly 10 kg, got %f", got)
	}
}

func TestCarbonAbsorptionHeightCap(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	short := Tree{Species: "Betula pendula", Height: 10, PlantDate: now.AddDate(-2, 0, 0)}
	tall := Tree{Species: "Betula pendula", Height: 30, PlantDate: now.AddDate(-2, 0, 0)}

	if short.CalculateCarbonAbsorption(now) != tall.CalculateCarbonAbsorption(now) {
		t.Error("Expected size multiplier to cap at height 10")
	}
}

func TestCarbonAbsorptionNeverNegative(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// plant date in the future clamps age to zero
	tree := Tree{Species: "Pinus strobus", Height: 2, PlantDate: now.AddDate(0, 0, 5)}
	if got := tree.CalculateCarbonAbsorption(now); got != 0 {
		t.Errorf("Expected 0 for a future plant date, got %f", got)
	}
}

func TestCarbonAbsorptionMonotonicWithAge(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tree := Tree{Species: "Acer saccharum", Height: 4, PlantDate: now.AddDate(0, -6, 0)}
	younger := tree.CalculateCarbonAbsorption(now)
	older := tree.CalculateCarbonAbsorption(now.AddDate(0, 6, 0))

	if older <= younger {
		t.Errorf("Expected absorption to grow with age, got %f then %f", younger, older)
	}
}

func ratings(values ...int) []CareRecord {
	records := make([]CareRecord, len(values))
	for i, v := range values {
		records[i] = CareRecord{HealthRating: v}
	}
	return records
}

func TestUpdateHealthStatus(t *testing.T) {
	tests := []struct {
		name    string
		records []CareRecord
		want    string
	}{
		{"no records resets to fair", nil, HealthFair},
		{"average 5 is excellent", ratings(5, 5, 5), HealthExcellent},
		{"average exactly 4.5 is excellent", ratings(4, 5), HealthExcellent},
		{"average 4 is good", ratings(4, 4), HealthGood},
		{"average exactly 3.5 is good", ratings(3, 4), HealthGood},
		{"average 3 is fair", ratings(3, 3), HealthFair},
		{"average exactly 2.5 is fair", ratings(2, 3), HealthFair},
		{"average 2.4 is poor", ratings(2, 2, 2, 3, 3), HealthPoor},
		{"average 1 is poor", ratings(1, 1), HealthPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := Tree{HealthStatus: HealthExcellent}
			tree.UpdateHealthStatus(tt.records)
			if tree.HealthStatus != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, tree.HealthStatus)
			}
		})
	}
}

func TestHealthScore(t *testing.T) {
	scores := map[string]int{
		HealthExcellent: 4,
		HealthGood:      3,
		HealthFair:      2,
		HealthPoor:      1,
	}
	for status, want := range scores {
		tree := Tree{HealthStatus: status}
		if got := tree.HealthScore(); got != want {
			t.Errorf("Expected score %d for %s, got %d", want, status, got)
		}
	}
}
