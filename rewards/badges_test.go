package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func badgeNames(badges []Badge) []string {
	var names []string
	for _, b := range badges {
		names = append(names, b.Name)
	}
	return names
}

func TestEvaluateCompletionThresholds(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		want      []string
	}{
		{"first completion", 1, []string{"First Step"}},
		{"fifth completion", 5, []string{"Challenger"}},
		{"tenth completion", 10, []string{"Eco Warrior"}},
		{"twenty fifth completion", 25, []string{"Green Champion"}},
		{"fiftieth completion", 50, []string{"Planet Protector"}},
		{"between thresholds", 7, nil},
		{"past a skipped threshold", 6, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(Stats{ChallengesCompleted: tt.completed}, nil, "")
			assert.Equal(t, tt.want, badgeNames(got))
		})
	}
}

func TestEvaluateCreationThresholds(t *testing.T) {
	got := Evaluate(Stats{ChallengesCreated: 1}, nil, "")
	assert.Equal(t, []string{"Creator"}, badgeNames(got))

	got = Evaluate(Stats{ChallengesCreated: 5}, nil, "")
	assert.Equal(t, []string{"Innovator"}, badgeNames(got))

	got = Evaluate(Stats{ChallengesCreated: 10}, nil, "")
	assert.Equal(t, []string{"Leader"}, badgeNames(got))

	got = Evaluate(Stats{ChallengesCreated: 3}, nil, "")
	assert.Empty(t, got)
}

func TestEvaluateJoinedBadge(t *testing.T) {
	got := Evaluate(Stats{ChallengesJoined: 10}, nil, "")
	assert.Equal(t, []string{"Social Butterfly"}, badgeNames(got))

	got = Evaluate(Stats{ChallengesJoined: 11}, nil, "")
	assert.Empty(t, got)
}

func TestEvaluatePointCollector(t *testing.T) {
	got := Evaluate(Stats{TotalPoints: 999}, nil, "")
	assert.Empty(t, got)

	got = Evaluate(Stats{TotalPoints: 1000}, nil, "")
	assert.Equal(t, []string{"Point Collector"}, badgeNames(got))

	// fires on every evaluation past the threshold until held
	got = Evaluate(Stats{TotalPoints: 1500}, nil, "")
	assert.Equal(t, []string{"Point Collector"}, badgeNames(got))

	held := map[string]bool{"Point Collector": true}
	got = Evaluate(Stats{TotalPoints: 1500}, held, "")
	assert.Empty(t, got)
}

func TestEvaluateCategoryBadges(t *testing.T) {
	// below the minimum completions no category badge fires
	got := Evaluate(Stats{ChallengesCompleted: 4}, nil, "energy")
	assert.Empty(t, got)

	got = Evaluate(Stats{ChallengesCompleted: 6}, nil, "energy")
	assert.Equal(t, []string{"Energy Saver"}, badgeNames(got))

	got = Evaluate(Stats{ChallengesCompleted: 6}, nil, "water")
	assert.Equal(t, []string{"Water Guardian"}, badgeNames(got))

	// an unknown category earns nothing
	got = Evaluate(Stats{ChallengesCompleted: 6}, nil, "other")
	assert.Empty(t, got)
}

func TestEvaluateSkipsHeldBadges(t *testing.T) {
	held := map[string]bool{"First Step": true}
	got := Evaluate(Stats{ChallengesCompleted: 1}, held, "")
	assert.Empty(t, got)
}

func TestEvaluateCombined(t *testing.T) {
	// fifth completion of a waste challenge with exactly 10 joins
	stats := Stats{ChallengesCompleted: 5, ChallengesJoined: 10}
	got := Evaluate(stats, nil, "waste")
	assert.Equal(t, []string{"Challenger", "Social Butterfly", "Waste Warrior"}, badgeNames(got))
}

func TestCalculateLevel(t *testing.T) {
	assert.Equal(t, 1, CalculateLevel(0))
	assert.Equal(t, 1, CalculateLevel(99))
	assert.Equal(t, 2, CalculateLevel(100))
	assert.Equal(t, 3, CalculateLevel(250))
	assert.Equal(t, 11, CalculateLevel(1000))
}

func TestPointsToNextLevel(t *testing.T) {
	assert.Equal(t, 100, PointsToNextLevel(0))
	assert.Equal(t, 1, PointsToNextLevel(99))
	assert.Equal(t, 100, PointsToNextLevel(100))
	assert.Equal(t, 50, PointsToNextLevel(250))
}

func TestBonuses(t *testing.T) {
	assert.Equal(t, 50, CreationBonus())
	assert.Equal(t, 5, JoinBonus())
}
