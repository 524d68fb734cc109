// Package rewards implements the badge catalog, award rules and level math
// for the gamification system.
package rewards

// BadgeKind identifies a badge in the fixed catalog
type BadgeKind int

const (
	FirstStep BadgeKind = iota
	Challenger
	EcoWarrior
	GreenChampion
	PlanetProtector
	Creator
	Innovator
	Leader
	SocialButterfly
	PointCollector
	EnergySaver
	WasteWarrior
	TransportHero
	WaterGuardian
	FoodHero
)

// Badge is a named, icon-bearing achievement from the catalog
type Badge struct {
	Kind        BadgeKind `json:"-"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
}

var catalog = map[BadgeKind]Badge{
	FirstStep:       {FirstStep, "First Step", "🌱", "Completed your first challenge"},
	Challenger:      {Challenger, "Challenger", "💪", "Completed 5 challenges"},
	EcoWarrior:      {EcoWarrior, "Eco Warrior", "🌍", "Completed 10 challenges"},
	GreenChampion:   {GreenChampion, "Green Champion", "🏆", "Completed 25 challenges"},
	PlanetProtector: {PlanetProtector, "Planet Protector", "🌟", "Completed 50 challenges"},
	Creator:         {Creator, "Creator", "🛠️", "Created your first challenge"},
	Innovator:       {Innovator, "Innovator", "💡", "Created 5 challenges"},
	Leader:          {Leader, "Leader", "👑", "Created 10 challenges"},
	SocialButterfly: {SocialButterfly, "Social Butterfly", "🦋", "Joined 10 challenges"},
	PointCollector:  {PointCollector, "Point Collector", "💎", "Earned 1000 points"},
	EnergySaver:     {EnergySaver, "Energy Saver", "⚡", "Completed 5 energy challenges"},
	WasteWarrior:    {WasteWarrior, "Waste Warrior", "♻️", "Completed 5 waste challenges"},
	TransportHero:   {TransportHero, "Transport Hero", "🚲", "Completed 5 transport challenges"},
	WaterGuardian:   {WaterGuardian, "Water Guardian", "💧", "Completed 5 water challenges"},
	FoodHero:        {FoodHero, "Food Hero", "🥬", "Completed 5 food challenges"},
}

// Lookup returns the catalog entry for a badge kind
func Lookup(kind BadgeKind) Badge {
	return catalog[kind]
}

var completionThresholds = []struct {
	count int
	kind  BadgeKind
}{
	{1, FirstStep},
	{5, Challenger},
	{10, EcoWarrior},
	{25, GreenChampion},
	{50, PlanetProtector},
}

var creationThresholds = []struct {
	count int
	kind  BadgeKind
}{
	{1, Creator},
	{5, Innovator},
	{10, Leader},
}

const (
	joinedThreshold         = 10
	pointsThreshold         = 1000
	categoryBadgeMinimum    = 5
	pointsPerLevel          = 100
	creationBonusPoints     = 50
	joinBonusPoints         = 5
)

var categoryBadges = map[string]BadgeKind{
	"energy":    EnergySaver,
	"waste":     WasteWarrior,
	"transport": TransportHero,
	"water":     WaterGuardian,
	"food":      FoodHero,
}

// Stats are the cumulative user counters the award rules read
type Stats struct {
	ChallengesCompleted int
	ChallengesJoined    int
	ChallengesCreated   int
	TotalPoints         int
}

// Evaluate returns the badges newly earned for the given stats, skipping any
// the user already holds. completedCategory is the category of the challenge
// that was just completed, or empty.
//
// Counter badges fire on exact equality with their threshold, i.e. on the
// increment that lands on it. Known limitation: a counter that jumps past a
// threshold in a single update never earns that badge.
func Evaluate(stats Stats, held map[string]bool, completedCategory string) []Badge {
	var kinds []BadgeKind

	for _, t := range completionThresholds {
		if stats.ChallengesCompleted == t.count {
			kinds = append(kinds, t.kind)
		}
	}

	for _, t := range creationThresholds {
		if stats.ChallengesCreated == t.count {
			kinds = append(kinds, t.kind)
		}
	}

	if stats.ChallengesJoined == joinedThreshold {
		kinds = append(kinds, SocialButterfly)
	}

	if stats.TotalPoints >= pointsThreshold {
		kinds = append(kinds, PointCollector)
	}

	if completedCategory != "" && stats.ChallengesCompleted >= categoryBadgeMinimum {
		if kind, ok := categoryBadges[completedCategory]; ok {
			kinds = append(kinds, kind)
		}
	}

	var newBadges []Badge
	for _, kind := range kinds {
		badge := catalog[kind]
		if held[badge.Name] {
			continue
		}
		newBadges = append(newBadges, badge)
	}
	return newBadges
}

// CalculateLevel derives a user's level from total points
func CalculateLevel(points int) int {
	return points/pointsPerLevel + 1
}

// PointsToNextLevel returns how many points are missing for the next level
func PointsToNextLevel(points int) int {
	return CalculateLevel(points)*pointsPerLevel - points
}

// CreationBonus is the flat point grant for creating a challenge
func CreationBonus() int { return creationBonusPoints }

// JoinBonus is the flat point grant for joining a challenge
func JoinBonus() int { return joinBonusPoints }
