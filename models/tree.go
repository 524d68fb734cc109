package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Health status values for a tree
const (
	HealthExcellent = "excellent"
	HealthGood      = "good"
	HealthFair      = "fair"
	HealthPoor      = "poor"
)

// carbonBaseRate is the baseline absorption in kg CO2 per year
const carbonBaseRate = 10.0

// speciesMultipliers adjusts carbon absorption per species (scientific names)
var speciesMultipliers = map[string]float64{
	"Quercus robur":      1.5, // Oak
	"Acer saccharum":     1.2, // Maple
	"Pinus strobus":      1.8, // Pine
	"Betula pendula":     1.0, // Birch
	"Fraxinus excelsior": 1.3, // Ash
	"Picea abies":        1.6, // Spruce
	"Tilia cordata":      1.1, // Lime
	"Carpinus betulus":   1.0, // Hornbeam
}

// Coordinates is an optional geographic position for a tree
type Coordinates struct {
	Latitude  float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

// Tree defines a planted tree owned by a single user
type Tree struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	Name           string             `bson:"name" json:"name"`
	Species        string             `bson:"species" json:"species"`
	Location       string             `bson:"location" json:"location"`
	PlantDate      time.Time          `bson:"plantDate" json:"plantDate"`
	Height         float64            `bson:"height" json:"height"`
	Diameter       float64            `bson:"diameter" json:"diameter"`
	HealthStatus   string             `bson:"healthStatus" json:"healthStatus"`
	LastWatered    time.Time          `bson:"lastWatered" json:"lastWatered"`
	LastFertilized time.Time          `bson:"lastFertilized" json:"lastFertilized"`
	Notes          string             `bson:"notes" json:"notes"`
	CarbonAbsorbed float64            `bson:"carbonAbsorbed" json:"carbonAbsorbed"`
	ImageURL       string             `bson:"imageUrl" json:"imageUrl"`
	Coordinates    *Coordinates       `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AgeInDays returns the number of whole days since the tree was planted
func (t *Tree) AgeInDays(now time.Time) int {
	age := int(now.Sub(t.PlantDate).Hours() / 24)
	if age < 0 {
		return 0
	}
	return age
}

// CalculateCarbonAbsorption estimates total kg of CO2 absorbed from the tree's
// age, height and species. Unknown species use a neutral multiplier.
func (t *Tree) CalculateCarbonAbsorption(now time.Time) float64 {
	ageInYears := float64(t.AgeInDays(now)) / 365.0

	speciesMultiplier, ok := speciesMultipliers[t.Species]
	if !ok {
		speciesMultiplier = 1.0
	}

	sizeMultiplier := t.Height / 10
	if sizeMultiplier > 1 {
		sizeMultiplier = 1
	}

	return carbonBaseRate * speciesMultiplier * sizeMultiplier * ageInYears
}

// UpdateHealthStatus derives the health status from recent care records
// (expected: last 30 days, newest first, at most 5). An empty sample resets
// the status to fair.
func (t *Tree) UpdateHealthStatus(recentRecords []CareRecord) {
	if len(recentRecords) == 0 {
		t.HealthStatus = HealthFair
		return
	}

	sum := 0
	for _, record := range recentRecords {
		sum += record.HealthRating
	}
	avgHealthRating := float64(sum) / float64(len(recentRecords))

	switch {
	case avgHealthRating >= 4.5:
		t.HealthStatus = HealthExcellent
	case avgHealthRating >= 3.5:
		t.HealthStatus = HealthGood
	case avgHealthRating >= 2.5:
		t.HealthStatus = HealthFair
	default:
		t.HealthStatus = HealthPoor
	}
}

// HealthScore maps the health status onto a 1-4 scale for dashboard averages
func (t *Tree) HealthScore() int {
	switch t.HealthStatus {
	case HealthExcellent:
		return 4
	case HealthGood:
		return 3
	case HealthFair:
		return 2
	default:
		return 1
	}
}
