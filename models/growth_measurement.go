package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GrowthMeasurement is an append-only size reading for a tree
type GrowthMeasurement struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TreeID        primitive.ObjectID `bson:"treeId" json:"treeId"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Date          time.Time          `bson:"date" json:"date"`
	Height        float64            `bson:"height" json:"height"`
	Diameter      float64            `bson:"diameter" json:"diameter"`
	CanopySpread  float64            `bson:"canopySpread,omitempty" json:"canopySpread,omitempty"`
	TrunkDiameter float64            `bson:"trunkDiameter,omitempty" json:"trunkDiameter,omitempty"`
	Notes         string             `bson:"notes" json:"notes"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// GrowthRate is the derived growth speed between two measurements
type GrowthRate struct {
	HeightPerDay   float64 `json:"heightPerDay"`
	DiameterPerDay float64 `json:"diameterPerDay"`
	ElapsedDays    int     `json:"elapsedDays"`
}

// RateSince computes per-day growth from an earlier measurement. Returns a zero
// rate when the measurements are not at least a day apart.
func (m *GrowthMeasurement) RateSince(earlier *GrowthMeasurement) GrowthRate {
	elapsedDays := int(m.Date.Sub(earlier.Date).Hours() / 24)
	if elapsedDays <= 0 {
		return GrowthRate{}
	}
	return GrowthRate{
		HeightPerDay:   (m.Height - earlier.Height) / float64(elapsedDays),
		DiameterPerDay: (m.Diameter - earlier.Diameter) / float64(elapsedDays),
		ElapsedDays:    elapsedDays,
	}
}
