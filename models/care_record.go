package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Care action kinds
const (
	ActionWatering    = "watering"
	ActionFertilizing = "fertilizing"
	ActionPruning     = "pruning"
	ActionPestControl = "pest_control"
	ActionOther       = "other"
)

// Weather captures optional conditions at the time of care
type Weather struct {
	Temperature   float64 `bson:"temperature,omitempty" json:"temperature,omitempty"`
	Humidity      float64 `bson:"humidity,omitempty" json:"humidity,omitempty"`
	Precipitation float64 `bson:"precipitation,omitempty" json:"precipitation,omitempty"`
	Conditions    string  `bson:"conditions,omitempty" json:"conditions,omitempty"`
}

// Material is a supply used during a care activity
type Material struct {
	Name     string  `bson:"name" json:"name"`
	Quantity float64 `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Unit     string  `bson:"unit,omitempty" json:"unit,omitempty"`
}

// CareRecord logs a single care activity for a tree. Records are append-mostly;
// the health rating feeds the tree's derived health status.
type CareRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TreeID       primitive.ObjectID `bson:"treeId" json:"treeId"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Date         time.Time          `bson:"date" json:"date"`
	Action       string             `bson:"action" json:"action"`
	Notes        string             `bson:"notes" json:"notes"`
	HealthRating int                `bson:"healthRating" json:"healthRating"`
	Images       []string           `bson:"images,omitempty" json:"images,omitempty"`
	Weather      *Weather           `bson:"weather,omitempty" json:"weather,omitempty"`
	Duration     int                `bson:"duration,omitempty" json:"duration,omitempty"` // minutes
	Materials    []Material         `bson:"materials,omitempty" json:"materials,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ActionDisplayName returns a human readable label for the care action
func (r *CareRecord) ActionDisplayName() string {
	switch r.Action {
	case ActionWatering:
		return "Watering"
	case ActionFertilizing:
		return "Fertilizing"
	case ActionPruning:
		return "Pruning"
	case ActionPestControl:
		return "Pest Control"
	case ActionOther:
		return "Other Care"
	default:
		return r.Action
	}
}
