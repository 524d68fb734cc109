package models

import (
	"time"

	"github.com/SE-Y3S1-SE-50/GreenStepBackend/rewards"
)

// RewardSummary is returned to the caller after a reward grant
type RewardSummary struct {
	PointsEarned int             `json:"pointsEarned"`
	NewLevel     int             `json:"newLevel,omitempty"`
	NewBadges    []rewards.Badge `json:"newBadges"`
	Achievement  *Achievement    `json:"achievement,omitempty"`
	Message      string          `json:"message,omitempty"`
}

// RewardEvent is pushed over WebSocket when points or badges are granted
type RewardEvent struct {
	Type      string    `json:"type"` // "badge_awarded", "points_earned"
	UserID    string    `json:"userId"`
	BadgeName string    `json:"badgeName,omitempty"`
	Points    int       `json:"points,omitempty"`
	NewLevel  int       `json:"newLevel,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
