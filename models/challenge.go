package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Challenge categories
const (
	CategoryEnergy    = "energy"
	CategoryWaste     = "waste"
	CategoryTransport = "transport"
	CategoryWater     = "water"
	CategoryFood      = "food"
	CategoryOther     = "other"
)

var (
	// ErrAlreadyJoined is returned when a user joins a challenge twice
	ErrAlreadyJoined = errors.New("already joined this challenge")
	// ErrNotJoined is returned when progress is reported by a non-participant
	ErrNotJoined = errors.New("not joined this challenge")
	// ErrInvalidProgress is returned for negative progress values
	ErrInvalidProgress = errors.New("progress must be a non-negative number")
)

// Participant is a user's membership record within a challenge
type Participant struct {
	User      primitive.ObjectID `bson:"user" json:"user"`
	JoinedAt  time.Time          `bson:"joinedAt" json:"joinedAt"`
	Progress  float64            `bson:"progress" json:"progress"`
	Completed bool               `bson:"completed" json:"completed"`
}

// Challenge defines a gamified environmental challenge. The participant list is
// embedded and holds at most one entry per user.
type Challenge struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Category     string             `bson:"category" json:"category"`
	Difficulty   string             `bson:"difficulty" json:"difficulty"`
	Points       int                `bson:"points" json:"points"`
	Duration     int                `bson:"duration" json:"duration"` // days
	Target       float64            `bson:"target" json:"target"`
	Unit         string             `bson:"unit" json:"unit"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedBy    primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	Participants []Participant      `bson:"participants" json:"participants"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FindParticipant returns the participant entry for a user, or nil.
// Identifiers are compared as hex strings, matching how join requests arrive.
func (c *Challenge) FindParticipant(userID primitive.ObjectID) *Participant {
	for i := range c.Participants {
		if c.Participants[i].User.Hex() == userID.Hex() {
			return &c.Participants[i]
		}
	}
	return nil
}

// AddParticipant appends a fresh participant entry for the user. Fails with
// ErrAlreadyJoined when an entry for the user exists.
func (c *Challenge) AddParticipant(userID primitive.ObjectID, now time.Time) (*Participant, error) {
	if c.FindParticipant(userID) != nil {
		return nil, ErrAlreadyJoined
	}
	c.Participants = append(c.Participants, Participant{
		User:      userID,
		JoinedAt:  now,
		Progress:  0,
		Completed: false,
	})
	return &c.Participants[len(c.Participants)-1], nil
}

// ApplyProgress records a participant's progress, clamped to the challenge
// target. The returned flag is true only on the transition from not-completed
// to completed; re-submitting progress at or above the target after completion
// does not fire again.
func (c *Challenge) ApplyProgress(userID primitive.ObjectID, progress float64) (*Participant, bool, error) {
	if progress < 0 {
		return nil, false, ErrInvalidProgress
	}

	participant := c.FindParticipant(userID)
	if participant == nil {
		return nil, false, ErrNotJoined
	}

	wasCompleted := participant.Completed

	newProgress := progress
	if newProgress > c.Target {
		newProgress = c.Target
	}
	participant.Progress = newProgress
	participant.Completed = newProgress >= c.Target

	completionEvent := !wasCompleted && participant.Completed
	return participant, completionEvent, nil
}
