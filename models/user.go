package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserBadge is a badge earned by a user, embedded in the user document.
// Badge names are unique per user.
type UserBadge struct {
	Name        string    `bson:"name" json:"name"`
	Icon        string    `bson:"icon" json:"icon"`
	Description string    `bson:"description" json:"description"`
	EarnedAt    time.Time `bson:"earnedAt" json:"earnedAt"`
}

// Achievement records a completed challenge, embedded in the user document
type Achievement struct {
	ChallengeID    primitive.ObjectID `bson:"challengeId" json:"challengeId"`
	ChallengeTitle string             `bson:"challengeTitle" json:"challengeTitle"`
	PointsEarned   int                `bson:"pointsEarned" json:"pointsEarned"`
	CompletedAt    time.Time          `bson:"completedAt" json:"completedAt"`
}

// UserStatistics holds monotonic counters driving badge thresholds
type UserStatistics struct {
	ChallengesCompleted int `bson:"challengesCompleted" json:"challengesCompleted"`
	ChallengesJoined    int `bson:"challengesJoined" json:"challengesJoined"`
	ChallengesCreated   int `bson:"challengesCreated" json:"challengesCreated"`
	TotalDaysActive     int `bson:"totalDaysActive" json:"totalDaysActive"`
}

// User defines a user entity
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username       string             `bson:"username" json:"username"`
	Password       string             `bson:"password" json:"-"`
	FirstName      string             `bson:"firstName" json:"firstName"`
	LastName       string             `bson:"lastName" json:"lastName"`
	Email          string             `bson:"email" json:"email"`
	PhoneNumber    string             `bson:"phoneNumber" json:"phoneNumber"`
	Role           string             `bson:"role" json:"role"`
	ProfilePicture string             `bson:"profilePicture" json:"profilePicture"`
	TotalPoints    int                `bson:"totalPoints" json:"totalPoints"`
	Level          int                `bson:"level" json:"level"`
	Badges         []UserBadge        `bson:"badges" json:"badges"`
	Achievements   []Achievement      `bson:"achievements" json:"achievements"`
	Statistics     UserStatistics     `bson:"statistics" json:"statistics"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// HasBadge reports whether the user already holds a badge with the given name
func (u *User) HasBadge(name string) bool {
	for _, badge := range u.Badges {
		if badge.Name == name {
			return true
		}
	}
	return false
}

// BadgeNames returns the set of badge names the user currently holds
func (u *User) BadgeNames() map[string]bool {
	names := make(map[string]bool, len(u.Badges))
	for _, badge := range u.Badges {
		names[badge.Name] = true
	}
	return names
}
