package services

import (
	"context"
	"log"
	"time"

	"github.com/SE-Y3S1-SE-50/GreenStepBackend/db"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/models"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/rewards"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/websocket"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// statsOf converts the stored statistics document into the rewards input
func statsOf(user *models.User) rewards.Stats {
	return rewards.Stats{
		ChallengesCompleted: user.Statistics.ChallengesCompleted,
		ChallengesJoined:    user.Statistics.ChallengesJoined,
		ChallengesCreated:   user.Statistics.ChallengesCreated,
		TotalPoints:         user.TotalPoints,
	}
}

// CheckAndAwardBadges evaluates the badge rules against the user's current
// statistics and persists any newly earned badges. Badges already held are
// never granted twice. completedCategory carries the category of a challenge
// completed in this operation, or empty.
func CheckAndAwardBadges(ctx context.Context, userID primitive.ObjectID, user *models.User, completedCategory string) []rewards.Badge {
	newBadges := rewards.Evaluate(statsOf(user), user.BadgeNames(), completedCategory)
	if len(newBadges) == 0 {
		return nil
	}

	userCollection := db.GetCollection("users")
	now := time.Now()
	for _, badge := range newBadges {
		earned := models.UserBadge{
			Name:        badge.Name,
			Icon:        badge.Icon,
			Description: badge.Description,
			EarnedAt:    now,
		}
		_, err := userCollection.UpdateOne(ctx,
			bson.M{"_id": userID, "badges.name": bson.M{"$ne": badge.Name}},
			bson.M{"$push": bson.M{"badges": earned}},
		)
		if err != nil {
			log.Printf("Error awarding badge %q to user %s: %v", badge.Name, userID.Hex(), err)
			continue
		}

		websocket.BroadcastRewardEvent(models.RewardEvent{
			Type:      "badge_awarded",
			UserID:    userID.Hex(),
			BadgeName: badge.Name,
			Timestamp: now,
		})
	}
	return newBadges
}

// AwardChallengeCompletion records an achievement, grants the challenge's
// points, bumps the completion counter and runs the badge check
func AwardChallengeCompletion(ctx context.Context, userID primitive.ObjectID, challenge *models.Challenge) (*models.RewardSummary, error) {
	now := time.Now()
	achievement := models.Achievement{
		ChallengeID:    challenge.ID,
		ChallengeTitle: challenge.Title,
		PointsEarned:   challenge.Points,
		CompletedAt:    now,
	}

	update := bson.M{
		"$push": bson.M{"achievements": achievement},
		"$inc": bson.M{
			"totalPoints":                    challenge.Points,
			"statistics.challengesCompleted": 1,
		},
	}

	updatedUser, err := applyUserUpdate(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	newBadges := CheckAndAwardBadges(ctx, userID, updatedUser, challenge.Category)
	newLevel := syncUserLevel(ctx, userID, updatedUser.TotalPoints)

	websocket.BroadcastRewardEvent(models.RewardEvent{
		Type:      "points_earned",
		UserID:    userID.Hex(),
		Points:    challenge.Points,
		NewLevel:  newLevel,
		Timestamp: now,
	})

	return &models.RewardSummary{
		PointsEarned: challenge.Points,
		NewLevel:     newLevel,
		NewBadges:    newBadges,
		Achievement:  &achievement,
	}, nil
}

// AwardChallengeCreation grants the flat creation bonus and bumps the
// creation counter
func AwardChallengeCreation(ctx context.Context, userID primitive.ObjectID) (*models.RewardSummary, error) {
	pointsEarned := rewards.CreationBonus()
	update := bson.M{
		"$inc": bson.M{
			"totalPoints":                  pointsEarned,
			"statistics.challengesCreated": 1,
		},
	}

	updatedUser, err := applyUserUpdate(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	newBadges := CheckAndAwardBadges(ctx, userID, updatedUser, "")
	newLevel := syncUserLevel(ctx, userID, updatedUser.TotalPoints)

	return &models.RewardSummary{
		PointsEarned: pointsEarned,
		NewLevel:     newLevel,
		NewBadges:    newBadges,
		Message:      "Challenge created! You earned 50 bonus points.",
	}, nil
}

// AwardChallengeJoin grants the flat participation bonus and bumps the join
// counter
func AwardChallengeJoin(ctx context.Context, userID primitive.ObjectID) (*models.RewardSummary, error) {
	pointsEarned := rewards.JoinBonus()
	update := bson.M{
		"$inc": bson.M{
			"totalPoints":                 pointsEarned,
			"statistics.challengesJoined": 1,
		},
	}

	updatedUser, err := applyUserUpdate(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	newBadges := CheckAndAwardBadges(ctx, userID, updatedUser, "")
	newLevel := syncUserLevel(ctx, userID, updatedUser.TotalPoints)

	return &models.RewardSummary{
		PointsEarned: pointsEarned,
		NewLevel:     newLevel,
		NewBadges:    newBadges,
		Message:      "Challenge joined! You earned 5 participation points.",
	}, nil
}

// AwardQuizPoints grants points earned from a quiz submission
func AwardQuizPoints(ctx context.Context, userID primitive.ObjectID, points int) (*models.RewardSummary, error) {
	if points <= 0 {
		return &models.RewardSummary{}, nil
	}

	updatedUser, err := applyUserUpdate(ctx, userID, bson.M{"$inc": bson.M{"totalPoints": points}})
	if err != nil {
		return nil, err
	}

	newBadges := CheckAndAwardBadges(ctx, userID, updatedUser, "")
	newLevel := syncUserLevel(ctx, userID, updatedUser.TotalPoints)

	return &models.RewardSummary{
		PointsEarned: points,
		NewLevel:     newLevel,
		NewBadges:    newBadges,
	}, nil
}

// applyUserUpdate applies an atomic update to the user document and returns
// the post-update state
func applyUserUpdate(ctx context.Context, userID primitive.ObjectID, update bson.M) (*models.User, error) {
	userCollection := db.GetCollection("users")
	result := userCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": userID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var user models.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// syncUserLevel stores the level derived from the new point total. Levels only
// move forward since totalPoints is monotonic.
func syncUserLevel(ctx context.Context, userID primitive.ObjectID, totalPoints int) int {
	newLevel := rewards.CalculateLevel(totalPoints)
	_, err := db.GetCollection("users").UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"level": newLevel}},
	)
	if err != nil {
		log.Printf("Error syncing level for user %s: %v", userID.Hex(), err)
	}
	return newLevel
}
