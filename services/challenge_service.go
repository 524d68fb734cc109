package services

import (
	"context"
	"log"
	"time"

	"github.com/SE-Y3S1-SE-50/GreenStepBackend/db"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// getChallenge fetches a challenge document by id
func getChallenge(ctx context.Context, challengeID primitive.ObjectID) (*models.Challenge, error) {
	var challenge models.Challenge
	err := db.GetCollection("challenges").FindOne(ctx, bson.M{"_id": challengeID}).Decode(&challenge)
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

// JoinChallenge adds the user to the challenge's participant list and grants
// the participation reward. Joining twice fails with models.ErrAlreadyJoined.
// A failed reward grant is logged but does not undo the join.
func JoinChallenge(ctx context.Context, challengeID, userID primitive.ObjectID) (*models.Challenge, *models.RewardSummary, error) {
	challenge, err := getChallenge(ctx, challengeID)
	if err != nil {
		return nil, nil, err
	}

	participant, err := challenge.AddParticipant(userID, time.Now())
	if err != nil {
		return nil, nil, err
	}

	_, err = db.GetCollection("challenges").UpdateOne(ctx,
		bson.M{"_id": challengeID},
		bson.M{
			"$push": bson.M{"participants": participant},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return nil, nil, err
	}

	rewardInfo, err := AwardChallengeJoin(ctx, userID)
	if err != nil {
		log.Printf("Error awarding join rewards to user %s: %v", userID.Hex(), err)
		rewardInfo = nil
	}

	return challenge, rewardInfo, nil
}

// UpdateChallengeProgress records a participant's progress. Progress is clamped
// to the challenge target; crossing the target fires the completion reward
// exactly once. A failed reward grant is logged but does not undo the update.
func UpdateChallengeProgress(ctx context.Context, challengeID, userID primitive.ObjectID, progress float64) (*models.Challenge, *models.RewardSummary, error) {
	challenge, err := getChallenge(ctx, challengeID)
	if err != nil {
		return nil, nil, err
	}

	participant, completionEvent, err := challenge.ApplyProgress(userID, progress)
	if err != nil {
		return nil, nil, err
	}

	_, err = db.GetCollection("challenges").UpdateOne(ctx,
		bson.M{"_id": challengeID, "participants.user": userID},
		bson.M{"$set": bson.M{
			"participants.$.progress":  participant.Progress,
			"participants.$.completed": participant.Completed,
			"updatedAt":                time.Now(),
		}},
	)
	if err != nil {
		return nil, nil, err
	}

	var rewardInfo *models.RewardSummary
	if completionEvent {
		rewardInfo, err = AwardChallengeCompletion(ctx, userID, challenge)
		if err != nil {
			log.Printf("Error awarding completion rewards to user %s: %v", userID.Hex(), err)
			rewardInfo = nil
		}
	}

	return challenge, rewardInfo, nil
}
