package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/SE-Y3S1-SE-50/GreenStepBackend/db"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/middlewares"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/models"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/services"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/structs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetChallenges lists active challenges, newest first
func GetChallenges(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.GetCollection("challenges").Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenges"})
		return
	}
	defer cursor.Close(ctx)

	var challenges []models.Challenge
	if err := cursor.All(ctx, &challenges); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode challenges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenges": challenges})
}

// GetChallenge returns a single challenge by id
func GetChallenge(c *gin.Context) {
	challengeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid challenge ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var challenge models.Challenge
	err = db.GetCollection("challenges").FindOne(ctx, bson.M{"_id": challengeID}).Decode(&challenge)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenge"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenge": challenge})
}

// CreateChallenge creates a challenge and grants the creation reward
func CreateChallenge(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	now := time.Now()
	challenge := models.Challenge{
		ID:           primitive.NewObjectID(),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Difficulty:   req.Difficulty,
		Points:       req.Points,
		Duration:     req.Duration,
		Target:       req.Target,
		Unit:         req.Unit,
		ImageURL:     req.ImageURL,
		IsActive:     true,
		CreatedBy:    userID,
		Participants: []models.Participant{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if challenge.Points == 0 {
		challenge.Points = 10
	}
	if challenge.Duration == 0 {
		challenge.Duration = 7
	}
	if challenge.Target == 0 {
		challenge.Target = 1
	}
	if challenge.Unit == "" {
		challenge.Unit = "days"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.GetCollection("challenges").InsertOne(ctx, challenge); err != nil {
		log.Printf("Error creating challenge: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create challenge"})
		return
	}

	rewardInfo, err := services.AwardChallengeCreation(ctx, userID)
	if err != nil {
		log.Printf("Error awarding creation rewards to user %s: %v", userID.Hex(), err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Challenge created successfully!",
		"challenge": challenge,
		"rewards":   rewardInfo,
	})
}

// JoinChallenge adds the caller to the challenge's participants
func JoinChallenge(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	challengeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid challenge ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	challenge, rewardInfo, err := services.JoinChallenge(ctx, challengeID, userID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAlreadyJoined):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already joined this challenge"})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		default:
			log.Printf("Error joining challenge %s: %v", challengeID.Hex(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join challenge"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Successfully joined the challenge!",
		"challenge": challenge,
		"rewards":   rewardInfo,
	})
}

// UpdateProgress records the caller's progress on a challenge
func UpdateProgress(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	challengeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid challenge ID"})
		return
	}

	var req structs.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Progress value is required"})
		return
	}
	if *req.Progress < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Progress must be a non-negative number"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	challenge, rewardInfo, err := services.UpdateChallengeProgress(ctx, challengeID, userID, *req.Progress)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotJoined):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Not joined this challenge"})
		case errors.Is(err, models.ErrInvalidProgress):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Progress must be a non-negative number"})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		default:
			log.Printf("Error updating progress on challenge %s: %v", challengeID.Hex(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update progress"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"challenge": challenge,
		"rewards":   rewardInfo,
	})
}

// GetChallengeLeaderboard ranks users by total points
func GetChallengeLeaderboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "totalPoints", Value: -1}}).
		SetLimit(50)
	cursor, err := db.GetCollection("users").Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode leaderboard"})
		return
	}

	type leaderboardEntry struct {
		Rank        int    `json:"rank"`
		Username    string `json:"username"`
		TotalPoints int    `json:"totalPoints"`
		Level       int    `json:"level"`
		BadgeCount  int    `json:"badgeCount"`
	}

	entries := make([]leaderboardEntry, 0, len(users))
	for i, user := range users {
		entries = append(entries, leaderboardEntry{
			Rank:        i + 1,
			Username:    user.Username,
			TotalPoints: user.TotalPoints,
			Level:       user.Level,
			BadgeCount:  len(user.Badges),
		})
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
