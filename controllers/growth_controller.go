package controllers

import (
	"context"
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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddGrowthMeasurement records a size reading and updates the tree's stored
// dimensions and carbon estimate
func AddGrowthMeasurement(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.CreateGrowthMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	treeID, err := primitive.ObjectIDFromHex(req.TreeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tree ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := db.GetCollection("trees").CountDocuments(ctx,
		bson.M{"_id": treeID, "userId": userID, "isActive": true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add measurement"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tree not found"})
		return
	}

	now := time.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	measurement := models.GrowthMeasurement{
		ID:            primitive.NewObjectID(),
		TreeID:        treeID,
		UserID:        userID,
		Date:          date,
		Height:        req.Height,
		Diameter:      req.Diameter,
		CanopySpread:  req.CanopySpread,
		TrunkDiameter: req.TrunkDiameter,
		Notes:         req.Notes,
		CreatedAt:     now,
	}

	if _, err := db.GetCollection("growth_measurements").InsertOne(ctx, measurement); err != nil {
		log.Printf("Error creating growth measurement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add measurement"})
		return
	}

	if err := services.ApplyGrowthMeasurement(ctx, &measurement); err != nil {
		log.Printf("Error applying growth measurement to tree %s: %v", treeID.Hex(), err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Growth measurement added successfully",
		"measurement": measurement,
	})
}

// GetGrowthMeasurements lists a tree's measurements, newest first, with the
// derived growth rate between the two most recent readings
func GetGrowthMeasurements(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	treeID, err := primitive.ObjectIDFromHex(c.Param("treeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tree ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := db.GetCollection("growth_measurements").Find(ctx,
		bson.M{"treeId": treeID, "userId": userID}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch measurements"})
		return
	}
	defer cursor.Close(ctx)

	var measurements []models.GrowthMeasurement
	if err := cursor.All(ctx, &measurements); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode measurements"})
		return
	}

	response := gin.H{"measurements": measurements}
	if len(measurements) >= 2 {
		response["growthRate"] = measurements[0].RateSince(&measurements[1])
	}

	c.JSON(http.StatusOK, response)
}
