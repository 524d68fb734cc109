package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
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

// GetCareRecords lists the user's care records, optionally filtered by tree
// and action
func GetCareRecords(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := bson.M{"userId": userID}
	if treeIDParam := c.Query("treeId"); treeIDParam != "" {
		treeID, err := primitive.ObjectIDFromHex(treeIDParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tree ID"})
			return
		}
		filter["treeId"] = treeID
	}
	if action := c.Query("action"); action != "" {
		filter["action"] = action
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.GetCollection("care_records")

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch care records"})
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch care records"})
		return
	}
	defer cursor.Close(ctx)

	var records []models.CareRecord
	if err := cursor.All(ctx, &records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode care records"})
		return
	}

	totalPages := (int(total) + limit - 1) / limit
	c.JSON(http.StatusOK, gin.H{
		"careRecords": records,
		"pagination": gin.H{
			"currentPage":  page,
			"totalPages":   totalPages,
			"totalRecords": total,
			"hasNext":      page < totalPages,
			"hasPrev":      page > 1,
		},
	})
}

// AddCareRecord logs a care activity and refreshes the tree's health status
func AddCareRecord(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.CreateCareRecordRequest
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

	// The tree must exist and belong to the caller
	count, err := db.GetCollection("trees").CountDocuments(ctx,
		bson.M{"_id": treeID, "userId": userID, "isActive": true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add care record"})
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
	healthRating := req.HealthRating
	if healthRating == 0 {
		healthRating = 3
	}

	record := models.CareRecord{
		ID:           primitive.NewObjectID(),
		TreeID:       treeID,
		UserID:       userID,
		Date:         date,
		Action:       req.Action,
		Notes:        req.Notes,
		HealthRating: healthRating,
		Images:       req.Images,
		Duration:     req.Duration,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Weather != nil {
		record.Weather = &models.Weather{Conditions: req.Weather.Conditions}
		if req.Weather.Temperature != nil {
			record.Weather.Temperature = *req.Weather.Temperature
		}
		if req.Weather.Humidity != nil {
			record.Weather.Humidity = *req.Weather.Humidity
		}
		if req.Weather.Precipitation != nil {
			record.Weather.Precipitation = *req.Weather.Precipitation
		}
	}
	for _, m := range req.Materials {
		record.Materials = append(record.Materials, models.Material{
			Name:     m.Name,
			Quantity: m.Quantity,
			Unit:     m.Unit,
		})
	}

	if _, err := db.GetCollection("care_records").InsertOne(ctx, record); err != nil {
		log.Printf("Error creating care record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add care record"})
		return
	}

	// New rating shifts the derived health status
	if err := services.RefreshTreeHealth(ctx, treeID); err != nil {
		log.Printf("Error refreshing tree health for %s: %v", treeID.Hex(), err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Care record added successfully",
		"careRecord": record,
	})
}

// UpdateCareRecord edits a care record and refreshes the tree's health status
func UpdateCareRecord(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recordID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return
	}

	var req structs.UpdateCareRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Action != "" {
		set["action"] = req.Action
	}
	if req.Notes != nil {
		set["notes"] = *req.Notes
	}
	if req.HealthRating != nil {
		set["healthRating"] = *req.HealthRating
	}
	if req.Date != nil {
		set["date"] = *req.Date
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result := db.GetCollection("care_records").FindOneAndUpdate(ctx,
		bson.M{"_id": recordID, "userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var record models.CareRecord
	if err := result.Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Care record not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update care record"})
		}
		return
	}

	if err := services.RefreshTreeHealth(ctx, record.TreeID); err != nil {
		log.Printf("Error refreshing tree health for %s: %v", record.TreeID.Hex(), err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Care record updated successfully",
		"careRecord": record,
	})
}
