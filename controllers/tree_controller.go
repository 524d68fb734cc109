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

// GetTrees lists the user's active trees with pagination and sorting
func GetTrees(c *gin.Context) {
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
	sortBy := c.DefaultQuery("sortBy", "createdAt")
	sortOrder := -1
	if c.DefaultQuery("sortOrder", "desc") == "asc" {
		sortOrder = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "isActive": true}
	collection := db.GetCollection("trees")

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trees"})
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: sortOrder}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trees"})
		return
	}
	defer cursor.Close(ctx)

	var trees []models.Tree
	if err := cursor.All(ctx, &trees); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode trees"})
		return
	}

	totalPages := (int(total) + limit - 1) / limit
	c.JSON(http.StatusOK, gin.H{
		"trees": trees,
		"pagination": gin.H{
			"currentPage": page,
			"totalPages":  totalPages,
			"totalTrees":  total,
			"hasNext":     page < totalPages,
			"hasPrev":     page > 1,
		},
	})
}

// GetTreeByID returns a tree with its recent care history, growth measurements
// and open reminders
func GetTreeByID(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	treeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tree ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var tree models.Tree
	err = db.GetCollection("trees").FindOne(ctx, bson.M{"_id": treeID, "userId": userID, "isActive": true}).Decode(&tree)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tree not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tree"})
		}
		return
	}

	careRecords, err := services.RecentCareRecords(ctx, treeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch care records"})
		return
	}

	measurementOpts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(5)
	measurementCursor, err := db.GetCollection("growth_measurements").Find(ctx,
		bson.M{"treeId": treeID, "userId": userID}, measurementOpts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch measurements"})
		return
	}
	defer measurementCursor.Close(ctx)

	var measurements []models.GrowthMeasurement
	if err := measurementCursor.All(ctx, &measurements); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode measurements"})
		return
	}

	reminderOpts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}})
	reminderCursor, err := db.GetCollection("care_reminders").Find(ctx,
		bson.M{"treeId": treeID, "userId": userID, "isCompleted": false}, reminderOpts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reminders"})
		return
	}
	defer reminderCursor.Close(ctx)

	var reminders []models.CareReminder
	if err := reminderCursor.All(ctx, &reminders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode reminders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tree":                     tree,
		"recentCareRecords":        careRecords,
		"recentGrowthMeasurements": measurements,
		"upcomingReminders":        reminders,
	})
}

// AddTree creates a tree, seeds its default care reminders and computes the
// initial carbon estimate
func AddTree(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.CreateTreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	now := time.Now()
	plantDate := now
	if req.PlantDate != nil {
		plantDate = *req.PlantDate
	}

	tree := models.Tree{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		Name:         req.Name,
		Species:      req.Species,
		Location:     req.Location,
		PlantDate:    plantDate,
		Height:       req.Height,
		Diameter:     req.Diameter,
		HealthStatus: models.HealthGood,
		Notes:        req.Notes,
		ImageURL:     req.ImageURL,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Coordinates != nil {
		tree.Coordinates = &models.Coordinates{
			Latitude:  req.Coordinates.Latitude,
			Longitude: req.Coordinates.Longitude,
		}
	}
	tree.CarbonAbsorbed = tree.CalculateCarbonAbsorption(now)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.GetCollection("trees").InsertOne(ctx, tree); err != nil {
		log.Printf("Error creating tree: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add tree"})
		return
	}

	if _, err := services.CreateDefaultReminders(ctx, tree.ID, userID); err != nil {
		// Tree creation stands; missing starter reminders are recoverable
		log.Printf("Error creating default reminders for tree %s: %v", tree.ID.Hex(), err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tree added successfully",
		"tree":    tree,
	})
}

// UpdateTree applies field updates to a tree the user owns
func UpdateTree(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	treeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tree ID"})
		return
	}

	var req structs.UpdateTreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Species != "" {
		set["species"] = req.Species
	}
	if req.Location != "" {
		set["location"] = req.Location
	}
	if req.Height != nil {
		set["height"] = *req.Height
	}
	if req.Diameter != nil {
		set["diameter"] = *req.Diameter
	}
	if req.Notes != nil {
		set["notes"] = *req.Notes
	}
	if req.ImageURL != nil {
		set["imageUrl"] = *req.ImageURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result := db.GetCollection("trees").FindOneAndUpdate(ctx,
		bson.M{"_id": treeID, "userId": userID, "isActive": true},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var tree models.Tree
	if err := result.Decode(&tree); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tree not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tree"})
		}
		return
	}

	// Height changes move the carbon estimate
	if req.Height != nil {
		carbon := tree.CalculateCarbonAbsorption(time.Now())
		if _, err := db.GetCollection("trees").UpdateOne(ctx,
			bson.M{"_id": treeID},
			bson.M{"$set": bson.M{"carbonAbsorbed": carbon}},
		); err == nil {
			tree.CarbonAbsorbed = carbon
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tree updated successfully",
		"tree":    tree,
	})
}

// DeleteTree soft-deletes a tree and closes its open reminders
func DeleteTree(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	treeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tree ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := db.GetCollection("trees").UpdateOne(ctx,
		bson.M{"_id": treeID, "userId": userID, "isActive": true},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tree"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tree not found"})
		return
	}

	_, err = db.GetCollection("care_reminders").UpdateMany(ctx,
		bson.M{"treeId": treeID, "userId": userID},
		bson.M{"$set": bson.M{"isCompleted": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Printf("Error closing reminders for deleted tree %s: %v", treeID.Hex(), err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tree deleted successfully"})
}
