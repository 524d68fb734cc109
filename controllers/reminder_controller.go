package controllers

import (
	"context"
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

// GetCareReminders lists the user's reminders with optional type, completion
// and overdue filters
func GetCareReminders(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	filter := bson.M{"userId": userID}
	if reminderType := c.Query("type"); reminderType != "" {
		filter["type"] = reminderType
	}
	if completed := c.Query("isCompleted"); completed != "" {
		filter["isCompleted"] = completed == "true"
	}
	if c.Query("overdue") == "true" {
		filter["dueDate"] = bson.M{"$lt": time.Now()}
		filter["isCompleted"] = false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}})
	cursor, err := db.GetCollection("care_reminders").Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reminders"})
		return
	}
	defer cursor.Close(ctx)

	var reminders []models.CareReminder
	if err := cursor.All(ctx, &reminders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode reminders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

// GetUpcomingReminders lists open reminders due within the requested window
func GetUpcomingReminders(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	if days < 1 {
		days = 7
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reminders, err := services.GetUpcomingReminders(ctx, userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reminders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

// AddCareReminder creates a reminder for a tree the user owns
func AddCareReminder(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req structs.CreateReminderRequest
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tree not found"})
		return
	}

	now := time.Now()
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	frequency := req.Frequency
	if frequency == "" {
		frequency = models.FrequencyMonthly
	}
	isRecurring := true
	if req.IsRecurring != nil {
		isRecurring = *req.IsRecurring
	}

	reminder := models.CareReminder{
		ID:          primitive.NewObjectID(),
		TreeID:      treeID,
		UserID:      userID,
		Type:        req.Type,
		DueDate:     req.DueDate,
		Priority:    priority,
		Notes:       req.Notes,
		Frequency:   frequency,
		IsRecurring: isRecurring,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.CustomFrequency != nil {
		reminder.CustomFrequency = &models.CustomFrequency{
			Days:   req.CustomFrequency.Days,
			Weeks:  req.CustomFrequency.Weeks,
			Months: req.CustomFrequency.Months,
		}
	}

	if _, err := db.GetCollection("care_reminders").InsertOne(ctx, reminder); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Reminder created successfully",
		"reminder": reminder,
	})
}

// CompleteReminder marks a reminder done; recurring reminders spawn their next
// occurrence
func CompleteReminder(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reminderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reminder models.CareReminder
	err = db.GetCollection("care_reminders").FindOne(ctx,
		bson.M{"_id": reminderID, "userId": userID}).Decode(&reminder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reminder"})
		}
		return
	}

	spawned, err := services.CompleteReminder(ctx, &reminder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete reminder"})
		return
	}

	response := gin.H{
		"message":  "Reminder marked as completed",
		"reminder": reminder,
	}
	if spawned != nil {
		response["nextReminder"] = spawned
	}
	c.JSON(http.StatusOK, response)
}
