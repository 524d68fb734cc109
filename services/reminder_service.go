package services

import (
	"context"
	"log"
	"time"

	"github.com/SE-Y3S1-SE-50/GreenStepBackend/db"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateDefaultReminders inserts the two starter reminders for a new tree:
// a weekly watering reminder due in 7 days and a monthly health check due in
// 30 days, both recurring.
func CreateDefaultReminders(ctx context.Context, treeID, userID primitive.ObjectID) ([]models.CareReminder, error) {
	now := time.Now()
	defaults := []models.CareReminder{
		{
			ID:          primitive.NewObjectID(),
			TreeID:      treeID,
			UserID:      userID,
			Type:        models.ReminderWatering,
			DueDate:     now.AddDate(0, 0, 7),
			Priority:    models.PriorityHigh,
			Notes:       "Initial watering reminder",
			Frequency:   models.FrequencyWeekly,
			IsRecurring: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          primitive.NewObjectID(),
			TreeID:      treeID,
			UserID:      userID,
			Type:        models.ReminderHealthCheck,
			DueDate:     now.AddDate(0, 0, 30),
			Priority:    models.PriorityMedium,
			Notes:       "Monthly health check",
			Frequency:   models.FrequencyMonthly,
			IsRecurring: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	docs := make([]interface{}, len(defaults))
	for i := range defaults {
		docs[i] = defaults[i]
	}

	if _, err := db.GetCollection("care_reminders").InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return defaults, nil
}

// CompleteReminder marks the reminder done and, for recurring reminders,
// spawns the next occurrence as a new document. The completed reminder stays
// in the collection as history. A failed spawn is logged and does not roll
// back the completion.
func CompleteReminder(ctx context.Context, reminder *models.CareReminder) (*models.CareReminder, error) {
	now := time.Now()
	reminder.IsCompleted = true
	reminder.LastCompleted = &now
	reminder.UpdatedAt = now

	update := bson.M{"$set": bson.M{
		"isCompleted":   true,
		"lastCompleted": now,
		"updatedAt":     now,
	}}

	if reminder.IsRecurring {
		nextDue := reminder.CalculateNextDueDate(now)
		reminder.NextDueDate = &nextDue
		update["$set"].(bson.M)["nextDueDate"] = nextDue
	}

	if _, err := db.GetCollection("care_reminders").UpdateOne(ctx, bson.M{"_id": reminder.ID}, update); err != nil {
		return nil, err
	}

	if !reminder.IsRecurring {
		return nil, nil
	}

	next := reminder.NextOccurrence(*reminder.NextDueDate, now)
	if _, err := db.GetCollection("care_reminders").InsertOne(ctx, next); err != nil {
		log.Printf("Error creating next reminder for %s: %v", reminder.ID.Hex(), err)
		return nil, nil
	}
	return &next, nil
}

// GetOverdueReminders returns the user's open reminders that are past due
func GetOverdueReminders(ctx context.Context, userID primitive.ObjectID) ([]models.CareReminder, error) {
	filter := bson.M{
		"userId":      userID,
		"dueDate":     bson.M{"$lt": time.Now()},
		"isCompleted": false,
	}
	return findReminders(ctx, filter)
}

// GetUpcomingReminders returns the user's open reminders due within the given
// number of days
func GetUpcomingReminders(ctx context.Context, userID primitive.ObjectID, days int) ([]models.CareReminder, error) {
	now := time.Now()
	filter := bson.M{
		"userId":      userID,
		"dueDate":     bson.M{"$gte": now, "$lte": now.AddDate(0, 0, days)},
		"isCompleted": false,
	}
	return findReminders(ctx, filter)
}

func findReminders(ctx context.Context, filter bson.M) ([]models.CareReminder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}})
	cursor, err := db.GetCollection("care_reminders").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []models.CareReminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}
