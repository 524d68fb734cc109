package services

import (
	"context"
	"time"

	"github.com/SE-Y3S1-SE-50/GreenStepBackend/db"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// healthSampleSize caps how many recent care records feed the health status
const healthSampleSize = 5

// healthWindowDays is how far back care records count towards health
const healthWindowDays = 30

// RecentCareRecords returns the tree's newest care records from the health
// window, newest first, capped at the sample size
func RecentCareRecords(ctx context.Context, treeID primitive.ObjectID) ([]models.CareRecord, error) {
	filter := bson.M{
		"treeId": treeID,
		"date":   bson.M{"$gte": time.Now().AddDate(0, 0, -healthWindowDays)},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(healthSampleSize)

	cursor, err := db.GetCollection("care_records").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.CareRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// RefreshTreeHealth recomputes and persists the tree's health status from its
// recent care records
func RefreshTreeHealth(ctx context.Context, treeID primitive.ObjectID) error {
	var tree models.Tree
	if err := db.GetCollection("trees").FindOne(ctx, bson.M{"_id": treeID}).Decode(&tree); err != nil {
		return err
	}

	records, err := RecentCareRecords(ctx, treeID)
	if err != nil {
		return err
	}

	tree.UpdateHealthStatus(records)

	_, err = db.GetCollection("trees").UpdateOne(ctx,
		bson.M{"_id": treeID},
		bson.M{"$set": bson.M{
			"healthStatus": tree.HealthStatus,
			"updatedAt":    time.Now(),
		}},
	)
	return err
}

// ApplyGrowthMeasurement updates the tree's size from a measurement and
// recomputes the carbon estimate
func ApplyGrowthMeasurement(ctx context.Context, measurement *models.GrowthMeasurement) error {
	var tree models.Tree
	if err := db.GetCollection("trees").FindOne(ctx, bson.M{"_id": measurement.TreeID}).Decode(&tree); err != nil {
		return err
	}

	tree.Height = measurement.Height
	tree.Diameter = measurement.Diameter
	carbon := tree.CalculateCarbonAbsorption(time.Now())

	_, err := db.GetCollection("trees").UpdateOne(ctx,
		bson.M{"_id": tree.ID},
		bson.M{"$set": bson.M{
			"height":         measurement.Height,
			"diameter":       measurement.Diameter,
			"carbonAbsorbed": carbon,
			"updatedAt":      time.Now(),
		}},
	)
	return err
}
