package services

import (
	"context"
	"math"
	"time"

	"github.com/SE-Y3S1-SE-50/GreenStepBackend/db"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DashboardStats aggregates a user's tree-tracking activity for the dashboard
type DashboardStats struct {
	TotalTrees           int     `json:"totalTrees"`
	TotalCarbonAbsorbed  float64 `json:"totalCarbonAbsorbed"`
	AverageHealth        float64 `json:"averageHealth"`
	TotalCareRecords     int     `json:"totalCareRecords"`
	TreesPlantedThisMonth int    `json:"treesPlantedThisMonth"`
	CommunityTotalTrees  int     `json:"communityTotalTrees"`
	CommunityTotalCarbon float64 `json:"communityTotalCarbon"`
	OverdueReminders     int     `json:"overdueReminders"`
	UpcomingReminders    int     `json:"upcomingReminders"`
}

// communityFactor extrapolates a single user's impact to a community estimate
const communityFactor = 15

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// GetDashboardStats computes the dashboard summary for a user
func GetDashboardStats(ctx context.Context, userID primitive.ObjectID) (*DashboardStats, error) {
	treeCursor, err := db.GetCollection("trees").Find(ctx, bson.M{"userId": userID, "isActive": true})
	if err != nil {
		return nil, err
	}
	defer treeCursor.Close(ctx)

	var trees []models.Tree
	if err := treeCursor.All(ctx, &trees); err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalTrees: len(trees)}

	healthSum := 0
	now := time.Now()
	for _, tree := range trees {
		stats.TotalCarbonAbsorbed += tree.CarbonAbsorbed
		healthSum += tree.HealthScore()
		if tree.PlantDate.Month() == now.Month() && tree.PlantDate.Year() == now.Year() {
			stats.TreesPlantedThisMonth++
		}
	}
	if len(trees) > 0 {
		stats.AverageHealth = round1(float64(healthSum) / float64(len(trees)))
	}

	careCount, err := db.GetCollection("care_records").CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	stats.TotalCareRecords = int(careCount)

	stats.CommunityTotalTrees = stats.TotalTrees * communityFactor
	stats.CommunityTotalCarbon = round1(stats.TotalCarbonAbsorbed * communityFactor)
	stats.TotalCarbonAbsorbed = round1(stats.TotalCarbonAbsorbed)

	overdue, err := GetOverdueReminders(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.OverdueReminders = len(overdue)

	upcoming, err := GetUpcomingReminders(ctx, userID, 7)
	if err != nil {
		return nil, err
	}
	stats.UpcomingReminders = len(upcoming)

	return stats, nil
}

// TrendPoint is one month of averaged growth measurements
type TrendPoint struct {
	Month           string  `json:"month"` // e.g. "Mar 2026"
	AverageHeight   float64 `json:"averageHeight"`
	AverageDiameter float64 `json:"averageDiameter"`
	Measurements    int     `json:"measurements"`
}

// GetGrowthTrend returns per-month average height and diameter over the last
// N months, oldest first. Months without measurements report zero.
func GetGrowthTrend(ctx context.Context, userID primitive.ObjectID, months int) ([]TrendPoint, error) {
	if months <= 0 {
		months = 6
	}

	now := time.Now()
	startDate := now.AddDate(0, -months, 0)

	filter := bson.M{"userId": userID, "date": bson.M{"$gte": startDate}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := db.GetCollection("growth_measurements").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var measurements []models.GrowthMeasurement
	if err := cursor.All(ctx, &measurements); err != nil {
		return nil, err
	}

	type bucket struct {
		height   float64
		diameter float64
		count    int
	}
	buckets := make(map[string]*bucket)
	for _, m := range measurements {
		key := m.Date.Format("2006-01")
		if buckets[key] == nil {
			buckets[key] = &bucket{}
		}
		buckets[key].height += m.Height
		buckets[key].diameter += m.Diameter
		buckets[key].count++
	}

	points := make([]TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		month := now.AddDate(0, -i, 0)
		point := TrendPoint{Month: month.Format("Jan 2006")}
		if b := buckets[month.Format("2006-01")]; b != nil && b.count > 0 {
			point.AverageHeight = math.Round(b.height/float64(b.count)*100) / 100
			point.AverageDiameter = math.Round(b.diameter/float64(b.count)*1000) / 1000
			point.Measurements = b.count
		}
		points = append(points, point)
	}
	return points, nil
}

// HealthDistribution counts a user's active trees per health status
func HealthDistribution(ctx context.Context, userID primitive.ObjectID) (map[string]int, error) {
	cursor, err := db.GetCollection("trees").Find(ctx, bson.M{"userId": userID, "isActive": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trees []models.Tree
	if err := cursor.All(ctx, &trees); err != nil {
		return nil, err
	}

	counts := map[string]int{
		models.HealthExcellent: 0,
		models.HealthGood:      0,
		models.HealthFair:      0,
		models.HealthPoor:      0,
	}
	for _, tree := range trees {
		counts[tree.HealthStatus]++
	}
	return counts, nil
}
