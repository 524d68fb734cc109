package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/SE-Y3S1-SE-50/GreenStepBackend/middlewares"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/services"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the aggregated dashboard summary for the user
func GetDashboardStats(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := services.GetDashboardStats(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetGrowthTrend returns monthly growth averages for the user's trees
func GetGrowthTrend(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	months, _ := strconv.Atoi(c.DefaultQuery("months", "6"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	trend, err := services.GetGrowthTrend(ctx, userID, months)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch growth trend"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": trend})
}

// GetHealthDistribution returns the user's tree count per health status
func GetHealthDistribution(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	distribution, err := services.HealthDistribution(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch health distribution"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"distribution": distribution})
}
