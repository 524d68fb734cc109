package routes

import (
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/controllers"

	"github.com/gin-gonic/gin"
)

// SetupTreeRoutes sets up tree, care record, growth and reminder routes
func SetupTreeRoutes(router *gin.RouterGroup) {
	trees := router.Group("/trees")
	{
		trees.GET("", controllers.GetTrees)
		trees.POST("", controllers.AddTree)
		trees.GET("/:id", controllers.GetTreeByID)
		trees.PUT("/:id", controllers.UpdateTree)
		trees.DELETE("/:id", controllers.DeleteTree)
	}

	growth := router.Group("/growth-measurements")
	{
		growth.POST("", controllers.AddGrowthMeasurement)
		growth.GET("/:treeId", controllers.GetGrowthMeasurements)
	}

	careRecords := router.Group("/care-records")
	{
		careRecords.GET("", controllers.GetCareRecords)
		careRecords.POST("", controllers.AddCareRecord)
		careRecords.PUT("/:id", controllers.UpdateCareRecord)
	}

	reminders := router.Group("/care-reminders")
	{
		reminders.GET("", controllers.GetCareReminders)
		reminders.POST("", controllers.AddCareReminder)
		reminders.GET("/upcoming", controllers.GetUpcomingReminders)
		reminders.PUT("/:id/complete", controllers.CompleteReminder)
	}
}

// SetupDashboardRoutes sets up analytics routes
func SetupDashboardRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/stats", controllers.GetDashboardStats)
		dashboard.GET("/growth-trend", controllers.GetGrowthTrend)
		dashboard.GET("/health-distribution", controllers.GetHealthDistribution)
	}
}
