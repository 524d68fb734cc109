package routes

import (
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/controllers"

	"github.com/gin-gonic/gin"
)

// SetupChallengeRoutes sets up challenge and leaderboard routes
func SetupChallengeRoutes(router *gin.RouterGroup) {
	challenges := router.Group("/challenges")
	{
		challenges.GET("", controllers.GetChallenges)
		challenges.POST("", controllers.CreateChallenge)
		challenges.GET("/leaderboard", controllers.GetChallengeLeaderboard)
		challenges.GET("/:id", controllers.GetChallenge)
		challenges.POST("/:id/join", controllers.JoinChallenge)
		challenges.PUT("/:id/progress", controllers.UpdateProgress)
	}
}
