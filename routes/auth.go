package routes

import (
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/controllers"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the public authentication routes
func SetupAuthRoutes(router *gin.Engine, limiter gin.HandlerFunc) {
	auth := router.Group("/api/auth")
	auth.Use(limiter)
	{
		auth.POST("/signup", controllers.SignUp)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)
	}
}

// SetupProfileRoutes sets up the authenticated user routes
func SetupProfileRoutes(router *gin.RouterGroup) {
	router.GET("/auth/me", controllers.Me)
	router.GET("/users/profile", controllers.GetProfile)
	router.PUT("/users/profile", controllers.UpdateProfile)
	router.GET("/users/rewards", controllers.GetRewards)
}
