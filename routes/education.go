package routes

import (
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/controllers"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupEducationRoutes sets up content and quiz routes. Content management
// is restricted to admins through casbin policies.
func SetupEducationRoutes(router *gin.RouterGroup) {
	education := router.Group("/education")
	{
		education.GET("/content", controllers.GetAllContent)
		education.GET("/content/:contentId", controllers.GetContentByID)
		education.GET("/quizzes", controllers.GetAllQuizzes)
		education.GET("/quizzes/:quizId", controllers.GetQuizByID)
		education.POST("/quizzes/:quizId/submit", controllers.SubmitQuiz)
		education.GET("/progress", controllers.GetUserQuizProgress)

		education.POST("/content", middlewares.RBACMiddleware("education", "create"), controllers.CreateContent)
		education.POST("/content/bulk", middlewares.RBACMiddleware("education", "create"), controllers.BulkCreateContent)
		education.PUT("/content/:contentId", middlewares.RBACMiddleware("education", "update"), controllers.UpdateContent)
		education.DELETE("/content/:contentId", middlewares.RBACMiddleware("education", "delete"), controllers.DeactivateContent)
	}
}
