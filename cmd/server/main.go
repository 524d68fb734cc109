package main

import (
	"log"
	"strconv"
	"time"

	"github.com/SE-Y3S1-SE-50/GreenStepBackend/config"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/db"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/middlewares"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/routes"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/utils"
	"github.com/SE-Y3S1-SE-50/GreenStepBackend/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret)
	utils.SetJWTExpiry(cfg.JWT.Expiry)

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	if err := middlewares.InitCasbin(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to initialize access control: %v", err)
	}

	// Seed starter challenges and learning content on first run
	utils.SeedDatabase()

	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "x-auth-token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	limiter := middlewares.NewRateLimiter(
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		cfg.RateLimit.MaxRequests,
	)

	// Public routes (rate limited by client IP)
	routes.SetupAuthRoutes(router, limiter.Middleware())

	// Protected routes (JWT auth)
	api := router.Group("/api")
	api.Use(middlewares.AuthMiddleware(), limiter.Middleware())
	{
		routes.SetupProfileRoutes(api)
		routes.SetupTreeRoutes(api)
		routes.SetupChallengeRoutes(api)
		routes.SetupEducationRoutes(api)
		routes.SetupDashboardRoutes(api)

		// WebSocket reward notifications
		api.GET("/ws/rewards", websocket.RewardsHandler)
	}

	return router
}
