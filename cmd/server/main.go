package main

import (
	"log"
	"time"

	"github.com/CachoMX/partnership-kpi/internal/config"
	"github.com/CachoMX/partnership-kpi/internal/database"
	"github.com/CachoMX/partnership-kpi/internal/handlers"
	"github.com/CachoMX/partnership-kpi/internal/redis"
	"github.com/CachoMX/partnership-kpi/internal/repository"
	"github.com/CachoMX/partnership-kpi/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	callRepo := repository.NewCallRepository(db)
	closerRepo := repository.NewCloserRepository(db)
	setterRepo := repository.NewSetterRepository(db)
	userRepo := repository.NewUserRepository(db)
	eodRepo := repository.NewEODRepository(db)

	// Initialize services
	callService := services.NewCallService(callRepo, closerRepo, setterRepo)
	statsService := services.NewStatsService(callRepo, closerRepo, setterRepo)
	userService := services.NewUserService(userRepo, closerRepo, setterRepo, callRepo, redisClient, time.Duration(cfg.RoleCacheTTL)*time.Second)
	eodService := services.NewEODService(eodRepo)

	// Initialize handlers
	callHandler := handlers.NewCallHandler(callService)
	statsHandler := handlers.NewStatsHandler(statsService)
	userHandler := handlers.NewUserHandler(userService)
	eodHandler := handlers.NewEODHandler(eodService)

	// Setup routes
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/calls", callHandler.GetCalls)
		api.POST("/calls", callHandler.CreateCall)

		api.GET("/sales", callHandler.GetSales)
		api.POST("/sales/update", callHandler.UpdateSale)
		api.GET("/sales/summary", statsHandler.GetSummary)

		api.GET("/closers", statsHandler.GetClosers)
		api.GET("/closers/stats", statsHandler.GetCloserStats)
		api.GET("/closers/daily-stats", statsHandler.GetCloserDailyStats)

		api.GET("/setters", statsHandler.GetSetters)
		api.GET("/setters/stats", statsHandler.GetSetterStats)
		api.GET("/setters/daily-stats", statsHandler.GetSetterDailyStats)

		api.GET("/payouts", statsHandler.GetPayouts)

		api.GET("/eod", eodHandler.GetReports)
		api.POST("/eod", eodHandler.CreateReport)

		api.POST("/user-role", userHandler.LookupRole)
		api.GET("/users", userHandler.GetUsers)
		api.POST("/users/create", userHandler.CreateUser)
		api.POST("/users/update", userHandler.UpdateUser)
		api.POST("/users/delete", userHandler.DeleteUser)
		api.POST("/users/cleanup-orphaned", userHandler.CleanupOrphaned)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
