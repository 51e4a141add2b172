package main

import (
	"log"
	"time"

	"healthtrack-be/internal/cache"
	"healthtrack-be/internal/config"
	"healthtrack-be/internal/controllers"
	"healthtrack-be/internal/database"
	"healthtrack-be/internal/jwt"
	"healthtrack-be/internal/middleware"
	"healthtrack-be/internal/repository"
	"healthtrack-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration; exit before binding a socket if required
	// settings (DATABASE_URL, JWT_SECRET) are missing
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	nutritionRepo := repository.NewNutritionRepository(db)
	sleepRepo := repository.NewSleepRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	musicRepo := repository.NewMusicRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	trackerService := service.NewTrackerService(exerciseRepo, nutritionRepo, sleepRepo, reminderRepo)
	musicService := service.NewMusicService(musicRepo)
	searchService := service.NewSearchService(exerciseRepo, nutritionRepo, sleepRepo, musicRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	trackerController := controllers.NewTrackerController(trackerService)
	musicController := controllers.NewMusicController(musicService)
	searchController := controllers.NewSearchController(searchService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Auth routes with stricter rate limiting
	router.POST("/register", authRateLimiter.LimitMiddleware(), authController.Register)
	router.POST("/login", authRateLimiter.LimitMiddleware(), authController.Login)

	// Protected routes - require JWT authentication
	protected := router.Group("")
	protected.Use(generalRateLimiter.LimitMiddleware())
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.POST("/exercise", trackerController.AddExercise)
		protected.GET("/exercise", trackerController.GetExercises)

		protected.POST("/nutrition", trackerController.AddNutrition)
		protected.GET("/nutrition", trackerController.GetNutrition)

		protected.POST("/sleep", trackerController.AddSleep)
		protected.GET("/sleep", trackerController.GetSleep)

		protected.POST("/capsule-reminders", trackerController.AddReminder)
		protected.GET("/capsule-reminders", trackerController.GetReminders)

		protected.POST("/playlists", musicController.CreatePlaylist)
		protected.GET("/playlists", musicController.GetPlaylists)
		protected.POST("/tracks", musicController.AddTrack)
		protected.GET("/tracks/:playlistId", musicController.GetTracks)

		protected.GET("/search", searchController.Search)
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
