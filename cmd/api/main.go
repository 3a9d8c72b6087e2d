package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/joblane/joblane-backend/internal/config"
	"github.com/joblane/joblane-backend/internal/handlers"
	"github.com/joblane/joblane-backend/internal/services"
	"github.com/joblane/joblane-backend/internal/supabase"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config error: ", err)
	}

	// 2. Supabase Client (one per process, injected everywhere)
	client := supabase.New(cfg.SupabaseURL, cfg.SupabaseAnonKey)

	// 3. Initialize Core Services (Dependencies)
	authService := services.NewAuthService(client, client)
	jobService := services.NewJobService(client)
	applicationService := services.NewApplicationService(client)
	savedJobService := services.NewSavedJobService(client)

	// 4. Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	jobHandler := handlers.NewJobHandler(jobService, client)
	applicationHandler := handlers.NewApplicationHandler(applicationService, client)
	savedJobHandler := handlers.NewSavedJobHandler(savedJobService, client)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/debug/users", authHandler.DebugUsers)

		// Auth Routes
		api.POST("/auth/signup", authHandler.SignUp)
		api.POST("/auth/login", authHandler.LogIn)

		// Job Routes
		api.GET("/jobs", jobHandler.ListJobs)
		api.POST("/jobs", jobHandler.CreateJob)
		api.DELETE("/jobs/:id", jobHandler.DeleteJob)

		// Application Routes
		api.POST("/applications", applicationHandler.Apply)
		api.GET("/applications", applicationHandler.ListApplications)

		// Saved Job Routes
		api.POST("/saved-jobs", savedJobHandler.SaveJob)
		api.DELETE("/saved-jobs/:id", savedJobHandler.UnsaveJob)
		api.GET("/saved-jobs", savedJobHandler.ListSavedJobs)
	}

	log.Println("🚀 Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
