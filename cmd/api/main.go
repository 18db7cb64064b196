package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jobly/internal/config"
	"jobly/internal/database"
	"jobly/internal/handlers"
	"jobly/internal/middleware"
	"jobly/internal/services"
)

func main() {
	// 1. Configuration
	cfg := config.Load()

	// 2. Database connection + schema
	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal("failed to run migrations: ", err)
	}

	// 3. Services
	companyService := services.NewCompanyService(pool)
	jobService := services.NewJobService(pool)
	userService := services.NewUserService(pool, cfg.JWTSecretKey, cfg.BcryptCost,
		time.Duration(cfg.TokenTTLHrs)*time.Hour)
	applicationService := services.NewApplicationService(pool)

	// 4. Handlers
	companyHandler := handlers.NewCompanyHandler(companyService)
	jobHandler := handlers.NewJobHandler(jobService)
	userHandler := handlers.NewUserHandler(userService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	// 5. Router & CORS
	r := gin.Default()
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	// Token decode runs on every request and fails open to anonymous; the
	// per-route gates below make the actual authorization decisions.
	r.Use(middleware.Authenticate(cfg.JWTSecretKey))

	// 6. Routes
	r.GET("/health", handlers.HealthCheck)
	r.POST("/login", userHandler.Login)

	companies := r.Group("/companies")
	{
		companies.GET("", companyHandler.List)
		companies.GET("/:handle", companyHandler.Get)
		companies.POST("", middleware.RequireLogin(), middleware.RequireAdmin(), companyHandler.Create)
		companies.PATCH("/:handle", middleware.RequireLogin(), middleware.RequireAdmin(), companyHandler.Update)
		companies.DELETE("/:handle", middleware.RequireLogin(), middleware.RequireAdmin(), companyHandler.Delete)
	}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", jobHandler.List)
		jobs.GET("/:id", jobHandler.Get)
		jobs.POST("", middleware.RequireLogin(), middleware.RequireAdmin(), jobHandler.Create)
		jobs.PATCH("/:id", middleware.RequireLogin(), middleware.RequireAdmin(), jobHandler.Update)
		jobs.DELETE("/:id", middleware.RequireLogin(), middleware.RequireAdmin(), jobHandler.Delete)
		jobs.POST("/:id/apply", middleware.RequireLogin(), applicationHandler.Apply)
	}

	users := r.Group("/users")
	{
		users.POST("", userHandler.Register)
		users.GET("", middleware.RequireLogin(), userHandler.List)
		users.GET("/:username", middleware.RequireLogin(), userHandler.Get)
		users.PATCH("/:username", middleware.RequireLogin(), middleware.RequireUser("username"), userHandler.Update)
		users.DELETE("/:username", middleware.RequireLogin(), middleware.RequireUser("username"), userHandler.Delete)
		users.GET("/:username/matches", middleware.RequireLogin(), middleware.RequireUser("username"), jobHandler.Match)
	}

	applications := r.Group("/applications")
	{
		applications.GET("", middleware.RequireLogin(), middleware.RequireAdmin(), applicationHandler.List)
		applications.PATCH("/:username/:id", middleware.RequireLogin(), middleware.RequireSelfOrAdmin("username"), applicationHandler.Update)
		applications.DELETE("/:username/:id", middleware.RequireLogin(), middleware.RequireSelfOrAdmin("username"), applicationHandler.Delete)
	}

	log.Printf("server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server failed to start: ", err)
	}
}
