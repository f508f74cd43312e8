package main

import (
	"log"
	"time"

	"biztime-backend/internal/config"
	"biztime-backend/internal/httperr"
	"biztime-backend/internal/middleware"
	"biztime-backend/internal/models"
	"biztime-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg := config.Load()

	logger, err := config.InitLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.InitDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.Company{},
		&models.Industry{},
		&models.CompanyIndustry{},
		&models.Invoice{},
		&models.AuditLog{},
	); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(httperr.Responder(logger))

	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, logger)

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start the server", zap.Error(err))
	}
}
