package main

import (
	"organisation-api/internal/api/routes"
	"organisation-api/internal/config"
	"organisation-api/internal/database"
	"organisation-api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "organisation-api/docs" // This is needed for swag
)

//	@title			Organisation API
//	@version		1.0
//	@description	Users, organisations and memberships behind JWT authentication.

//	@host		localhost:3000
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	logrus.WithField("driver", cfg.DatabaseDriver).Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
