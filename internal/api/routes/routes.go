package routes

import (
	"net/http"

	"organisation-api/internal/api/handlers"
	"organisation-api/internal/api/middleware"
	"organisation-api/internal/auth"
	"organisation-api/internal/config"
	"organisation-api/internal/metrics"
	"organisation-api/internal/repository"
	"organisation-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()
	router.ContextWithFallback = true

	// Each router owns its registry so tests can build several side by side
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.BodyLimit())
	router.Use(middleware.Metrics(appMetrics))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize auth primitives
	tokens, err := auth.NewTokenCodec([]byte(cfg.JWTSecret), auth.DefaultTokenTTL)
	if err != nil {
		return nil, err
	}
	hasher := auth.NewBcryptHasher(0)
	guard := auth.NewGuard(tokens, appMetrics.GuardDecisions)

	// Initialize repositories
	repos := repository.NewRepositories(db)
	transactor := repository.NewTransactor(db)

	// Initialize services
	authService := service.NewAuthService(transactor, repos.Users, hasher, tokens, validator, appMetrics.AccountEvents)
	userService := service.NewUserService(repos.Users)
	organisationService := service.NewOrganisationService(transactor, repos, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	organisationHandler := handlers.NewOrganisationHandler(organisationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Metrics and documentation
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// Protected API routes
	api := router.Group("/api")
	api.Use(guard.RequireIdentity())
	{
		api.GET("/users/:id", userHandler.GetUser)

		organisations := api.Group("/organisations")
		{
			organisations.GET("", organisationHandler.ListOrganisations)
			organisations.POST("", organisationHandler.CreateOrganisation)
			organisations.GET("/:orgId", organisationHandler.GetOrganisation)
			organisations.POST("/:orgId/users", organisationHandler.AddUser)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":     "Not found",
			"message":    "Route not found",
			"statusCode": http.StatusNotFound,
		})
	})

	return router, nil
}
