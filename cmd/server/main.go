package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"wealthplanner/internal/config"
	"wealthplanner/internal/dao/planning"
	"wealthplanner/internal/dao/simulation"
	"wealthplanner/internal/database"
	"wealthplanner/internal/handlers"
	"wealthplanner/internal/services"
)

func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("log_level", cfg.LogLevel).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	// Money is rendered as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Connect to database
	if err := database.Connect(cfg.DatabaseURL, cfg.IsProduction()); err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Run database migrations
	if err := database.AutoMigrate(); err != nil {
		log.WithError(err).Fatal("Failed to run database migrations")
	}

	// Initialize Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestLogger(log))
	r.Use(handlers.CORS(cfg.CORSOrigin))

	// Initialize data access
	db := database.GetDB()
	simulationDAO := simulation.NewSimulationDAO(db)
	allocationDAO := planning.NewAllocationDAO(db)
	movementDAO := planning.NewMovementDAO(db)
	insuranceDAO := planning.NewInsuranceDAO(db)

	// Initialize services
	simulationService := services.NewSimulationService(simulationDAO, log)
	allocationService := services.NewAllocationService(allocationDAO, simulationDAO, log)
	movementService := services.NewMovementService(movementDAO, simulationDAO, log)
	insuranceService := services.NewInsuranceService(insuranceDAO, simulationDAO, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(database.Ping)
	simulationHandler := handlers.NewSimulationHandler(simulationService)

	// Health check endpoint
	r.GET("/health", healthHandler.Health)

	// API routes group
	api := r.Group("/api/v1")
	{
		api.GET("/health", healthHandler.Health)

		handlers.RegisterSimulationRoutes(api, simulationHandler)
		handlers.RegisterPlanningRoutes(api, "/allocations", handlers.NewAllocationHandler(allocationService))
		handlers.RegisterPlanningRoutes(api, "/movements", handlers.NewMovementHandler(movementService))
		handlers.RegisterPlanningRoutes(api, "/insurances", handlers.NewInsuranceHandler(insuranceService))
	}

	// Start server
	log.WithField("port", cfg.Port).Info("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
