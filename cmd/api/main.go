package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/ahmedmaged64/LifeQuest/docs" // swagger docs
	"github.com/ahmedmaged64/LifeQuest/internal/ai"
	"github.com/ahmedmaged64/LifeQuest/internal/api/handlers"
	"github.com/ahmedmaged64/LifeQuest/internal/api/middleware"
	"github.com/ahmedmaged64/LifeQuest/internal/api/routes"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/advice"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/habits"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/reflection"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/settings"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/stats"
	"github.com/ahmedmaged64/LifeQuest/internal/domain/task"
	"github.com/ahmedmaged64/LifeQuest/internal/export"
	"github.com/ahmedmaged64/LifeQuest/internal/infrastructure/persistence/sqlite"
	"github.com/ahmedmaged64/LifeQuest/internal/infrastructure/state"
	"github.com/ahmedmaged64/LifeQuest/pkg/config"
	"github.com/ahmedmaged64/LifeQuest/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           LifeQuest API
// @version         1.0
// @description     A personal planner API with habit tracking, daily reflections and progress gamification.

// @host      localhost:8000
// @BasePath

// RequestLoggerMiddleware logs all incoming HTTP requests
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		log.Info("Request started",
			zap.String("request_id", middleware.RequestID(c)),
			zap.String("path", path),
			zap.String("method", method),
			zap.String("client_ip", c.ClientIP()),
		)

		c.Next()

		log.Info("Request completed",
			zap.String("request_id", middleware.RequestID(c)),
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("") // Empty string will make it search in default locations
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	log := logger.NewLoggerAt(cfg.Logging.Level)
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	// Log advice generation configuration; the API key itself never hits the logs
	log.Info("Advice configuration",
		zap.Bool("enabled", cfg.Advice.APIKey != ""),
		zap.String("base_url", cfg.Advice.BaseURL),
		zap.String("model", cfg.Advice.Model))

	// Set up Gin
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Binding stays unvalidated; the validation middleware owns request checks
	gin.DisableBindValidation()
	gin.DefaultWriter = os.Stdout

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.NewTracingMiddleware().TraceRequest())
	router.Use(RequestLoggerMiddleware(log))
	router.Use(middleware.NewMetricsMiddleware().CollectMetrics())
	// Configure gin to use proper content type for JSON
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    cfg.CORS.AllowedMethods,
		AllowHeaders: append(cfg.CORS.AllowedHeaders,
			"Accept-Encoding",
			"Content-Encoding",
			"Content-Type",
		),
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Encoding",
			"Content-Type",
			"Content-Disposition",
		},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	// Add Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Open the state store
	store, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatal("Failed to open state store", zap.Error(err))
	}
	defer store.Close()

	container, err := state.NewContainer(context.Background(), store, log.Logger)
	if err != nil {
		log.Fatal("Failed to load application state", zap.Error(err))
	}

	// Initialize logrus logger for the advice service
	adviceLogger := logrus.New()
	adviceLogger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Server.Mode == "production" {
		adviceLogger.SetLevel(logrus.InfoLevel)
	} else {
		adviceLogger.SetLevel(logrus.DebugLevel)
	}

	// Initialize repositories
	taskRepo := container.Tasks()
	habitsRepo := container.Habits()
	reflectionRepo := container.Reflections()
	settingsRepo := container.Settings()

	// Initialize the language model client for advice generation
	aiClient := ai.NewClient(ai.Config{
		BaseURL: cfg.Advice.BaseURL,
		APIKey:  cfg.Advice.APIKey,
		Model:   cfg.Advice.Model,
		Timeout: cfg.Advice.Timeout,
	})

	// Initialize services
	taskService := task.NewService(taskRepo, log.Logger)
	habitsService := habits.NewService(habitsRepo, log.Logger)
	reflectionService := reflection.NewService(reflectionRepo)
	settingsService := settings.NewService(settingsRepo)
	statsService := stats.NewService(taskRepo, habitsRepo, log.Logger)
	adviceService := advice.NewService(taskRepo, aiClient, adviceLogger)
	exportService := export.NewService(container)

	// Initialize handlers
	taskHandler := handlers.NewTaskHandler(taskService)
	habitsHandler := handlers.NewHabitsHandler(habitsService)
	reflectionHandler := handlers.NewReflectionHandler(reflectionService)
	statsHandler := handlers.NewStatsHandler(statsService)
	adviceHandler := handlers.NewAdviceHandler(adviceService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Initialize dashboard handler
	dashboardHandler := handlers.NewDashboardHandler(
		taskService,
		habitsService,
		reflectionService,
		statsService,
		log.Logger,
	)

	// Initialize dashboard routes
	dashboardRoutes := routes.NewDashboardRoutes(dashboardHandler, log.Logger)
	dashboardRoutes.Register(router.Group("/api"))

	log.Info("Registering routes...")

	// Swagger documentation endpoint
	if cfg.Swagger.Enabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		log.Info("Registered swagger route at /swagger/*")
	} else {
		log.Warn("Swagger route not registered because swagger is disabled")
	}

	// Health check routes (no /api prefix as these are system endpoints)
	routes.SetupHealthRoutes(router, container)
	log.Info("Registered health check routes at /health and /health/ready")

	// Task routes
	taskRoutes := routes.NewTaskRoutes(taskHandler)
	taskRoutes.RegisterRoutes(router)
	log.Info("Registered task routes at /api/tasks")

	// Habits routes
	habitsRoutes := routes.NewHabitsRoutes(habitsHandler)
	habitsRoutes.RegisterRoutes(router)
	log.Info("Registered habits routes at /api/habits")

	// Reflection routes
	reflectionRoutes := routes.NewReflectionRoutes(reflectionHandler)
	reflectionRoutes.RegisterRoutes(router)
	log.Info("Registered reflection routes at /api/reflections")

	// Stats routes
	statsRoutes := routes.NewStatsRoutes(statsHandler)
	statsRoutes.RegisterRoutes(router)
	log.Info("Registered stats routes at /api/stats")

	// Advice routes
	adviceRoutes := routes.NewAdviceRoutes(adviceHandler)
	adviceRoutes.RegisterRoutes(router)
	log.Info("Registered advice routes at /api/advice")

	// Settings routes
	settingsRoutes := routes.NewSettingsRoutes(settingsHandler)
	settingsRoutes.RegisterRoutes(router)
	log.Info("Registered settings routes at /api/settings")

	// Export and import routes
	exportRoutes := routes.NewExportRoutes(exportHandler)
	exportRoutes.RegisterRoutes(router)
	log.Info("Registered export routes at /api/export and /api/import")

	// Print all registered routes for debugging
	for _, route := range router.Routes() {
		log.Info("Route registered",
			zap.String("method", route.Method),
			zap.String("path", route.Path),
		)
	}

	// Start server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
		log.Info("Swagger documentation available at http://localhost:8000/swagger/index.html")

		err := server.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
