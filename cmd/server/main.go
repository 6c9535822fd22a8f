package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/travelhub/travel-booking-backend/internal/config"
	"github.com/travelhub/travel-booking-backend/internal/database"
	"github.com/travelhub/travel-booking-backend/internal/handlers"
	"github.com/travelhub/travel-booking-backend/internal/services"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Travel Booking Platform Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize the document store
	var (
		destinationStore database.DestinationStore
		hotelStore       database.HotelStore
		bookingStore     database.BookingStore
		closeStore       = func(context.Context) error { return nil }
	)

	switch cfg.Database.Backend {
	case "memory":
		logger.Warn("Using in-memory store; data will not survive a restart")
		destinationStore = database.NewMemoryDestinationStore()
		hotelStore = database.NewMemoryHotelStore()
		bookingStore = database.NewMemoryBookingStore()
	default:
		logger.Info("Connecting to database...")
		conn, err := database.NewConnection(cfg.Database)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		logger.Info("Database connection established")

		destinationStore = database.NewDestinationRepository(conn.Database())
		hotelStore = database.NewHotelRepository(conn.Database())
		bookingStore = database.NewBookingRepository(conn.Database())
		closeStore = conn.Close
	}

	// Seed sample destinations into an empty store
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), cfg.Database.Timeout)
	if err := database.SeedDestinations(seedCtx, destinationStore, logger); err != nil {
		logger.Fatalf("Failed to seed destinations: %v", err)
	}
	cancelSeed()

	// Initialize services and handlers
	bookingService := services.NewBookingService(destinationStore, hotelStore, bookingStore, logger)

	destinationHandler := handlers.NewDestinationHandler(destinationStore, logger)
	hotelHandler := handlers.NewHotelHandler(hotelStore, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	recommendationHandler := handlers.NewRecommendationHandler(logger)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// API routes
	api := router.Group("/api")
	{
		api.GET("/", rootHandler())

		api.POST("/destinations", destinationHandler.Create)
		api.GET("/destinations", destinationHandler.List)
		api.GET("/destinations/:id", destinationHandler.Get)
		api.POST("/destinations/search", destinationHandler.Search)

		api.POST("/hotels", hotelHandler.Create)
		api.GET("/hotels", hotelHandler.List)

		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings", bookingHandler.List)
		api.GET("/bookings/:id", bookingHandler.Get)

		api.POST("/recommendations", recommendationHandler.Recommend)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	if err := closeStore(ctx); err != nil {
		logger.Errorf("Failed to close store connection: %v", err)
	}

	logger.Info("Server exited successfully")
}

// rootHandler serves the API health probe
func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Travel Booking Platform API!"})
	}
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		}

		entry := logger.WithFields(fields)

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}
