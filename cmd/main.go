package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/radityarh/pulseband/adapters"
	"github.com/radityarh/pulseband/adapters/mongo"
	"github.com/radityarh/pulseband/domain/repositories"
	"github.com/radityarh/pulseband/internal/api"
	"github.com/radityarh/pulseband/internal/websocket"
	"github.com/radityarh/pulseband/usecase"
)

func main() {
	// Load environment variables from .env when present
	_ = godotenv.Load()

	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Model storage: MongoDB when configured, in-memory with a retention
	// sweep otherwise.
	var models repositories.ModelRepository
	var mongoClient *mongo.Client
	if os.Getenv("MONGODB_URI") != "" {
		client, err := mongo.NewClient(logger)
		if err != nil {
			logger.Fatal("failed to connect to MongoDB", zap.Error(err))
		}
		mongoClient = client
		models = mongo.NewModelRepository(client.Database)
	} else {
		memory := adapters.NewMemoryModelRepository()
		models = memory
	}

	retention := adapters.NewRetentionService(models, modelTTL(), 10*time.Minute, logger)
	retention.Start()
	defer retention.Stop()

	// Initialize WebSocket hub for live viewers
	hub := websocket.NewHub(logger)
	go hub.Run()

	// Initialize usecase services
	heartbeats := usecase.NewHeartbeatService(logger)
	bracelets := usecase.NewBraceletService(models, hub, logger)

	// Initialize API routes
	api.InitRoutes(e, heartbeats, bracelets, hub, logger)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if mongoClient != nil {
		if err := mongoClient.Close(ctx); err != nil {
			logger.Error("Failed to close MongoDB connection", zap.Error(err))
		}
	}

	logger.Info("Server exited")
}

// modelTTL reads the stored-model time-to-live from MODEL_TTL, defaulting to
// one hour.
func modelTTL() time.Duration {
	if v := os.Getenv("MODEL_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return time.Hour
}
