package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inmomax/internal/config"
	"inmomax/internal/handler"
	"inmomax/internal/service"
	"inmomax/internal/store"
	"inmomax/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger(cfg.Logging.Level, cfg.Logging.Format)
	utils.Logger.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}).Info("InmoMax API starting")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize the in-memory store with the demo portfolio
	st := store.NewMemory(store.SeedAgent(), store.SeedProperties(time.Now())...)

	// Initialize services
	catalog := service.NewCatalog(st, cfg.Catalog)
	classifier := service.NewClassifier()

	seed := cfg.Chat.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	responder := service.NewResponder(cfg.Chat, rand.New(rand.NewSource(seed)))

	// Initialize handlers
	propertyHandler := handler.NewPropertyHandler(catalog)
	chatHandler := handler.NewChatHandler(classifier, responder)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "inmomax-api",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	handler.RegisterPropertyRoutes(apiV1, propertyHandler)
	handler.RegisterChatRoutes(apiV1, chatHandler)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	utils.Logger.Infof("Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			utils.Logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Logger.Info("Shutting down server")
}
