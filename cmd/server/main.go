package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nshtkum/perplexchecker/internal/config"
	"github.com/nshtkum/perplexchecker/internal/handler"
	"github.com/nshtkum/perplexchecker/internal/repository"
	"github.com/nshtkum/perplexchecker/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Perplexity Property Checker")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize in-memory session store
	sessions, err := repository.NewSessionRepository()
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer sessions.Close()

	log.Println("✅ Session store ready (in-memory)")

	// Initialize Perplexity client
	client := service.NewPerplexityClient(&cfg.Perplexity)
	log.Printf("✅ Perplexity client initialized")
	log.Printf("   - API Base: %s", cfg.Perplexity.APIBase)
	log.Printf("   - Default model: %s", cfg.Perplexity.DefaultModel)
	log.Printf("   - Timeout: %ds", cfg.Perplexity.Timeout)
	if cfg.Perplexity.DefaultKey == "" {
		log.Println("   - No operator API key set; requests must carry a user key")
	}

	// Initialize services
	searchService := service.NewSearchService(client, service.NewTokenCounter(), sessions)

	log.Println("✅ Services initialized")

	// Initialize handlers
	searchHandler := handler.NewSearchHandler(searchService, cfg.Search.DefaultMaxImages, cfg.Search.MaxImagesCap)
	costHandler := handler.NewCostHandler()
	sessionHandler := handler.NewSessionHandler(searchService)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "X-Session-ID"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "perplexity-property-checker",
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
	{
		apiV1.POST("/property/search", searchHandler.SearchProperty)
		apiV1.POST("/images/search", searchHandler.SearchImages)

		apiV1.POST("/cost/estimate", costHandler.Estimate)
		apiV1.GET("/models", costHandler.Models)

		apiV1.GET("/session", sessionHandler.Get)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API: http://localhost:%d/api/v1", cfg.Server.Port)

	// Graceful shutdown
	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
