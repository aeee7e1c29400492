package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"ir-analyzer/internal/database"
	"ir-analyzer/internal/handlers"
	"ir-analyzer/internal/ollama"
	"ir-analyzer/internal/services"
	"ir-analyzer/internal/transcribe"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database and run migrations
	dbConfig := database.LoadConfig()
	if err := database.Connect(dbConfig); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Build the backend clients once and inject them
	ollamaClient := ollama.NewClient(ollama.LoadConfig())
	transcriber := transcribe.NewService(transcribe.LoadConfig())

	// Report Ollama availability at startup
	if status := ollamaClient.CheckStatus(context.Background()); status.Available {
		log.Printf("Ollama is running with %d models available", status.ModelCount)
	} else {
		log.Printf("Ollama not available: %s", status.Error)
		log.Println("Please ensure Ollama is installed and running: https://ollama.ai")
	}

	uploadDir := filepath.Join(dbConfig.DataDir, "uploads")

	setupGracefulShutdown()
	setupServer(ollamaClient, transcriber, uploadDir)
}

func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Received shutdown signal, gracefully shutting down...")
		database.Close()
		log.Println("Shutdown complete")
		os.Exit(0)
	}()
}

func setupServer(ollamaClient *ollama.Client, transcriber *transcribe.Service, uploadDir string) {
	// Set Gin mode based on environment
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Initialize services and handlers
	documentsService := services.NewDocumentsService(database.DB, ollamaClient, transcriber, uploadDir)
	comparisonsService := services.NewComparisonsService(database.DB)
	metricsService := services.NewMetricsService(database.DB)

	documentsHandler := handlers.NewDocumentsHandler(documentsService, ollamaClient)
	audioHandler := handlers.NewAudioHandler(documentsService, transcriber)
	comparisonsHandler := handlers.NewComparisonsHandler(comparisonsService)
	metricsHandler := handlers.NewMetricsHandler(metricsService)
	ollamaHandler := handlers.NewOllamaHandler(ollamaClient)
	docsHandler := handlers.NewDocsHandler()

	// Health check
	r.GET("/health", ollamaHandler.Health)

	// Serve Markdown documentation as HTML
	r.GET("/doc/:doc", docsHandler.ServeMarkdownAsHTML)

	// API routes
	api := r.Group("/api")
	{
		ollamaGroup := api.Group("/ollama")
		{
			ollamaGroup.GET("/status", ollamaHandler.Status)
			ollamaGroup.GET("/models", ollamaHandler.Models)
			ollamaGroup.POST("/test-model", ollamaHandler.TestModel)
		}

		documents := api.Group("/documents")
		{
			documents.POST("", documentsHandler.Upload)
			documents.GET("", documentsHandler.List)
			documents.POST("/audio", audioHandler.UploadAudio)
			documents.GET("/:id", documentsHandler.Get)
			documents.GET("/:id/analysis", documentsHandler.GetAnalysis)
		}

		audio := api.Group("/audio")
		{
			audio.GET("/status", audioHandler.Status)
			audio.POST("/transcribe", audioHandler.Transcribe)
		}

		comparisons := api.Group("/comparisons")
		{
			comparisons.POST("", comparisonsHandler.Create)
			comparisons.GET("", comparisonsHandler.List)
			comparisons.GET("/:id", comparisonsHandler.Get)
			comparisons.DELETE("/:id", comparisonsHandler.Delete)
		}

		metrics := api.Group("/metrics")
		{
			metrics.GET("/history", metricsHandler.History)
			metrics.GET("/by-type/:document_type", metricsHandler.ByType)
			metrics.GET("/averages", metricsHandler.Averages)
		}
	}

	// Get port from environment or default to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
