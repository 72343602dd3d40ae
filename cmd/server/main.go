package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TRECGEN/internal"
	"TRECGEN/internal/config"
	"TRECGEN/internal/handlers"
	"TRECGEN/internal/middleware"
	"TRECGEN/internal/services"
	"TRECGEN/internal/storage"
	"TRECGEN/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	if err := internal.InitDB(cfg); err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer internal.CloseDB()

	ctx := context.Background()
	gcsClient, err := storage.NewGCSClient(ctx, cfg.GCS.BucketName, cfg.GCS.ProjectID, cfg.GCS.CredentialsPath)
	if err != nil {
		slog.Error("failed to initialize GCS client", "error", err)
		os.Exit(1)
	}
	defer gcsClient.Close()

	// The template is loaded once; a missing or malformed template is a
	// deployment failure, not something to surface per request.
	templateService, err := services.NewTemplateService(cfg.Template.Path)
	if err != nil {
		slog.Error("failed to load TREC template", "path", cfg.Template.Path, "error", err)
		os.Exit(1)
	}

	creditService := services.NewCreditService(internal.DB)
	defaultsService := services.NewDefaultsService(internal.DB)
	generationService := services.NewGenerationService(internal.DB, creditService, defaultsService, templateService.Filler(), gcsClient)
	bulkService := services.NewBulkService(internal.DB, creditService, generationService, defaultsService, templateService.Filler(), gcsClient)
	activityService := services.NewActivityLogService(internal.DB)

	authHandler := handlers.NewAuthHandler(internal.DB, &cfg.Auth)
	contractHandler := handlers.NewContractHandler(generationService, gcsClient)
	bulkHandler := handlers.NewBulkHandler(bulkService)
	defaultsHandler := handlers.NewDefaultsHandler(defaultsService)
	creditHandler := handlers.NewCreditHandler(creditService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	activityHandler := handlers.NewActivityHandler(activityService)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	}))

	// Initialize file cleanup service (files older than 24 hours will be deleted)
	cleanupService := handlers.NewFileCleanupService(cfg.Template.UploadDir, cfg.Template.OutputDir, 24*time.Hour)
	cleanupService.Start()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		slog.Info("shutting down server")
		cleanupService.Stop()
		activityService.Close()
		internal.CloseDB()
		os.Exit(0)
	}()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
	}

	v1 := r.Group("/api/v1")
	v1.Use(activityService.LoggingMiddleware())
	v1.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		v1.POST("/contracts", contractHandler.Generate)
		v1.GET("/contracts", contractHandler.List)
		v1.GET("/contracts/:contractId/download", contractHandler.Download)
		v1.POST("/contracts/bulk", bulkHandler.GenerateBulk)

		v1.POST("/properties/upload", bulkHandler.UploadProperties)
		v1.GET("/properties", bulkHandler.ListProperties)

		v1.GET("/defaults", defaultsHandler.Get)
		v1.PUT("/defaults", defaultsHandler.Put)

		v1.GET("/credits", creditHandler.Balance)
		v1.GET("/template/fields", templateHandler.Fields)
		v1.GET("/activity", activityHandler.List)
	}

	slog.Info("starting server", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
