package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecg-postprocessing/config"
	"ecg-postprocessing/internal/database"
	"ecg-postprocessing/internal/delineation"
	"ecg-postprocessing/internal/handlers"
	"ecg-postprocessing/internal/middleware"
	"ecg-postprocessing/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.InitLogger()
	slog.Info("Starting ECG post-processing service", "version", "1.0.0")

	cfg := config.Load()
	slog.Info("Configuration loaded successfully",
		"server_port", cfg.Server.Port,
		"signal_dir", cfg.Pipeline.SignalDir,
		"output_dir", cfg.Pipeline.OutputDir,
		"sample_rate", cfg.Pipeline.SampleRate,
	)

	// БД опциональна: без нее недоступна только история записей
	var dataService *services.DataService
	if cfg.Database.Enabled {
		db, err := database.Connect(cfg)
		if err != nil {
			slog.Error("Ошибка подключения к БД", "error", err)
			os.Exit(1)
		}
		if err := database.RunMigrations(db); err != nil {
			slog.Error("Ошибка миграций", "error", err)
			os.Exit(1)
		}
		dataService = services.NewDataService(db)
	}

	oracle := delineation.NewHTTPOracle(cfg.Oracle.ServiceURL, time.Duration(cfg.Oracle.Timeout)*time.Second)
	signalService := services.NewSignalService()
	featureService := services.NewFeatureService(cfg, oracle, signalService)
	featuresHandler := handlers.NewFeaturesHandler(featureService, dataService)

	gin.SetMode(cfg.Server.Mode)
	router := setupRouter(cfg, featuresHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	waitForShutdown(server)
}

func setupRouter(cfg *config.Config, featuresHandler *handlers.FeaturesHandler) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")

	if cfg.Auth.Enabled {
		jwtService := services.NewJWTService(cfg.Auth.JWTSecret)
		jwtMiddleware := middleware.NewJWTMiddleware(jwtService)
		api.Use(jwtMiddleware.RequireAuth())
	}

	{
		api.POST("/features", featuresHandler.ComputeFeatures)
		api.GET("/records/:filename", featuresHandler.GetRecord)
		api.GET("/records/:filename/history", featuresHandler.GetRecordHistory)
		api.GET("/waveform/:filename", featuresHandler.GetWaveform)
		api.GET("/health", featuresHandler.Health)
	}

	return router
}

func waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server gracefully stopped")
}
