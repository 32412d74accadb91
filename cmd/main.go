package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tenantnotes/internal/api"
	"tenantnotes/internal/auth"
	"tenantnotes/internal/billing"
	"tenantnotes/internal/config"
	"tenantnotes/internal/events"
	"tenantnotes/internal/logger"
	"tenantnotes/internal/metrics"
	"tenantnotes/internal/storage"
)

// @title TenantNotes API
// @version 1.0
// @description Multi-tenant note-taking service with plan-based quotas
// @host localhost:8080
// @BasePath /
// @schemes http

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// Init Metrics
	metrics.Init()

	// Load Configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Server.Env, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("configuration loaded")

	// Setup JWT
	auth.SetSecret(cfg.Auth.JWTSecret)
	auth.SetTokenTTL(cfg.TokenTTL())

	// Init PostgreSQL
	db, err := storage.NewStorage(cfg.Database.URL)
	if err != nil {
		zlog.Fatal("failed to init db", zap.Error(err))
	}
	defer db.DB.Close()
	if err := db.EnsureSchema(); err != nil {
		zlog.Fatal("failed to ensure schema", zap.Error(err))
	}
	zlog.Info("postgres connected")

	// Init events pipeline. A missing broker URL means the service runs
	// without an audit trail.
	var publisher events.Publisher = events.NopPublisher{}
	var recorder *events.Recorder
	if cfg.RabbitMQ.URL != "" {
		rabbit, err := events.NewRabbitPublisher(cfg.RabbitMQ.URL)
		if err != nil {
			zlog.Fatal("failed to connect to RabbitMQ", zap.Error(err))
		}
		defer rabbit.Close()
		zlog.Info("rabbitmq connected")

		recorder = events.NewRecorder(rabbit, db, cfg.Workers, zlog)
		if err := recorder.Start(); err != nil {
			zlog.Fatal("failed to start event recorder", zap.Error(err))
		}

		// Background loop exporting the events queue depth
		go func() {
			ticker := time.NewTicker(10 * time.Second)
			defer ticker.Stop()
			for range ticker.C {
				if err := rabbit.UpdateQueueDepth(); err != nil {
					zlog.Warn("failed to update queue depth", zap.Error(err))
				}
			}
		}()

		publisher = rabbit
	} else {
		zlog.Warn("no rabbitmq url configured, audit events disabled")
	}

	// Init API
	apiHandler := api.NewAPI(db, billing.NewMockProcessor(), publisher, zlog)
	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: apiHandler.Router(),
	}

	// Graceful Shutdown Setup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zlog.Info("starting API server", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done() // Wait for interrupt signal
	zlog.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("http shutdown error", zap.Error(err))
	}

	if recorder != nil {
		recorder.Stop()
	}

	zlog.Info("graceful shutdown complete")
}
