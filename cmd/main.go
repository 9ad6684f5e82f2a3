/*
Package main is the entry point for the church site backend.

It is responsible for loading configuration, initializing the global logging
system, connecting to the database and object storage, seeding the editable
site content, setting up the HTTP server with its live chat registry, and
gracefully handling operating system interrupt signals (SIGINT, SIGTERM)
to ensure a smooth server shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sueun-dev/university-church-in-maryland/internal/app/content"
	"github.com/sueun-dev/university-church-in-maryland/internal/app/db"
	"github.com/sueun-dev/university-church-in-maryland/internal/app/livechat"
	"github.com/sueun-dev/university-church-in-maryland/internal/app/storage"
	"github.com/sueun-dev/university-church-in-maryland/internal/app/store"
	"github.com/sueun-dev/university-church-in-maryland/internal/configs"
	"github.com/sueun-dev/university-church-in-maryland/internal/handler"
	"github.com/sueun-dev/university-church-in-maryland/internal/pkg/logx"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Int64("max_upload_mb", cfg.MaxUploadMB).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Failed to connect to database")
	}
	defer pool.Close()

	dataStore := store.New(pool)

	if err := dataStore.SeedContentDefaults(ctx, content.Defaults()); err != nil {
		logx.Fatal(err, "Failed to seed site content defaults")
	}

	objectStorage, err := storage.NewStorageService(storage.ServiceConfig{
		S3BucketName:      cfg.S3BucketName,
		S3Endpoint:        cfg.S3Endpoint,
		S3AccessKeyID:     cfg.S3AccessKeyID,
		S3SecretAccessKey: cfg.S3SecretAccessKey,
	})
	if err != nil {
		logx.Fatal(err, "Failed to initialize object storage")
	}

	registry := livechat.NewRegistry()

	router := handler.Router(&handler.AppDeps{
		Registry: registry,
		Config:   cfg,
		Storage:  objectStorage,
		Store:    dataStore,
	})

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("UChurchMD Server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	logx.Info("Server gracefully stopped.")
}
