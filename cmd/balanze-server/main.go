package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shalconnects/balanze-go/internal/app"
	"github.com/shalconnects/balanze-go/internal/config"
	"github.com/shalconnects/balanze-go/internal/logging"
	"github.com/shalconnects/balanze-go/internal/server"
)

// Set with -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	configPath := flag.String("config", os.Getenv("BALANZE_CONFIG"), "path to a TOML config file")
	flag.Parse()

	cfg, err := config.LoadConfig("balanze.toml", *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize app", "error", err)
		os.Exit(1)
	}

	srv := server.New(a.Assistant, &server.Options{Logger: logger}).NewHTTPServer(cfg.Server.Addr())

	printBanner(cfg, logger)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}

	a.Close()
	logger.Info("Server stopped")
}
