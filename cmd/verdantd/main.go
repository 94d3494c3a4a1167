// Package main is the entry point for verdantd, the development catalog
// server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/calyptra/verdant/internal/logging"
	"github.com/calyptra/verdant/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	addr := flag.String("addr", "", "listen address (optional, overrides PORT)")
	noSeed := flag.Bool("no-seed", false, "start with an empty catalog")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	// Local overrides live in .env; absence is fine.
	_ = godotenv.Load()

	logger, err := logging.NewServerLogger(*debug)
	if err != nil {
		basicLogger, _ := zap.NewProduction()
		basicLogger.Fatal("failed to initialize logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	listenAddr := *addr
	if listenAddr == "" {
		listenAddr = ":" + envPort()
	}

	store := server.NewMemoryStore()
	if !*noSeed && envBool("SEED", true) {
		store.Seed(server.SeedPlants())
	}

	srv := server.New(listenAddr, store, logger)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("server error", zap.Error(err))
		return 1
	case sig := <-shutdown:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
			return 1
		}
	}

	logger.Info("server stopped")
	return 0
}

func envPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "5000"
}

func envBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
