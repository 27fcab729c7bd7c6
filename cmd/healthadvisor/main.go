package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"healthadvisor/internal/adapter/advice"
	adapthttp "healthadvisor/internal/adapter/http"
	"healthadvisor/internal/adapter/memory"
	"healthadvisor/internal/adapter/postgres"
	"healthadvisor/internal/adapter/redis"
	"healthadvisor/internal/app"
	"healthadvisor/internal/domain"
)

// defaultAnalyzeURL matches the endpoint the advisory pages were built
// against.
const defaultAnalyzeURL = "http://127.0.0.1:5000"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	addr := env("ADDR", ":8080")
	webDir := env("WEB_DIR", "web")
	analyzeURL := env("ANALYZE_URL", defaultAnalyzeURL)
	timeout := envDuration("ANALYZE_TIMEOUT", 30*time.Second)

	store, closeStore, err := openStore(logger)
	if err != nil {
		logger.Fatal("store open", zap.Error(err))
	}
	defer closeStore()

	registry := app.NewRegistryService(store)
	sessions := app.NewSessionService(registry, store)
	reports := app.NewReportService()
	advisor := advice.NewClient(analyzeURL, timeout, logger)

	// Best-effort probe on startup; an unreachable service is only worth a
	// warning, submissions will surface their own errors.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if !advisor.CheckReachable(ctx) {
		logger.Warn("analysis service unreachable", zap.String("url", analyzeURL))
	}
	cancel()

	h := adapthttp.New(registry, sessions, advisor, reports, logger, webDir).Handler()
	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server", zap.Error(err))
	}
}

// openStore selects the key-value store driver from the environment.
func openStore(logger *zap.Logger) (domain.KeyValueStore, func(), error) {
	driver := env("STORE_DRIVER", "memory")
	switch driver {
	case "memory":
		logger.Warn("using in-memory store, accounts will not survive restarts")
		return memory.New(), func() {}, nil
	case "postgres":
		connStr := os.Getenv("DATABASE_URL")
		if connStr == "" {
			return nil, nil, errors.New("DATABASE_URL is required for the postgres driver")
		}
		s, err := postgres.Open(connStr)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case "redis":
		db, _ := strconv.Atoi(env("REDIS_DB", "0"))
		s, err := redis.Open(env("REDIS_ADDR", "127.0.0.1:6379"), os.Getenv("REDIS_PASSWORD"), db)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		return nil, nil, errors.New("unknown STORE_DRIVER: " + driver)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
