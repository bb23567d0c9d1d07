package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/msomdec/social-media-api/internal/domain"
	"github.com/msomdec/social-media-api/internal/handler"
	"github.com/msomdec/social-media-api/internal/repository/postgres"
	"github.com/msomdec/social-media-api/internal/repository/sqlite"
	"github.com/msomdec/social-media-api/internal/service"
)

func main() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		level = slog.LevelInfo
	}
	logOpts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	port := envOrDefault("PORT", "8080")

	loginRate, err := strconv.ParseFloat(envOrDefault("LOGIN_RATE_PER_SEC", "1"), 64)
	if err != nil || loginRate < 0 {
		slog.Error("invalid LOGIN_RATE_PER_SEC", "value", os.Getenv("LOGIN_RATE_PER_SEC"))
		os.Exit(1)
	}
	loginBurst, err := strconv.Atoi(envOrDefault("LOGIN_BURST", "5"))
	if err != nil || loginBurst < 1 {
		slog.Error("invalid LOGIN_BURST", "value", os.Getenv("LOGIN_BURST"))
		os.Exit(1)
	}

	db, err := openDatabase(context.Background())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	accountService := service.NewAccountService(db.Accounts(), logger.With("component", "accounts"))
	messageService := service.NewMessageService(db.Messages(), accountService, logger.With("component", "messages"))
	loginLimiter := service.NewLoginLimiter(loginRate, loginBurst)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, accountService, messageService, loginLimiter)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler.RequestLogger(handler.SecurityHeaders(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openDatabase picks the backend from DATABASE_DRIVER (sqlite or postgres).
func openDatabase(ctx context.Context) (domain.Database, error) {
	switch driver := envOrDefault("DATABASE_DRIVER", "sqlite"); driver {
	case "sqlite":
		path := envOrDefault("DATABASE_PATH", "social-media.db")
		slog.Info("using sqlite", "path", path)
		db, err := sqlite.New(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return nil, errors.New("DATABASE_URL environment variable is required for postgres")
		}
		slog.Info("using postgres")
		db, err := postgres.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", driver)
	}
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
