package service

import (
	"context"
	"log/slog"

	"github.com/msomdec/social-media-api/internal/domain"
)

// storageFailure logs a gateway failure and wraps it as a *domain.StorageError.
func storageFailure(ctx context.Context, logger *slog.Logger, op string, err error) error {
	logger.ErrorContext(ctx, "storage failure", "op", op, "error", err)
	return &domain.StorageError{Op: op, Err: err}
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
