package pgsql

import (
	"context"

	"github.com/SscSPs/quote_pricing_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ping checks that the pool can reach the database
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to ping database", err)
	}
	return nil
}
