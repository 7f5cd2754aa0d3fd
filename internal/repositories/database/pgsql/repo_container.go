package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/quote_pricing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store composes the pgx repositories into a single PricingStore.
type Store struct {
	*PgxProductRepository
	*PgxSupplierQuoteRepository
	*PgxCostOverrideRepository
	*PgxExchangeRateRepository
	base BaseRepository
}

// NewStore creates a PricingStore over dbPool.
func NewStore(dbPool *pgxpool.Pool) *Store {
	return &Store{
		PgxProductRepository:       NewPgxProductRepository(dbPool),
		PgxSupplierQuoteRepository: NewPgxSupplierQuoteRepository(dbPool),
		PgxCostOverrideRepository:  NewPgxCostOverrideRepository(dbPool),
		PgxExchangeRateRepository:  NewPgxExchangeRateRepository(dbPool),
		base:                       BaseRepository{Pool: dbPool},
	}
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.base.Ping(ctx)
}

var _ portsrepo.PricingStore = (*Store)(nil)
