package pgsql

import (
	"context"

	"github.com/SscSPs/quote_pricing_app/internal/apperrors"
	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/quote_pricing_app/internal/core/ports/repositories"
	"github.com/SscSPs/quote_pricing_app/internal/models"
	"github.com/SscSPs/quote_pricing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSupplierQuoteRepository reads supplier quotes using pgxpool.
type PgxSupplierQuoteRepository struct {
	BaseRepository
}

// NewPgxSupplierQuoteRepository creates a new PgxSupplierQuoteRepository.
func NewPgxSupplierQuoteRepository(db *pgxpool.Pool) *PgxSupplierQuoteRepository {
	return &PgxSupplierQuoteRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// ListSupplierQuotes returns the quotes covering the filter's quantity and instant,
// cheapest first. When the filter names a region, quotes scoped to another region are excluded.
func (r *PgxSupplierQuoteRepository) ListSupplierQuotes(ctx context.Context, filter portsrepo.SupplierQuoteFilter) ([]domain.SupplierQuote, error) {
	query := `
		SELECT
			supplier_quote_id, product_id, supplier, region, currency_code,
			min_qty, max_qty, unit_price, effective_from, effective_to
		FROM supplier_quotes
		WHERE product_id = $1
			AND ($2::text IS NULL OR region IS NULL OR region = $2::text)
			AND min_qty <= $3
			AND (max_qty IS NULL OR max_qty >= $3)
			AND effective_from <= $4
			AND (effective_to IS NULL OR effective_to >= $4)
		ORDER BY unit_price ASC, supplier_quote_id ASC;
	`

	rows, err := r.Pool.Query(ctx, query, filter.ProductID, filter.Region, filter.Quantity, filter.At)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list supplier quotes", err)
	}
	defer rows.Close()

	quotes := []domain.SupplierQuote{}
	for rows.Next() {
		var m models.SupplierQuote
		err := rows.Scan(
			&m.SupplierQuoteID, &m.ProductID, &m.Supplier, &m.Region, &m.CurrencyCode,
			&m.MinQty, &m.MaxQty, &m.UnitPrice, &m.EffectiveFrom, &m.EffectiveTo,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan supplier quote", err)
		}
		quotes = append(quotes, mapping.ToDomainSupplierQuote(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating supplier quotes", err)
	}

	return quotes, nil
}
