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

// PgxCostOverrideRepository reads negotiated cost overrides using pgxpool.
type PgxCostOverrideRepository struct {
	BaseRepository
}

// NewPgxCostOverrideRepository creates a new PgxCostOverrideRepository.
func NewPgxCostOverrideRepository(db *pgxpool.Pool) *PgxCostOverrideRepository {
	return &PgxCostOverrideRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// ListCostOverrides returns the overrides in effect at the filter's instant, newest first.
// Customer and region columns, when set, must equal the request's values.
func (r *PgxCostOverrideRepository) ListCostOverrides(ctx context.Context, filter portsrepo.CostOverrideFilter) ([]domain.CostOverride, error) {
	query := `
		SELECT
			cost_override_id, product_id, customer, region, unit_price,
			currency_code, effective_from, effective_to
		FROM cost_overrides
		WHERE product_id = $1
			AND (customer IS NULL OR customer = $2::text)
			AND (region IS NULL OR region = $3::text)
			AND effective_from <= $4
			AND (effective_to IS NULL OR effective_to >= $4)
		ORDER BY effective_from DESC, cost_override_id ASC;
	`

	rows, err := r.Pool.Query(ctx, query, filter.ProductID, filter.Customer, filter.Region, filter.At)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list cost overrides", err)
	}
	defer rows.Close()

	overrides := []domain.CostOverride{}
	for rows.Next() {
		var m models.CostOverride
		err := rows.Scan(
			&m.CostOverrideID, &m.ProductID, &m.Customer, &m.Region, &m.UnitPrice,
			&m.CurrencyCode, &m.EffectiveFrom, &m.EffectiveTo,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cost override", err)
		}
		overrides = append(overrides, mapping.ToDomainCostOverride(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cost overrides", err)
	}

	return overrides, nil
}
