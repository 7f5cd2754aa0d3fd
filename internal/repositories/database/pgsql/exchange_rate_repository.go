package pgsql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SscSPs/quote_pricing_app/internal/apperrors"
	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
	"github.com/SscSPs/quote_pricing_app/internal/models"
	"github.com/SscSPs/quote_pricing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository reads exchange rates using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindExchangeRate retrieves the latest rate for the exact currency pair dated on or before at.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, base, quote string, at time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT
			exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2 AND date_effective <= $3::date
		ORDER BY date_effective DESC
		LIMIT 1;
	`

	var modelRate models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, strings.ToUpper(base), strings.ToUpper(quote), at).Scan(
		&modelRate.ExchangeRateID, &modelRate.FromCurrencyCode, &modelRate.ToCurrencyCode,
		&modelRate.Rate, &modelRate.DateEffective,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no exchange rate found for currency pair " + base + " to " + quote)
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}
