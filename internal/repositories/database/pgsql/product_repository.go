package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/quote_pricing_app/internal/apperrors"
	"github.com/SscSPs/quote_pricing_app/internal/core/domain"
	"github.com/SscSPs/quote_pricing_app/internal/models"
	"github.com/SscSPs/quote_pricing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxProductRepository reads catalog products using pgxpool.
type PgxProductRepository struct {
	BaseRepository
}

// NewPgxProductRepository creates a new PgxProductRepository.
func NewPgxProductRepository(db *pgxpool.Pool) *PgxProductRepository {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetProductBySku retrieves a product by its unique SKU.
func (r *PgxProductRepository) GetProductBySku(ctx context.Context, sku string) (*domain.Product, error) {
	query := `
		SELECT product_id, sku, name, base_currency, created_at
		FROM products
		WHERE sku = $1;
	`

	var modelProduct models.Product
	err := r.Pool.QueryRow(ctx, query, sku).Scan(
		&modelProduct.ProductID, &modelProduct.SKU, &modelProduct.Name,
		&modelProduct.BaseCurrency, &modelProduct.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("product with SKU " + sku + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get product by SKU", err)
	}

	domainProduct := mapping.ToDomainProduct(modelProduct)
	return &domainProduct, nil
}
