package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetStockQuantityQueryHandler looks up a single ledger quantity.
type GetStockQuantityQueryHandler struct {
	db *gorm.DB
}

// NewGetStockQuantityQueryHandler creates a handler for quantity lookups.
func NewGetStockQuantityQueryHandler(db *gorm.DB) GetStockQuantityQueryHandler {
	return GetStockQuantityQueryHandler{db: db}
}

// Handle returns the stored quantity, or zero when the factory has no entry
// for the product.
func (h GetStockQuantityQueryHandler) Handle(
	ctx context.Context,
	query GetStockQuantityQuery,
) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var quantity int
	row := h.db.WithContext(ctx).Raw(`
		SELECT quantity
		FROM factory_warehouses
		WHERE factory_id = ? AND product_id = ?
	`, query.FactoryID().Bytes(), query.ProductID().Bytes()).Row()

	if err := row.Scan(&quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	return quantity, nil
}
