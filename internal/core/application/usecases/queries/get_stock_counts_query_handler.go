package queries

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStockCountsQueryHandler lists a factory's warehouse counts straight from
// the database, joined with product names for display.
type GetStockCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetStockCountsQueryHandler creates a handler for stock count listings.
func NewGetStockCountsQueryHandler(db *gorm.DB) GetStockCountsQueryHandler {
	return GetStockCountsQueryHandler{db: db}
}

// Handle returns the factory's counts ordered by product name.
func (h GetStockCountsQueryHandler) Handle(
	ctx context.Context,
	query GetStockCountsQuery,
) ([]GetStockCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make([]GetStockCountsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			fw.product_id,
			p.name,
			fw.quantity
		FROM factory_warehouses fw
		JOIN products p ON p.id = fw.product_id
		WHERE fw.factory_id = ?
		ORDER BY p.name
	`, query.FactoryID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var count GetStockCountsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &count.ProductName, &count.Quantity); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		count.ProductID = productID
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
