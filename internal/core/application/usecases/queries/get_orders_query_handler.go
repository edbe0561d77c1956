package queries

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders scoped to a set of sale points,
// newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns the sale points' orders ordered by placement time descending.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	salePointIDs := make([]uuid.UUID, 0, len(query.SalePointIDs()))
	for _, id := range query.SalePointIDs() {
		salePointIDs = append(salePointIDs, id.Bytes())
	}

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			sale_point_id,
			quantity,
			placed_at,
			status
		FROM product_orders
		WHERE sale_point_id IN ?
		ORDER BY placed_at DESC
	`, salePointIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id, productID, salePointID uuid.UUID

		err = rows.Scan(&id, &productID, &salePointID, &resp.Quantity, &resp.PlacedAt, &resp.Status)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if resp.SalePointID, err = kernel.UUIDFromBytes(salePointID[:]); err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
