// Package queries contains read operations that bypass the aggregate layer.
// Query handlers read the database directly and return flat response rows,
// never domain aggregates.
package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrGetStockCountsQueryIsNotConstructed = errors.New(
	"GetStockCountsQuery must be created via NewGetStockCountsQuery constructor",
)

// GetStockCountsQuery retrieves a factory's warehouse counts.
// Rows at zero never appear: they are pruned by the mutating commands.
type GetStockCountsQuery struct {
	factoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockCountsQuery creates a query for one factory's stock counts.
func NewGetStockCountsQuery(factoryID kernel.UUID) (GetStockCountsQuery, error) {
	if err := factoryID.Validate(); err != nil {
		return GetStockCountsQuery{}, err
	}

	return GetStockCountsQuery{
		factoryID: factoryID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetStockCountsQueryIsNotConstructed)
}

// FactoryID returns the factory whose counts are listed.
func (q GetStockCountsQuery) FactoryID() kernel.UUID {
	return q.factoryID
}

// GetStockCountsQueryResponse is one (product, quantity) row of the listing.
type GetStockCountsQueryResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
}
