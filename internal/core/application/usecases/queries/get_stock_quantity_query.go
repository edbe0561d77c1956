package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrGetStockQuantityQueryIsNotConstructed = errors.New(
	"GetStockQuantityQuery must be created via NewGetStockQuantityQuery constructor",
)

// GetStockQuantityQuery retrieves the on-hand quantity of one product at one
// factory. Products the factory does not stock report zero, matching the
// prune-at-zero ledger convention.
type GetStockQuantityQuery struct {
	factoryID kernel.UUID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockQuantityQuery creates a quantity lookup query.
func NewGetStockQuantityQuery(factoryID, productID kernel.UUID) (GetStockQuantityQuery, error) {
	if err := errors.Join(factoryID.Validate(), productID.Validate()); err != nil {
		return GetStockQuantityQuery{}, err
	}

	return GetStockQuantityQuery{
		factoryID: factoryID,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockQuantityQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQuantityQueryIsNotConstructed)
}

// FactoryID returns the factory to look in.
func (q GetStockQuantityQuery) FactoryID() kernel.UUID {
	return q.factoryID
}

// ProductID returns the product to look up.
func (q GetStockQuantityQuery) ProductID() kernel.UUID {
	return q.productID
}
