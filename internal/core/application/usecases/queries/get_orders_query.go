package queries

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
	ErrNoSalePoints = errors.New("at least one sale point is required")
)

// GetOrdersQuery retrieves the orders placed by a set of sale points,
// typically the ones the calling user is affiliated with.
type GetOrdersQuery struct {
	salePointIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query scoped to the given sale points.
func NewGetOrdersQuery(salePointIDs []kernel.UUID) (GetOrdersQuery, error) {
	if len(salePointIDs) == 0 {
		return GetOrdersQuery{}, ErrNoSalePoints
	}
	for _, id := range salePointIDs {
		if err := id.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		salePointIDs: salePointIDs,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// SalePointIDs returns the scoping sale point identifiers.
func (q GetOrdersQuery) SalePointIDs() []kernel.UUID {
	return q.salePointIDs
}

// GetOrdersQueryResponse is one order row of the listing.
type GetOrdersQueryResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	SalePointID kernel.UUID
	Quantity    int
	PlacedAt    time.Time
	Status      string
}
