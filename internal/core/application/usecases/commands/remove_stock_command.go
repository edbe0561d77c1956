package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrRemoveStockCommandIsNotConstructed = errors.New(
	"RemoveStockCommand must be created via NewRemoveStockCommand constructor",
)

// RemoveStockCommand represents a factory dropping products from its
// warehouse entirely, regardless of remaining quantity.
type RemoveStockCommand struct { //nolint:recvcheck //using for validation
	factoryID  kernel.UUID
	productIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveStockCommand creates a command to remove the factory's stock
// entries for the given products.
func NewRemoveStockCommand(factoryID kernel.UUID, productIDs []kernel.UUID) (RemoveStockCommand, error) {
	if err := factoryID.Validate(); err != nil {
		return RemoveStockCommand{}, err
	}
	if len(productIDs) == 0 {
		return RemoveStockCommand{}, ErrNoItems
	}

	for i, productID := range productIDs {
		if err := productID.Validate(); err != nil {
			return RemoveStockCommand{}, &BulkItemError{Index: i, Err: err}
		}
	}

	return RemoveStockCommand{
		factoryID:  factoryID,
		productIDs: productIDs,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveStockCommand) Validate() error {
	return c.guard.Validate(ErrRemoveStockCommandIsNotConstructed)
}

// FactoryID returns the owning factory's identifier.
func (c RemoveStockCommand) FactoryID() kernel.UUID {
	return c.factoryID
}

// ProductIDs returns the products whose entries are removed.
func (c RemoveStockCommand) ProductIDs() []kernel.UUID {
	return c.productIDs
}
