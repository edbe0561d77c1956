package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
	ErrDeltaIsZero = errors.New("delta must not be 0")
)

// AdjustStockCommand represents a signed change to one warehouse entry:
// a positive delta credits stock, a negative delta debits it.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	factoryID kernel.UUID
	productID kernel.UUID
	delta     int

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to adjust a factory's stock of a
// product by delta units. Zero deltas are rejected.
func NewAdjustStockCommand(factoryID, productID kernel.UUID, delta int) (AdjustStockCommand, error) {
	cmd := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFactoryID(factoryID),
		cmd.setProductID(productID),
		cmd.setDelta(delta),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// FactoryID returns the owning factory's identifier.
func (c AdjustStockCommand) FactoryID() kernel.UUID {
	return c.factoryID
}

// ProductID returns the stocked product's identifier.
func (c AdjustStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// Delta returns the signed quantity change.
func (c AdjustStockCommand) Delta() int {
	return c.delta
}

func (c *AdjustStockCommand) setFactoryID(factoryID kernel.UUID) error {
	if err := factoryID.Validate(); err != nil {
		return err
	}

	c.factoryID = factoryID
	return nil
}

func (c *AdjustStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AdjustStockCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsZero
	}

	c.delta = delta
	return nil
}
