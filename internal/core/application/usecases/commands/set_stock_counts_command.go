package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrSetStockCountsCommandIsNotConstructed = errors.New(
		"SetStockCountsCommand must be created via NewSetStockCountsCommand constructor",
	)
	ErrCountIsNegative = errors.New("count must not be negative")
)

// StockCount is one (product, quantity) pair of a bulk stock declaration.
// A quantity of zero declares "this factory no longer stocks the product".
type StockCount struct {
	ProductID kernel.UUID
	Quantity  int
}

// SetStockCountsCommand represents a factory's bulk stock declaration: the
// listed products end up at exactly the declared quantities.
type SetStockCountsCommand struct { //nolint:recvcheck //using for validation
	factoryID kernel.UUID
	counts    []StockCount

	guard guard.ConstructorGuard
}

// NewSetStockCountsCommand creates a bulk stock declaration command.
// Requires at least one count; negative quantities are rejected up front.
func NewSetStockCountsCommand(factoryID kernel.UUID, counts []StockCount) (SetStockCountsCommand, error) {
	if err := factoryID.Validate(); err != nil {
		return SetStockCountsCommand{}, err
	}
	if len(counts) == 0 {
		return SetStockCountsCommand{}, ErrNoItems
	}

	for i, count := range counts {
		if err := count.ProductID.Validate(); err != nil {
			return SetStockCountsCommand{}, &BulkItemError{Index: i, Err: err}
		}
		if count.Quantity < 0 {
			return SetStockCountsCommand{}, &BulkItemError{Index: i, Err: ErrCountIsNegative}
		}
	}

	return SetStockCountsCommand{
		factoryID: factoryID,
		counts:    counts,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetStockCountsCommand) Validate() error {
	return c.guard.Validate(ErrSetStockCountsCommandIsNotConstructed)
}

// FactoryID returns the declaring factory's identifier.
func (c SetStockCountsCommand) FactoryID() kernel.UUID {
	return c.factoryID
}

// Counts returns the declared (product, quantity) pairs.
func (c SetStockCountsCommand) Counts() []StockCount {
	return c.counts
}
