package commands

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/guard"
)

var (
	ErrBulkUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"BulkUpdateOrderStatusCommand must be created via NewBulkUpdateOrderStatusCommand constructor",
	)
	ErrNoItems = errors.New("at least one item is required")
)

// BulkStatusItem is one (order, target status) pair of a bulk update.
type BulkStatusItem struct {
	OrderID kernel.UUID
	Status  order.Status
}

// BulkItemError reports which item of a bulk update failed and why.
// The whole batch is rolled back when any item fails.
type BulkItemError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *BulkItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

// Unwrap exposes the underlying item failure for errors.Is/As matching.
func (e *BulkItemError) Unwrap() error {
	return e.Err
}

// BulkUpdateOrderStatusCommand represents a request to move several orders to
// new statuses atomically. Items are applied in the given order; the first
// failure aborts the batch.
type BulkUpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	items []BulkStatusItem

	guard guard.ConstructorGuard
}

// NewBulkUpdateOrderStatusCommand creates a bulk status update command.
// Requires at least one item; every identifier and status is validated up
// front so the handler only sees well-formed items.
func NewBulkUpdateOrderStatusCommand(items []BulkStatusItem) (BulkUpdateOrderStatusCommand, error) {
	if len(items) == 0 {
		return BulkUpdateOrderStatusCommand{}, ErrNoItems
	}

	for i, item := range items {
		if err := item.OrderID.Validate(); err != nil {
			return BulkUpdateOrderStatusCommand{}, &BulkItemError{Index: i, Err: err}
		}
		if err := item.Status.Validate(); err != nil {
			return BulkUpdateOrderStatusCommand{}, &BulkItemError{Index: i, Err: err}
		}
	}

	return BulkUpdateOrderStatusCommand{
		items: items,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkUpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrBulkUpdateOrderStatusCommandIsNotConstructed)
}

// Items returns the (order, status) pairs in application order.
func (c BulkUpdateOrderStatusCommand) Items() []BulkStatusItem {
	return c.items
}
