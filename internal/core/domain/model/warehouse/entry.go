// Package warehouse contains the stock ledger Entry aggregate.
//
// An Entry records the on-hand quantity of one product at one factory.
// The ledger invariant is that a quantity never goes negative, and a row
// whose quantity reaches zero does not persist: callers must remove empty
// entries within the same transaction that emptied them.
package warehouse

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not
	// created through the NewEntry factory method.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

	// ErrInsufficientStock is returned when a debit would drive an entry's
	// quantity below zero. The wording matches the client-facing message.
	ErrInsufficientStock = errors.New("insufficient product quantity in the factory warehouse")
)

// Entry is a (factory, product) stock record with a nonnegative quantity.
//
// Entry invariants:
//   - Factory and product identifiers are valid and immutable
//   - Quantity is never negative
//   - An entry at quantity zero is reported empty and must be pruned by its
//     repository within the mutating transaction
type Entry struct {
	id        kernel.UUID
	factoryID kernel.UUID
	productID kernel.UUID
	quantity  int

	isConstructed bool
}

// NewEntry creates a stock entry for a (factory, product) pair.
// Quantity must be nonnegative; zero is allowed so that bulk stock
// declarations can express "prune this row".
func NewEntry(id, factoryID, productID kernel.UUID, quantity int) (*Entry, error) {
	e := &Entry{isConstructed: true}

	if err := errors.Join(
		e.setID(id),
		e.setFactoryID(factoryID),
		e.setProductID(productID),
		e.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the Entry was constructed through NewEntry.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// FactoryID returns the owning factory's identifier.
func (e *Entry) FactoryID() kernel.UUID {
	return e.factoryID
}

// ProductID returns the stocked product's identifier.
func (e *Entry) ProductID() kernel.UUID {
	return e.productID
}

// Quantity returns the on-hand quantity.
func (e *Entry) Quantity() int {
	return e.quantity
}

// IsEmpty reports whether the entry reached zero and must be pruned.
func (e *Entry) IsEmpty() bool {
	return e.quantity == 0
}

// Debit removes amount units from the entry.
// Returns ErrInsufficientStock when amount exceeds the on-hand quantity;
// the entry is left unchanged in that case.
func (e *Entry) Debit(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}
	if amount > e.quantity {
		return ErrInsufficientStock
	}

	e.quantity -= amount
	return nil
}

// Credit adds amount units to the entry.
func (e *Entry) Credit(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	e.quantity += amount
	return nil
}

// Adjust applies a signed delta: positive credits, negative debits.
// A delta of zero is rejected.
func (e *Entry) Adjust(delta int) error {
	switch {
	case delta > 0:
		return e.Credit(delta)
	case delta < 0:
		return e.Debit(-delta)
	default:
		return errs.NewValueIsInvalidErrorWithCause("delta", errors.New("0 is not an adjustment"))
	}
}

// SetQuantity replaces the on-hand quantity, used by bulk stock declarations.
func (e *Entry) SetQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, int(^uint(0)>>1))
	}

	e.quantity = quantity
	return nil
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setFactoryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.factoryID = id
	return nil
}

func (e *Entry) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.productID = id
	return nil
}

func (e *Entry) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, int(^uint(0)>>1))
	}
	e.quantity = quantity
	return nil
}
