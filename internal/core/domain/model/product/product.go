// Package product contains the Product aggregate and its Category reference data.
package product

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrStillReferenced is returned when deleting a product that existing
	// orders reference. Orders are historical records; the delete is rejected,
	// never cascaded.
	ErrStillReferenced = errors.New("product is referenced by existing orders")

	// ErrStillInCatalog is returned when deleting a product that a factory
	// still carries in its catalog.
	ErrStillInCatalog = errors.New("product is still carried by a factory catalog")
)

// Product represents a catalog item that factories stock and sale points order.
//
// Product invariants:
//   - Must have a valid unique identifier and a nonempty name
//   - Price and weight are exact decimal magnitudes, never negative
//   - Identity is immutable once created
type Product struct {
	id          kernel.UUID
	name        string
	price       kernel.Money
	weight      kernel.Money
	categoryID  *kernel.UUID
	description string

	isConstructed bool
}

// NewProduct creates a Product with validated attributes. categoryID and
// description are optional (nil / empty allowed). This is also the restore
// path from persistence since products carry no lifecycle state.
func NewProduct(
	id kernel.UUID,
	name string,
	price kernel.Money,
	weight kernel.Money,
	categoryID *kernel.UUID,
	description string,
) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setWeight(weight),
		p.setCategory(categoryID),
	); err != nil {
		return nil, err
	}

	p.description = description
	return p, nil
}

// Validate ensures the Product was constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Weight returns the product's unit weight.
func (p *Product) Weight() kernel.Money {
	return p.weight
}

// Category returns the product's category identifier, nil when uncategorized.
func (p *Product) Category() *kernel.UUID {
	return p.categoryID
}

// Description returns the optional free-form description.
func (p *Product) Description() string {
	return p.description
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setWeight(weight kernel.Money) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	p.weight = weight
	return nil
}

func (p *Product) setCategory(categoryID *kernel.UUID) error {
	if categoryID == nil {
		return nil
	}
	if err := categoryID.Validate(); err != nil {
		return err
	}
	p.categoryID = categoryID
	return nil
}
