package product

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through the NewCategory factory method.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups products for catalog navigation. Deleting a category does
// not touch its products; they merely become uncategorized.
type Category struct {
	id          kernel.UUID
	name        string
	description string

	isConstructed bool
}

// NewCategory creates a Category with a validated id and name.
func NewCategory(id kernel.UUID, name string, description string) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Category{
		id:            id,
		name:          name,
		description:   description,
		isConstructed: true,
	}, nil
}

// Validate ensures the Category was constructed through NewCategory.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Description returns the optional description.
func (c *Category) Description() string {
	return c.description
}
