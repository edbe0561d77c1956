package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a factory registering a new product.
// The product is added to the creating factory's catalog in the same
// transaction, so a factory immediately carries what it creates.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	factoryID   kernel.UUID
	name        string
	price       kernel.Money
	weight      kernel.Money
	categoryID  *kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a product under the
// given factory's catalog. Category and description are optional.
func NewCreateProductCommand(
	productID kernel.UUID,
	factoryID kernel.UUID,
	name string,
	price kernel.Money,
	weight kernel.Money,
	categoryID *kernel.UUID,
	description string,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		categoryID:  categoryID,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setFactoryID(factoryID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setWeight(weight),
		cmd.validateCategory(categoryID),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier the product will be created under.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// FactoryID returns the creating factory's identifier.
func (c CreateProductCommand) FactoryID() kernel.UUID {
	return c.factoryID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the product's unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Weight returns the product's unit weight.
func (c CreateProductCommand) Weight() kernel.Money {
	return c.weight
}

// CategoryID returns the optional category identifier.
func (c CreateProductCommand) CategoryID() *kernel.UUID {
	return c.categoryID
}

// Description returns the optional free-form description.
func (c CreateProductCommand) Description() string {
	return c.description
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setFactoryID(factoryID kernel.UUID) error {
	if err := factoryID.Validate(); err != nil {
		return err
	}

	c.factoryID = factoryID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setWeight(weight kernel.Money) error {
	if err := weight.Validate(); err != nil {
		return err
	}

	c.weight = weight
	return nil
}

func (c *CreateProductCommand) validateCategory(categoryID *kernel.UUID) error {
	if categoryID == nil {
		return nil
	}
	return categoryID.Validate()
}
