package commands

import (
	"context"

	"supplychain/internal/core/domain/model/product"
)

// CreateProductCommandHandler registers products and links them into the
// creating factory's catalog.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the product and its catalog placement atomically.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newProduct, err := product.NewProduct(
		cmd.ProductID(), cmd.Name(), cmd.Price(), cmd.Weight(), cmd.CategoryID(), cmd.Description())
	if err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	if err = productRepo.Add(ctx, newProduct); err != nil {
		return err
	}

	if err = productRepo.AddToFactoryCatalog(ctx, cmd.ProductID(), cmd.FactoryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
