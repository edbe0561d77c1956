package commands

import (
	"context"

	"supplychain/internal/core/domain/model/product"
)

// DeleteProductCommandHandler removes products from the system.
//
// Two protections apply. A product still carried in any factory catalog is
// refused with product.ErrStillInCatalog. A product referenced by existing
// orders is refused by the database's referential constraint, surfaced as
// product.ErrStillReferenced; orders are history and never cascade-deleted.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for product deletion.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the product when nothing still depends on it.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	productRepo := uow.ProductRepository()
	carried, err := productRepo.IsInAnyCatalog(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if carried {
		return product.ErrStillInCatalog
	}

	if err = productRepo.Remove(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
