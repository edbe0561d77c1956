package commands

import (
	"context"
)

// RemoveStockCommandHandler removes warehouse entries wholesale.
// Removal is idempotent: products the factory never stocked are skipped.
type RemoveStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewRemoveStockCommandHandler creates a handler for stock removals.
func NewRemoveStockCommandHandler(uowFactory StockUoWFactory) RemoveStockCommandHandler {
	return RemoveStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes every listed entry in one transaction.
func (h *RemoveStockCommandHandler) Handle(ctx context.Context, cmd RemoveStockCommand) error {
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

	warehouseRepo := uow.WarehouseRepository()
	for _, productID := range cmd.ProductIDs() {
		if err := warehouseRepo.Remove(ctx, cmd.FactoryID(), productID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
