package commands

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/warehouse"
	"supplychain/internal/pkg/errs"
)

// SetStockCountsCommandHandler applies bulk stock declarations in a single
// transaction. Quantities replace whatever was stored; rows declared at zero
// are pruned so listings never show exhausted products.
type SetStockCountsCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewSetStockCountsCommandHandler creates a handler for bulk stock declarations.
func NewSetStockCountsCommandHandler(uowFactory StockUoWFactory) SetStockCountsCommandHandler {
	return SetStockCountsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle upserts every declared count. Declaring zero for a product the
// factory does not stock is a no-op.
func (h *SetStockCountsCommandHandler) Handle(ctx context.Context, cmd SetStockCountsCommand) error {
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
	for _, count := range cmd.Counts() {
		entry, err := warehouseRepo.GetByFactoryAndProduct(ctx, cmd.FactoryID(), count.ProductID, true)
		switch {
		case err == nil:
			if err = entry.SetQuantity(count.Quantity); err != nil {
				return err
			}
			if err = warehouseRepo.Update(ctx, entry); err != nil {
				return err
			}
		case errors.Is(err, errs.ErrObjectNotFound):
			if count.Quantity == 0 {
				continue
			}
			entry, err = warehouse.NewEntry(kernel.NewUUID(), cmd.FactoryID(), count.ProductID, count.Quantity)
			if err != nil {
				return err
			}
			if err = warehouseRepo.Add(ctx, entry); err != nil {
				return err
			}
		default:
			return err
		}
	}

	return uow.Commit(ctx)
}
