package commands

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/warehouse"
	"supplychain/internal/pkg/errs"
)

// AdjustStockCommandHandler applies signed stock changes to the ledger.
// The (factory, product) row is locked for the duration of the transaction,
// so concurrent adjustments of the same entry serialize.
type AdjustStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewAdjustStockCommandHandler creates a handler for stock adjustments.
func NewAdjustStockCommandHandler(uowFactory StockUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the delta to the entry.
//
// A credit against a missing entry creates it; a debit against a missing
// entry, or one that would drive the quantity negative, fails with
// ErrInsufficientStock. An entry emptied by the debit is pruned by its
// repository inside the same transaction.
func (h *AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
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
	entry, err := warehouseRepo.GetByFactoryAndProduct(ctx, cmd.FactoryID(), cmd.ProductID(), true)
	switch {
	case err == nil:
		if err = entry.Adjust(cmd.Delta()); err != nil {
			return err
		}
		if err = warehouseRepo.Update(ctx, entry); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		if cmd.Delta() < 0 {
			return warehouse.ErrInsufficientStock
		}
		entry, err = warehouse.NewEntry(kernel.NewUUID(), cmd.FactoryID(), cmd.ProductID(), cmd.Delta())
		if err != nil {
			return err
		}
		if err = warehouseRepo.Add(ctx, entry); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
