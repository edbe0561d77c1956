package commands

import (
	"context"
	"errors"
	"time"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/warehouse"
	"supplychain/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Finds a factory warehouse entry holding enough stock, debits it and creates
// the order in a single transaction, so a failed placement never changes the
// ledger.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(kernel.NewUUID(), salePointID, productID, 10)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, warehouse.ErrInsufficientStock) {
//	        // no factory can satisfy the quantity
//	    }
//	    return err
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a PlaceOrderUoWFactory for transactional persistence across the
// warehouse and order repositories.
func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
//
// The first warehouse entry (in stable factory order) holding at least the
// requested quantity is locked and debited; an entry emptied by the debit is
// pruned by its repository. When no entry can satisfy the quantity the
// transaction rolls back and ErrInsufficientStock is returned.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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
	entry, err := warehouseRepo.GetFirstWithStock(ctx, cmd.ProductID(), cmd.Quantity(), true)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return warehouse.ErrInsufficientStock
		}
		return err
	}

	if err = entry.Debit(cmd.Quantity()); err != nil {
		return err
	}

	if err = warehouseRepo.Update(ctx, entry); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.ProductID(), cmd.SalePointID(), cmd.Quantity(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
