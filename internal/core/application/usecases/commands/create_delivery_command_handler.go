package commands

import (
	"context"

	"supplychain/internal/core/domain/model/shipping"
)

// CreateDeliveryCommandHandler records deliveries and links them to orders.
// Every covered order must exist; a missing one aborts the whole creation.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the delivery with its order links in one transaction.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	if len(cmd.OrderIDs()) > 0 {
		// existence check only; the link rows are written with the delivery
		if _, err := uow.OrderRepository().GetMany(ctx, cmd.OrderIDs()); err != nil {
			return err
		}
	}

	delivery, err := shipping.NewDelivery(
		cmd.DeliveryID(), cmd.CarrierID(), cmd.Cost(), cmd.Date(), cmd.Priority())
	if err != nil {
		return err
	}

	for _, orderID := range cmd.OrderIDs() {
		if err = delivery.AttachOrder(orderID); err != nil {
			return err
		}
	}

	if err = uow.DeliveryRepository().Add(ctx, delivery); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
