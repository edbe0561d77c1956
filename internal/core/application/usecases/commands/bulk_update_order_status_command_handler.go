package commands

import (
	"context"
)

// BulkUpdateOrderStatusCommandHandler applies a batch of status overwrites in
// one transaction. Either every item is applied or none is: the first failing
// item rolls back all earlier changes and is reported with its index through
// BulkItemError.
type BulkUpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBulkUpdateOrderStatusCommandHandler creates a handler for bulk status updates.
func NewBulkUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) BulkUpdateOrderStatusCommandHandler {
	return BulkUpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the items sequentially inside a single transaction.
func (h *BulkUpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd BulkUpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	for i, item := range cmd.Items() {
		aggregate, err := orderRepo.Get(ctx, item.OrderID)
		if err != nil {
			return &BulkItemError{Index: i, Err: err}
		}

		if err = aggregate.ChangeStatus(item.Status); err != nil {
			return &BulkItemError{Index: i, Err: err}
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return &BulkItemError{Index: i, Err: err}
		}
	}

	return uow.Commit(ctx)
}
