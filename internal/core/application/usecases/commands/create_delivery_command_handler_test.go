package commands_test

import (
	"testing"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/shipping"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	covered := processingOrder(t)
	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, kernel.NewUUID(), money(t, "49.90"), time.Now().UTC(),
		shipping.High, []kernel.UUID{covered.ID()})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetMany", mock.Anything, []kernel.UUID{covered.ID()}).
			Return([]*order.Order{covered}, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.MatchedBy(func(d *shipping.Delivery) bool {
			return d.ID().IsEqual(deliveryID) && len(d.Orders()) == 1
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_MissingOrderAborts(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), kernel.NewUUID(), money(t, "49.90"), time.Now().UTC(),
		shipping.Low, []kernel.UUID{missingID})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetMany", mock.Anything, []kernel.UUID{missingID}).
			Return(nil, errs.NewObjectNotFoundError("orderID", missingID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "DeliveryRepository")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateDeliveryCommandHandler_Handle_NoOrders(t *testing.T) {
	// A delivery with no covered orders skips the existence check
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), kernel.NewUUID(), money(t, "10"), time.Now().UTC(),
		shipping.Medium, nil)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipping.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.AssertNotCalled(t, "OrderRepository")
}
