package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewDeleteProductCommand(productID)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("IsInAnyCatalog", mock.Anything, productID).Return(false, nil).Once(),
		productRepo.On("Remove", mock.Anything, productID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteProductCommandHandler_Handle_StillCarried(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewDeleteProductCommand(productID)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("IsInAnyCatalog", mock.Anything, productID).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, product.ErrStillInCatalog)
	productRepo.AssertNotCalled(t, "Remove", mock.Anything, productID)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestDeleteProductCommandHandler_Handle_ReferencedByOrders(t *testing.T) {
	// Given a product some order still references
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewDeleteProductCommand(productID)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("IsInAnyCatalog", mock.Anything, productID).Return(false, nil).Once(),
		productRepo.On("Remove", mock.Anything, productID).Return(product.ErrStillReferenced).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	// When the delete is attempted
	h := commands.NewDeleteProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	// Then the referential protection error is surfaced unchanged
	require.Error(t, err)
	assert.ErrorIs(t, err, product.ErrStillReferenced)
	uow.AssertNotCalled(t, "Commit", ctx)
}
