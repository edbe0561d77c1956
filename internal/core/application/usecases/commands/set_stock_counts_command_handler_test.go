package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/warehouse"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSetStockCountsCommand_NegativeCount(t *testing.T) {
	_, err := commands.NewSetStockCountsCommand(kernel.NewUUID(), []commands.StockCount{
		{ProductID: kernel.NewUUID(), Quantity: -1},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCountIsNegative)
}

func TestNewSetStockCountsCommand_NoCounts(t *testing.T) {
	_, err := commands.NewSetStockCountsCommand(kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoItems)
}

func TestSetStockCountsCommandHandler_Handle_UpsertsAndCreates(t *testing.T) {
	// Given one stocked product and one the factory never carried
	ctx := t.Context()
	factoryID := kernel.NewUUID()
	stockedID := kernel.NewUUID()
	newID := kernel.NewUUID()
	entry, err := warehouse.NewEntry(kernel.NewUUID(), factoryID, stockedID, 40)
	require.NoError(t, err)

	cmd, err := commands.NewSetStockCountsCommand(factoryID, []commands.StockCount{
		{ProductID: stockedID, Quantity: 70},
		{ProductID: newID, Quantity: 15},
	})
	require.NoError(t, err)

	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockStockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("GetByFactoryAndProduct", mock.Anything, factoryID, stockedID, true).
			Return(entry, nil).Once(),
		warehouseRepo.On("Update", mock.Anything, entry).Return(nil).Once(),
		warehouseRepo.On("GetByFactoryAndProduct", mock.Anything, factoryID, newID, true).
			Return(nil, errs.NewObjectNotFoundError("productID", newID)).Once(),
		warehouseRepo.On("Add", mock.Anything, mock.MatchedBy(func(e *warehouse.Entry) bool {
			return e.Quantity() == 15 && e.ProductID().IsEqual(newID)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	// When the counts are declared
	h := commands.NewSetStockCountsCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	// Then the stocked product is replaced and the new one created
	require.NoError(t, err)
	assert.Equal(t, 70, entry.Quantity())
	warehouseRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetStockCountsCommandHandler_Handle_ZeroPrunesRow(t *testing.T) {
	// Given a stocked product declared at zero
	ctx := t.Context()
	factoryID := kernel.NewUUID()
	productID := kernel.NewUUID()
	entry, err := warehouse.NewEntry(kernel.NewUUID(), factoryID, productID, 40)
	require.NoError(t, err)

	cmd, err := commands.NewSetStockCountsCommand(factoryID, []commands.StockCount{
		{ProductID: productID, Quantity: 0},
	})
	require.NoError(t, err)

	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockStockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("GetByFactoryAndProduct", mock.Anything, factoryID, productID, true).
			Return(entry, nil).Once(),
		warehouseRepo.On("Update", mock.Anything, mock.MatchedBy(func(e *warehouse.Entry) bool {
			return e.IsEmpty()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	// When the declaration is applied, the repository sees an empty entry
	// and prunes the row inside the same transaction
	h := commands.NewSetStockCountsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	warehouseRepo.AssertExpectations(t)
}

func TestSetStockCountsCommandHandler_Handle_ZeroForUnstockedIsNoOp(t *testing.T) {
	ctx := t.Context()
	factoryID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewSetStockCountsCommand(factoryID, []commands.StockCount{
		{ProductID: productID, Quantity: 0},
	})
	require.NoError(t, err)

	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockStockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("GetByFactoryAndProduct", mock.Anything, factoryID, productID, true).
			Return(nil, errs.NewObjectNotFoundError("productID", productID)).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetStockCountsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	warehouseRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	warehouseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
