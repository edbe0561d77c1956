package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()

	m, err := kernel.NewMoney(decimal.RequireFromString(s))
	require.NoError(t, err)
	return m
}

func TestNewCreateProductCommand_RequiresName(t *testing.T) {
	_, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), kernel.NewUUID(), "",
		money(t, "9.99"), money(t, "0.5"), nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	factoryID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, factoryID, "Bolts M8",
		money(t, "9.99"), money(t, "0.05"), nil, "box of 100")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.MatchedBy(func(p *product.Product) bool {
			return p.ID().IsEqual(productID) && p.Name() == "Bolts M8"
		})).Return(nil).Once(),
		productRepo.On("AddToFactoryCatalog", mock.Anything, productID, factoryID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
