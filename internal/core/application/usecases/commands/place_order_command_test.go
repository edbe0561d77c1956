package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	salePointID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(orderID, salePointID, productID, 10)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, salePointID, cmd.SalePointID())
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, 10, cmd.Quantity())
}

func TestNewPlaceOrderCommand_InvalidQuantity(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), quantity)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	}
}

func TestNewPlaceOrderCommand_InvalidSalePointID(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
