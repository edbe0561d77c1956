package order_test

import (
	"testing"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 10, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_order_in_processing_status", func(t *testing.T) {
		// Given
		id := kernel.NewUUID()
		productID := kernel.NewUUID()
		salePointID := kernel.NewUUID()
		placedAt := time.Now()

		// When
		o, err := order.NewOrder(id, productID, salePointID, 10, placedAt)

		// Then
		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.ProductID().IsEqual(productID))
		assert.True(t, o.SalePointID().IsEqual(salePointID))
		assert.Equal(t, 10, o.Quantity())
		assert.Equal(t, order.InProcessing, o.Status())
		assert.Equal(t, placedAt, o.PlacedAt())
		assert.Empty(t, o.Deliveries())
	})

	t.Run("rejects_nonpositive_quantity", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0, time.Now())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), -5, time.Now())
		require.Error(t, err)
	})

	t.Run("rejects_zero_value_ids", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), 1, time.Now())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), 1, time.Now())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, 1, time.Now())
		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_status_and_deliveries", func(t *testing.T) {
		// Given
		deliveryID := kernel.NewUUID()

		// When
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			10, time.Now(), order.Delivery, []kernel.UUID{deliveryID},
		)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.Delivery, o.Status())
		require.Len(t, o.Deliveries(), 1)
		assert.True(t, o.Deliveries()[0].IsEqual(deliveryID))
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		// When
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			10, time.Now(), order.Unknown, nil,
		)

		// Then
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_order_is_invalid", func(t *testing.T) {
		// Given
		var o order.Order

		// Then
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("moves_forward_through_lifecycle", func(t *testing.T) {
		// Given
		o := newTestOrder(t)

		// When / Then
		require.NoError(t, o.ChangeStatus(order.Delivery))
		assert.Equal(t, order.Delivery, o.Status())

		require.NoError(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("permits_direct_jump_to_delivered", func(t *testing.T) {
		// Given
		o := newTestOrder(t)

		// When
		err := o.ChangeStatus(order.Delivered)

		// Then
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejects_unrecognized_status", func(t *testing.T) {
		// Given
		o := newTestOrder(t)

		// When
		err := o.ChangeStatus(order.Status(42))

		// Then
		require.Error(t, err)
		assert.Equal(t, order.InProcessing, o.Status())
	})
}

func TestOrder_Edit(t *testing.T) {
	t.Run("edits_order_in_processing", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		newProductID := kernel.NewUUID()

		// When
		err := o.Edit(newProductID, 25)

		// Then
		require.NoError(t, err)
		assert.True(t, o.ProductID().IsEqual(newProductID))
		assert.Equal(t, 25, o.Quantity())
	})

	t.Run("locked_once_status_leaves_in_processing", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Delivered))

		// When
		err := o.Edit(kernel.NewUUID(), 25)

		// Then
		require.ErrorIs(t, err, order.ErrOrderLocked)
		assert.Equal(t, 10, o.Quantity())
	})

	t.Run("rejects_nonpositive_quantity", func(t *testing.T) {
		// Given
		o := newTestOrder(t)

		// When
		err := o.Edit(kernel.NewUUID(), 0)

		// Then
		require.Error(t, err)
	})
}

func TestOrder_AttachDelivery(t *testing.T) {
	t.Run("links_delivery_once", func(t *testing.T) {
		// Given
		o := newTestOrder(t)
		deliveryID := kernel.NewUUID()

		// When
		require.NoError(t, o.AttachDelivery(deliveryID))
		require.NoError(t, o.AttachDelivery(deliveryID)) // duplicate is a no-op

		// Then
		assert.Len(t, o.Deliveries(), 1)
	})

	t.Run("rejects_zero_value_delivery_id", func(t *testing.T) {
		// Given
		o := newTestOrder(t)

		// Then
		require.Error(t, o.AttachDelivery(kernel.UUID{}))
	})
}
