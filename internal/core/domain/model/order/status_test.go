package order_test

import (
	"testing"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	testCases := []struct {
		input    string
		expected order.Status
	}{
		{"in_processing", order.InProcessing},
		{"delivery", order.Delivery},
		{"delivered", order.Delivered},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			// When
			status, err := order.StatusFromString(tc.input)

			// Then
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}

	t.Run("unrecognized_value_is_rejected", func(t *testing.T) {
		// When
		_, err := order.StatusFromString("cancelled")

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_value_is_rejected", func(t *testing.T) {
		// When
		_, err := order.StatusFromString("")

		// Then
		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("recognized_statuses_are_valid", func(t *testing.T) {
		require.NoError(t, order.InProcessing.Validate())
		require.NoError(t, order.Delivery.Validate())
		require.NoError(t, order.Delivered.Validate())
	})

	t.Run("unknown_is_invalid", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
	})

	t.Run("out_of_range_value_is_invalid", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "in_processing", order.InProcessing.String())
	assert.Equal(t, "delivery", order.Delivery.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.InProcessing.IsTerminal())
	assert.False(t, order.Delivery.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
}
