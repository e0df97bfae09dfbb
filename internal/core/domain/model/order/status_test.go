package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		literal string
		want    order.Status
	}{
		{"PLACED", order.Placed},
		{"placed", order.Placed},
		{" Preparing ", order.Preparing},
		{"CONFIRMED", order.Confirmed},
		{"PICKED_UP", order.PickedUp},
		{"PICKED UP", order.PickedUp},
		{"picked up", order.PickedUp},
		{"OUT_FOR_DELIVERY", order.OutForDelivery},
		{"OUT FOR DELIVERY", order.OutForDelivery},
		{"out for delivery", order.OutForDelivery},
		{"DELIVERED", order.Delivered},
		{"CANCELLED", order.Cancelled},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, err := order.ParseStatus(tt.literal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown literal", func(t *testing.T) {
		_, err := order.ParseStatus("SHIPPED")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty literal", func(t *testing.T) {
		_, err := order.ParseStatus("")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PLACED", order.Placed.String())
	assert.Equal(t, "PICKED_UP", order.PickedUp.String())
	assert.Equal(t, "OUT_FOR_DELIVERY", order.OutForDelivery.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Delivered.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Placed.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
}

func TestStatus_IsCancellable(t *testing.T) {
	assert.True(t, order.Placed.IsCancellable())
	assert.True(t, order.Preparing.IsCancellable())
	assert.False(t, order.Confirmed.IsCancellable())
	assert.False(t, order.PickedUp.IsCancellable())
	assert.False(t, order.OutForDelivery.IsCancellable())
	assert.False(t, order.Delivered.IsCancellable())
	assert.False(t, order.Cancelled.IsCancellable())
}

func TestStatusTransitionError(t *testing.T) {
	err := order.NewStatusTransitionError("cancel", order.Delivered)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, "cannot cancel: order is DELIVERED", err.Error())
}
