package services_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/partner"
	"fooddelivery/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preparingOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 1, decimal.NewFromInt(100))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.Override(order.Preparing))
	return o
}

func freePartner(t *testing.T) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(kernel.NewUUID(), nil)
	require.NoError(t, err)
	return p
}

func busyPartner(t *testing.T) *partner.Partner {
	t.Helper()
	p := freePartner(t)
	require.NoError(t, p.MarkBusy())
	return p
}

func TestPartnerDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewPartnerDispatcher()

	t.Run("assigns the first available partner", func(t *testing.T) {
		o := preparingOrder(t)
		first := busyPartner(t)
		second := freePartner(t)

		assigned, err := dispatcher.Dispatch(o, []*partner.Partner{first, second})

		require.NoError(t, err)
		assert.True(t, assigned.IsEqual(second))
		assert.False(t, assigned.IsAvailable())
		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.Partner())
		assert.True(t, o.Partner().IsEqual(second.ID()))
	})

	t.Run("no candidates", func(t *testing.T) {
		o := preparingOrder(t)

		_, err := dispatcher.Dispatch(o, nil)

		require.ErrorIs(t, err, services.ErrPartnerNotFound)
	})

	t.Run("every candidate busy", func(t *testing.T) {
		o := preparingOrder(t)

		_, err := dispatcher.Dispatch(o, []*partner.Partner{busyPartner(t), busyPartner(t)})

		require.ErrorIs(t, err, services.ErrPartnerNotFound)
	})

	t.Run("releases the claim when the order refuses assignment", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), 1, decimal.NewFromInt(100))
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, time.Now())
		require.NoError(t, err)
		candidate := freePartner(t)

		_, err = dispatcher.Dispatch(o, []*partner.Partner{candidate})

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.True(t, candidate.IsAvailable())
		assert.False(t, o.HasPartner())
	})
}
