package services_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/partner"
	"fooddelivery/internal/core/domain/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackedOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 2, decimal.NewFromInt(75))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, time.Now())
	require.NoError(t, err)
	return o
}

func partnerAt(t *testing.T, lat, lon float64) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(kernel.NewUUID(), nil)
	require.NoError(t, err)
	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	require.NoError(t, p.ReportLocation(point, true))
	return p
}

func TestTrackingProjector_Project(t *testing.T) {
	projector := services.NewTrackingProjector()
	restaurant := &catalog.Restaurant{
		ID:        kernel.NewUUID(),
		Name:      "Udupi Grand",
		Latitude:  gofakeit.Latitude(),
		Longitude: gofakeit.Longitude(),
	}

	t.Run("restaurant coordinates are always disclosed", func(t *testing.T) {
		o := trackedOrder(t)

		view, err := projector.Project(o, nil, nil, restaurant)

		require.NoError(t, err)
		assert.Equal(t, restaurant.Name, view.RestaurantName)
		assert.Equal(t, restaurant.Latitude, view.RestaurantLat)
		assert.Equal(t, restaurant.Longitude, view.RestaurantLon)
		assert.Equal(t, order.Placed, view.Status)
	})

	t.Run("partner position only while picked up", func(t *testing.T) {
		o := trackedOrder(t)
		p := partnerAt(t, 12.9716, 77.5946)

		view, err := projector.Project(o, p, nil, restaurant)
		require.NoError(t, err)
		assert.Zero(t, view.PartnerLat)
		assert.Zero(t, view.PartnerLon)

		o.PickUp()
		view, err = projector.Project(o, p, nil, restaurant)
		require.NoError(t, err)
		assert.Equal(t, 12.9716, view.PartnerLat)
		assert.Equal(t, 77.5946, view.PartnerLon)

		o.StartDelivery()
		view, err = projector.Project(o, p, nil, restaurant)
		require.NoError(t, err)
		assert.Zero(t, view.PartnerLat)
		assert.Zero(t, view.PartnerLon)
	})

	t.Run("partner name requires a linked user", func(t *testing.T) {
		o := trackedOrder(t)
		p := partnerAt(t, 1, 1)

		view, err := projector.Project(o, p, nil, restaurant)
		require.NoError(t, err)
		assert.Empty(t, view.PartnerName)

		user := &catalog.User{ID: kernel.NewUUID(), Username: "ravi_k", FullName: "Ravi Kumar"}
		view, err = projector.Project(o, p, user, restaurant)
		require.NoError(t, err)
		assert.Equal(t, "Ravi Kumar", view.PartnerName)
	})

	t.Run("username is the fallback for an empty full name", func(t *testing.T) {
		o := trackedOrder(t)
		p := partnerAt(t, 1, 1)
		user := &catalog.User{ID: kernel.NewUUID(), Username: "ravi_k"}

		view, err := projector.Project(o, p, user, restaurant)

		require.NoError(t, err)
		assert.Equal(t, "ravi_k", view.PartnerName)
	})

	t.Run("missing restaurant leaves zero coordinates", func(t *testing.T) {
		o := trackedOrder(t)

		view, err := projector.Project(o, nil, nil, nil)

		require.NoError(t, err)
		assert.Empty(t, view.RestaurantName)
		assert.Zero(t, view.RestaurantLat)
		assert.Zero(t, view.RestaurantLon)
	})

	t.Run("unconstructed order is rejected", func(t *testing.T) {
		var o order.Order
		_, err := projector.Project(&o, nil, nil, nil)
		require.Error(t, err)
	})
}
