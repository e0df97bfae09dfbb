package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetTrackingQueryIsNotConstructed = errors.New(
	"GetTrackingQuery must be created via NewGetTrackingQuery constructor",
)

// GetTrackingQuery retrieves the customer-facing tracking view of an order.
type GetTrackingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackingQuery creates a query to track one order.
func NewGetTrackingQuery(orderID kernel.UUID) (GetTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetTrackingQuery{}, err
	}

	return GetTrackingQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

// OrderID returns the tracked order's identifier.
func (q GetTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetTrackingQueryResponse is the tracking read model. Coordinates and the
// partner name stay at their zero values whenever the current order state
// does not disclose them.
type GetTrackingQueryResponse struct {
	OrderID        kernel.UUID
	Status         string
	RestaurantName string
	RestaurantLat  float64
	RestaurantLon  float64
	PartnerName    string
	PartnerLat     float64
	PartnerLon     float64
}
