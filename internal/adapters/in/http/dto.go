package http

import (
	"time"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /api/orders.
type PlaceOrderRequest struct {
	CustomerID   uuid.UUID          `json:"customerId"`
	RestaurantID uuid.UUID          `json:"restaurantId"`
	Items        []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Quantity   int       `json:"quantity"`
}

// OrderCreatedResponse returns the identifier of a freshly placed order.
type OrderCreatedResponse struct {
	OrderID uuid.UUID `json:"orderId"`
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	MenuItemID uuid.UUID       `json:"menuItemId"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	CustomerID   uuid.UUID           `json:"customerId"`
	RestaurantID uuid.UUID           `json:"restaurantId"`
	Status       string              `json:"status"`
	TotalPrice   decimal.Decimal     `json:"totalPrice"`
	PlacedAt     time.Time           `json:"placedAt"`
	PartnerID    *uuid.UUID          `json:"partnerId,omitempty"`
	Items        []OrderItemResponse `json:"items"`
}

// RegisterPartnerRequest is the body of POST /api/delivery/partners.
// The user link is optional.
type RegisterPartnerRequest struct {
	UserID *uuid.UUID `json:"userId,omitempty"`
}

// PartnerCreatedResponse returns the identifier of a registered partner.
type PartnerCreatedResponse struct {
	PartnerID uuid.UUID `json:"partnerId"`
}

// AvailablePartnerResponse is one free partner in the listing.
type AvailablePartnerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// PartnerResponse is the partner record resolved for a user account.
type PartnerResponse struct {
	ID        uuid.UUID `json:"id"`
	Available bool      `json:"available"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// LocationRequest is the body of a partner location heartbeat.
type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OverrideStatusRequest is the body of PUT /api/orders/:id/status.
type OverrideStatusRequest struct {
	Status string `json:"status"`
}

// TrackingResponse is the customer-facing tracking view. Partner fields are
// zero unless the current order state discloses them.
type TrackingResponse struct {
	OrderID        uuid.UUID `json:"orderId"`
	Status         string    `json:"status"`
	RestaurantName string    `json:"restaurantName,omitempty"`
	RestaurantLat  float64   `json:"restaurantLat"`
	RestaurantLon  float64   `json:"restaurantLon"`
	PartnerName    string    `json:"partnerName,omitempty"`
	PartnerLat     float64   `json:"partnerLat"`
	PartnerLon     float64   `json:"partnerLon"`
}

func toOrderResponse(o queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			MenuItemID: item.MenuItemID.Bytes(),
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}

	var partnerID *uuid.UUID
	if o.PartnerID != nil {
		raw := o.PartnerID.Bytes()
		partnerID = &raw
	}

	return OrderResponse{
		ID:           o.ID.Bytes(),
		CustomerID:   o.CustomerID.Bytes(),
		RestaurantID: o.RestaurantID.Bytes(),
		Status:       o.Status,
		TotalPrice:   o.TotalPrice,
		PlacedAt:     o.PlacedAt,
		PartnerID:    partnerID,
		Items:        items,
	}
}

func toOrderResponses(orders []queries.OrderResponse) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses
}
