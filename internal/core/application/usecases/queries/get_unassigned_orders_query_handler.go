package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler retrieves orders waiting for a partner.
// Preparation is the primary pool; when it is empty the handler falls back
// to confirmed orders that lost their partner, so accepted-then-cancelled
// work surfaces again instead of going dark.
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for the open-work listing.
// Requires a GORM database connection for query execution.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back oldest first so the longest
// waiting work is accepted first.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.fetchUnassignedInStatus(ctx, order.Preparing)
	if err != nil {
		return nil, err
	}
	if len(orders) > 0 {
		return orders, nil
	}

	return h.fetchUnassignedInStatus(ctx, order.Confirmed)
}

func (h GetUnassignedOrdersQueryHandler) fetchUnassignedInStatus(
	ctx context.Context,
	status order.Status,
) ([]OrderResponse, error) {
	return fetchOrders(ctx, h.db, `
		SELECT
			id,
			customer_id,
			restaurant_id,
			status,
			total_price,
			placed_at,
			partner_id
		FROM orders
		WHERE status = ? AND partner_id IS NULL
		ORDER BY placed_at ASC
	`, status.String())
}
