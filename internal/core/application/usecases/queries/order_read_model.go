package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItemResponse is one line of an order in the read model.
type OrderItemResponse struct {
	MenuItemID kernel.UUID
	Quantity   int
	Price      decimal.Decimal
}

// OrderResponse represents an order in the read model. The status is the
// stored literal and the total is the snapshot captured at placement.
type OrderResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	Status       string
	TotalPrice   decimal.Decimal
	PlacedAt     time.Time
	PartnerID    *kernel.UUID
	Items        []OrderItemResponse
}

type orderItemRow struct {
	orderID uuid.UUID
	item    OrderItemResponse
}

// fetchOrders runs an order SELECT and hydrates the responses with their
// items. The query must project exactly: id, customer_id, restaurant_id,
// status, total_price, placed_at, partner_id.
func fetchOrders(ctx context.Context, db *gorm.DB, sql string, args ...any) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)
	ids := make([]uuid.UUID, 0)

	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response OrderResponse
		var id, customerID, restaurantID uuid.UUID
		var partnerID uuid.NullUUID

		err = rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&response.Status,
			&response.TotalPrice,
			&response.PlacedAt,
			&partnerID,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if partnerID.Valid {
			pid, pidErr := kernel.UUIDFromBytes(partnerID.UUID[:])
			if pidErr != nil {
				return nil, pidErr
			}
			response.PartnerID = &pid
		}

		response.Items = make([]OrderItemResponse, 0)
		orders = append(orders, response)
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := fetchOrderItems(ctx, db, ids)
	if err != nil {
		return nil, err
	}

	grouped := lo.GroupBy(itemRows, func(row orderItemRow) uuid.UUID {
		return row.orderID
	})

	for i := range orders {
		for _, row := range grouped[orders[i].ID.Bytes()] {
			orders[i].Items = append(orders[i].Items, row.item)
		}
	}

	return orders, nil
}

func fetchOrderItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) ([]orderItemRow, error) {
	itemRows := make([]orderItemRow, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			quantity,
			price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row orderItemRow
		var menuItemID uuid.UUID

		err = rows.Scan(
			&row.orderID,
			&menuItemID,
			&row.item.Quantity,
			&row.item.Price,
		)
		if err != nil {
			return nil, err
		}

		if row.item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		itemRows = append(itemRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return itemRows, nil
}
