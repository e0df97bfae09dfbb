package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/partner"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetTrackingQueryHandler builds the tracking view for an order.
// Unlike the flat listing queries this handler rehydrates the order and
// partner aggregates, because the disclosure rules (when to show the
// partner's position and name) live in the TrackingProjector domain service
// and must not be duplicated in SQL.
type GetTrackingQueryHandler struct {
	db        *gorm.DB
	projector services.TrackingProjector
}

// NewGetTrackingQueryHandler creates a handler for order tracking.
// Requires a GORM database connection for query execution.
func NewGetTrackingQueryHandler(db *gorm.DB) GetTrackingQueryHandler {
	return GetTrackingQueryHandler{
		db:        db,
		projector: services.NewTrackingProjector(),
	}
}

// Handle executes the query.
// Returns errs.ErrObjectNotFound when the order does not exist. A missing
// restaurant or partner record degrades the view instead of failing it.
func (h GetTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingQuery,
) (GetTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackingQueryResponse{}, err
	}

	o, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}

	restaurant, err := h.loadRestaurant(ctx, o.RestaurantID())
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}

	var p *partner.Partner
	var partnerUser *catalog.User
	if o.HasPartner() {
		p, err = h.loadPartner(ctx, *o.Partner())
		if err != nil {
			return GetTrackingQueryResponse{}, err
		}
		if p != nil && p.UserID() != nil {
			partnerUser, err = h.loadUser(ctx, *p.UserID())
			if err != nil {
				return GetTrackingQueryResponse{}, err
			}
		}
	}

	view, err := h.projector.Project(o, p, partnerUser, restaurant)
	if err != nil {
		return GetTrackingQueryResponse{}, err
	}

	return GetTrackingQueryResponse{
		OrderID:        view.OrderID,
		Status:         view.Status.String(),
		RestaurantName: view.RestaurantName,
		RestaurantLat:  view.RestaurantLat,
		RestaurantLon:  view.RestaurantLon,
		PartnerName:    view.PartnerName,
		PartnerLat:     view.PartnerLat,
		PartnerLon:     view.PartnerLon,
	}, nil
}

func (h GetTrackingQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	var id, customerID, restaurantID uuid.UUID
	var partnerID uuid.NullUUID
	var statusLiteral string
	var totalPrice decimal.Decimal
	var placedAt time.Time
	var version int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			restaurant_id,
			status,
			total_price,
			placed_at,
			partner_id,
			version
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(&id, &customerID, &restaurantID, &statusLiteral, &totalPrice, &placedAt, &partnerID, &version)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("orderID", orderID)
	}
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(statusLiteral)
	if err != nil {
		return nil, err
	}

	oid, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	cid, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return nil, err
	}
	rid, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return nil, err
	}

	var pid *kernel.UUID
	if partnerID.Valid {
		converted, convErr := kernel.UUIDFromBytes(partnerID.UUID[:])
		if convErr != nil {
			return nil, convErr
		}
		pid = &converted
	}

	return order.RestoreOrder(oid, cid, rid, nil, placedAt, totalPrice, status, pid, version)
}

func (h GetTrackingQueryHandler) loadPartner(ctx context.Context, partnerID kernel.UUID) (*partner.Partner, error) {
	var id uuid.UUID
	var userID uuid.NullUUID
	var latitude, longitude float64
	var available bool
	var version int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			latitude,
			longitude,
			available,
			version
		FROM delivery_partners
		WHERE id = ?
	`, partnerID.Bytes()).Row()

	err := row.Scan(&id, &userID, &latitude, &longitude, &available, &version)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	pid, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	var uid *kernel.UUID
	if userID.Valid {
		converted, convErr := kernel.UUIDFromBytes(userID.UUID[:])
		if convErr != nil {
			return nil, convErr
		}
		uid = &converted
	}

	location, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(pid, uid, location, available, version)
}

func (h GetTrackingQueryHandler) loadRestaurant(ctx context.Context, restaurantID kernel.UUID) (*catalog.Restaurant, error) {
	var id uuid.UUID
	restaurant := &catalog.Restaurant{}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			latitude,
			longitude
		FROM restaurants
		WHERE id = ?
	`, restaurantID.Bytes()).Row()

	err := row.Scan(&id, &restaurant.Name, &restaurant.Latitude, &restaurant.Longitude)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if restaurant.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}

	return restaurant, nil
}

func (h GetTrackingQueryHandler) loadUser(ctx context.Context, userID kernel.UUID) (*catalog.User, error) {
	var id uuid.UUID
	user := &catalog.User{}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			full_name
		FROM users
		WHERE id = ?
	`, userID.Bytes()).Row()

	err := row.Scan(&id, &user.Username, &user.FullName)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if user.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}

	return user, nil
}
