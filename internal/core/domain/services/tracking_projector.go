package services

import (
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/partner"
)

// TrackingView is the customer-facing snapshot of a delivery in flight.
// Fields that are not disclosed for the current state keep their zero values.
type TrackingView struct {
	OrderID          kernel.UUID
	Status           order.Status
	RestaurantName   string
	RestaurantLat    float64
	RestaurantLon    float64
	PartnerName      string
	PartnerLat       float64
	PartnerLon       float64
	PartnerAvailable bool
}

// TrackingProjector builds the tracking view for an order.
//
// Disclosure rules:
//   - Restaurant coordinates are always shown when the restaurant record is
//     known, regardless of order state
//   - The partner's name appears only when a partner is assigned and linked
//     to a user account; the username is the fallback when the account has
//     no full name
//   - The partner's live position is shown only while the order is in the
//     picked-up state; in every other state the coordinates stay zero
type TrackingProjector struct{}

// NewTrackingProjector creates a new TrackingProjector instance.
func NewTrackingProjector() TrackingProjector {
	return TrackingProjector{}
}

// Project assembles the tracking view. The partner, its user record, and the
// restaurant may each be nil when not resolved; the view degrades to zero
// values for whatever is missing.
func (t TrackingProjector) Project(
	o *order.Order,
	p *partner.Partner,
	partnerUser *catalog.User,
	restaurant *catalog.Restaurant,
) (TrackingView, error) {
	if err := o.Validate(); err != nil {
		return TrackingView{}, err
	}

	view := TrackingView{
		OrderID: o.ID(),
		Status:  o.Status(),
	}

	if restaurant != nil {
		view.RestaurantName = restaurant.Name
		view.RestaurantLat = restaurant.Latitude
		view.RestaurantLon = restaurant.Longitude
	}

	if p != nil {
		if err := p.Validate(); err != nil {
			return TrackingView{}, err
		}
		view.PartnerAvailable = p.IsAvailable()

		if partnerUser != nil {
			view.PartnerName = partnerUser.FullName
			if view.PartnerName == "" {
				view.PartnerName = partnerUser.Username
			}
		}

		if o.Status() == order.PickedUp {
			view.PartnerLat = p.Location().Latitude()
			view.PartnerLon = p.Location().Longitude()
		}
	}

	return view, nil
}
