package services

import (
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/partner"
)

// ErrPartnerNotFound is returned when no suitable delivery partner is
// available for order dispatch. This occurs when either no partners are
// provided or every provided partner is already carrying an assignment.
var ErrPartnerNotFound = errors.New("delivery partner not found")

// PartnerDispatcher is a domain service responsible for pairing a pending
// order with a free delivery partner.
//
// Business rules:
//   - The order and each candidate partner must be valid aggregates
//   - Only available partners are considered
//   - The chosen partner is claimed before the order is touched, so a
//     partner can never end up assigned to two active orders
//   - The order must accept the assignment (it has to be in preparation);
//     dispatch fails otherwise and the claim is rolled back
type PartnerDispatcher struct{}

// NewPartnerDispatcher creates a new PartnerDispatcher instance.
func NewPartnerDispatcher() PartnerDispatcher {
	return PartnerDispatcher{}
}

// Dispatch selects the first available partner, claims it, and assigns it to
// the order.
//
// Returns:
//   - *partner.Partner: the partner now carrying the order
//   - error: ErrPartnerNotFound when every candidate is busy, or the
//     order's transition error when the order cannot be assigned
func (d PartnerDispatcher) Dispatch(o *order.Order, partners []*partner.Partner) (*partner.Partner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if !p.IsAvailable() {
			continue
		}

		if err := p.MarkBusy(); err != nil {
			continue
		}
		if err := o.AssignPartner(p.ID()); err != nil {
			p.Release()
			return nil, err
		}
		return p, nil
	}

	return nil, ErrPartnerNotFound
}
