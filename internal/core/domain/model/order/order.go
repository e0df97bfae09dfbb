package order

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOutForDeliveryViaOverride is returned when the administrative status
	// override is asked to set the out-for-delivery state. That state is only
	// reachable through the dedicated assignment and start-delivery
	// operations, which keep the partner side consistent.
	ErrOutForDeliveryViaOverride = errs.NewValueIsInvalidError(
		"status OUT_FOR_DELIVERY must be set through partner assignment")
)

// Order is the aggregate root for the order lifecycle: placement, partner
// assignment, delivery progress, and cancellation.
//
// Invariants:
//   - totalPrice equals the sum of the items' captured subtotals at placement
//     time and is never recomputed afterwards.
//   - The assigned partner reference is present only from assignment through
//     completion or cancellation.
//   - Status moves along the graph documented on Status; the administrative
//     Override is the sole escape hatch.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the user who placed the order
	customerID kernel.UUID

	// restaurantID references the restaurant preparing the order
	restaurantID kernel.UUID

	// items are the ordered lines with prices captured at placement
	items []Item

	// placedAt is the placement timestamp
	placedAt time.Time

	// totalPrice is fixed at placement and never recomputed
	totalPrice decimal.Decimal

	// status is the current lifecycle state
	status Status

	// partnerID is the assigned delivery partner (nil if unassigned)
	partnerID *kernel.UUID

	// version supports optimistic concurrency in the persistence layer
	version int64

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates an order in Placed status with no partner assigned.
// The total price is computed once from the items' captured prices.
//
// Item validation is deliberately permissive: an empty item list yields a
// zero total rather than an error, matching the boundary contract.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:  Placed,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.placedAt = placedAt
	o.totalPrice = sumSubtotals(o.items)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// takes the stored total price as-is: the total is a snapshot and must not
// be recomputed from the items on load.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	placedAt time.Time,
	totalPrice decimal.Decimal,
	status Status,
	partnerID *kernel.UUID,
	version int64,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return nil, err
		}
		id := *partnerID
		o.partnerID = &id
	}

	o.placedAt = placedAt
	o.totalPrice = totalPrice
	o.status = status
	o.version = version
	return o, nil
}

// Validate ensures the Order was created via a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns a copy of the ordered lines.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// PlacedAt returns the placement timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// TotalPrice returns the total captured at placement.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Partner returns the assigned delivery partner's ID, nil when unassigned.
func (o *Order) Partner() *kernel.UUID {
	return o.partnerID
}

// HasPartner reports whether a delivery partner is assigned.
func (o *Order) HasPartner() bool {
	return o.partnerID != nil
}

// Version returns the optimistic-concurrency version loaded from storage.
func (o *Order) Version() int64 {
	return o.version
}

// AssignPartner links a delivery partner through the admin-initiated flow.
// The order must be in Preparing status; the transition lands in
// OutForDelivery. The partner side (availability) is the caller's
// responsibility within the same transaction.
func (o *Order) AssignPartner(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if o.status != Preparing {
		return NewStatusTransitionError("assign partner", o.status)
	}

	id := partnerID
	o.partnerID = &id
	o.status = OutForDelivery
	return nil
}

// AcceptBy links a delivery partner through the partner-initiated flow.
// This entry point intentionally carries no status precondition. It is a
// distinct operation from AssignPartner, not a variant of it, and lands in
// Confirmed status.
func (o *Order) AcceptBy(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	id := partnerID
	o.partnerID = &id
	o.status = Confirmed
	return nil
}

// PickUp marks the order as collected from the restaurant. No status guard.
func (o *Order) PickUp() {
	o.status = PickedUp
}

// StartDelivery marks the order as on its way to the customer. No status guard.
func (o *Order) StartDelivery() {
	o.status = OutForDelivery
}

// Complete marks the order as delivered. Releasing the assigned partner is
// the caller's responsibility within the same transaction.
func (o *Order) Complete() {
	o.status = Delivered
}

// Cancel moves the order to Cancelled. Allowed only while the order is still
// Placed or Preparing; otherwise the returned error names the blocking
// status and the order is left unchanged.
func (o *Order) Cancel() error {
	if !o.status.IsCancellable() {
		return NewStatusTransitionError("cancel", o.status)
	}
	o.status = Cancelled
	return nil
}

// Override sets the status unconditionally, bypassing the transition graph.
// This is an administrative escape hatch for manual correction, not part of
// the designed lifecycle. The out-for-delivery state is rejected on this
// path; it must go through AssignPartner or StartDelivery so that the
// partner side stays consistent.
func (o *Order) Override(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == OutForDelivery {
		return ErrOutForDeliveryViaOverride
	}
	o.status = status
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func sumSubtotals(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
