package partner

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for partner operations.
var (
	// ErrPartnerIsNotConstructed is returned when a Partner was not created
	// through NewPartner or RestorePartner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner or RestorePartner constructor")

	// ErrPartnerUnavailable is returned when an assignment is attempted
	// against a partner that is already carrying an active order. Refusing
	// here is what keeps a partner from being the active assignee of two
	// non-terminal orders at once.
	ErrPartnerUnavailable = errors.New("delivery partner is not available for assignment")
)

// Partner is the aggregate root for a delivery partner: an optional link to
// the partner's user account, the last reported position, and the
// availability flag that gates new assignments.
//
// Invariants:
//   - available is false exactly while the partner carries an active
//     assignment; completion, cancellation, and (by policy) location
//     heartbeats set it back to true.
//   - MarkBusy refuses a partner that is already busy.
type Partner struct {
	// id uniquely identifies the partner
	id kernel.UUID

	// userID links the partner to a user account (nil until sign-in)
	userID *kernel.UUID

	// location is the last reported position
	location kernel.GeoPoint

	// available is true iff the partner may take a new assignment
	available bool

	// version supports optimistic concurrency in the persistence layer
	version int64

	// guard ensures the partner was created via a constructor
	guard guard.ConstructorGuard
}

// NewPartner creates a partner at registration time. The partner starts
// available, with a zero position until the first location report. The user
// link is optional: a partner record may exist before the user ever signs in.
func NewPartner(id kernel.UUID, userID *kernel.UUID) (*Partner, error) {
	location, err := kernel.NewGeoPoint(0, 0)
	if err != nil {
		return nil, err
	}

	p := &Partner{
		location:  location,
		available: true,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	if err := p.setID(id); err != nil {
		return nil, err
	}
	if err := p.setUserID(userID); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartner reconstructs a partner from persistence.
func RestorePartner(
	id kernel.UUID,
	userID *kernel.UUID,
	location kernel.GeoPoint,
	available bool,
	version int64,
) (*Partner, error) {
	p := &Partner{
		guard: guard.NewConstructorGuard(),
	}

	if err := p.setID(id); err != nil {
		return nil, err
	}
	if err := p.setUserID(userID); err != nil {
		return nil, err
	}
	if err := location.Validate(); err != nil {
		return nil, err
	}

	p.location = location
	p.available = available
	p.version = version
	return p, nil
}

// Validate ensures the Partner was created via a constructor.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// IsEqual compares two partners by identifier.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// UserID returns the linked user account's ID, nil when the partner has no
// account yet.
func (p *Partner) UserID() *kernel.UUID {
	return p.userID
}

// Location returns the last reported position.
func (p *Partner) Location() kernel.GeoPoint {
	return p.location
}

// IsAvailable reports whether the partner may take a new assignment.
func (p *Partner) IsAvailable() bool {
	return p.available
}

// Version returns the optimistic-concurrency version loaded from storage.
func (p *Partner) Version() int64 {
	return p.version
}

// MarkBusy claims the partner for an assignment. Returns
// ErrPartnerUnavailable when the partner is already busy, which is the
// engine's defense against double assignment.
func (p *Partner) MarkBusy() error {
	if !p.available {
		return ErrPartnerUnavailable
	}
	p.available = false
	return nil
}

// Release makes the partner available again after the assigned order reached
// a terminal state.
func (p *Partner) Release() {
	p.available = true
}

// ReportLocation records a position heartbeat from the partner's client.
// When markOnDuty is set, the heartbeat also flips the partner to available.
// That policy can contradict the busy-while-assigned invariant, so callers
// decide whether to apply it.
func (p *Partner) ReportLocation(location kernel.GeoPoint, markOnDuty bool) error {
	if err := location.Validate(); err != nil {
		return err
	}

	p.location = location
	if markOnDuty {
		p.available = true
	}
	return nil
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}
	id := *userID
	p.userID = &id
	return nil
}
