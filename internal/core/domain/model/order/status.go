package order

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as a closed enumeration.
//
// Designed transition graph (the administrative override can bypass it):
//
//	PLACED ──> PREPARING ──┬──(assign)──> OUT_FOR_DELIVERY ──┐
//	   │           │       └──(accept)──> CONFIRMED ─────────┤
//	   │           │                                         v
//	   └───────────┴──(cancel)──> CANCELLED      PICKED_UP ──> OUT_FOR_DELIVERY ──> DELIVERED
//
// DELIVERED and CANCELLED are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// The zero value helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned when an order is created.
	Placed

	// Preparing means the restaurant has started working on the order.
	Preparing

	// Confirmed means a delivery partner accepted the order through the
	// partner-initiated flow.
	Confirmed

	// PickedUp means the partner collected the order from the restaurant.
	// Live partner coordinates are exposed to tracking only in this state.
	PickedUp

	// OutForDelivery means the order is on its way to the customer. Both the
	// admin assignment flow and the explicit start-delivery step land here.
	OutForDelivery

	// Delivered is the terminal success state. Completing a delivery
	// releases the assigned partner.
	Delivered

	// Cancelled is the terminal failure state, reachable only from Placed
	// and Preparing on the designed path.
	Cancelled
)

// statusStrings maps every status to its canonical wire literal.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Placed:         "PLACED",
		Preparing:      "PREPARING",
		Confirmed:      "CONFIRMED",
		PickedUp:       "PICKED_UP",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// statusLiterals maps every accepted boundary literal to its status.
// Collaborators historically used two spellings for the picked-up and
// out-for-delivery states; both resolve to the same canonical status here so
// the ambiguity never reaches the engine.
func statusLiterals() map[string]Status {
	return map[string]Status{
		"PLACED":           Placed,
		"PREPARING":        Preparing,
		"CONFIRMED":        Confirmed,
		"PICKED_UP":        PickedUp,
		"PICKED UP":        PickedUp,
		"OUT_FOR_DELIVERY": OutForDelivery,
		"OUT FOR DELIVERY": OutForDelivery,
		"DELIVERED":        Delivered,
		"CANCELLED":        Cancelled,
	}
}

// ParseStatus resolves a boundary literal to its canonical Status.
// Matching is case-insensitive and tolerant of surrounding whitespace.
// Returns a value-is-invalid error for unknown literals.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if status, ok := statusLiterals()[normalized]; ok {
		return status, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known order status", s),
	)
}

// String returns the canonical literal for the status, "UNKNOWN" for
// out-of-range values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate returns an error when the status is not a member of the closed
// enumeration. Unknown is invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", int(s)),
		)
	}
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", int(s)),
		)
	}
	return nil
}

// IsTerminal reports whether the designed transition graph offers no further
// move out of the status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsCancellable reports whether an order in this status may still be
// cancelled on the designed path.
func (s Status) IsCancellable() bool {
	return s == Placed || s == Preparing
}

// ErrInvalidTransition classifies every status-precondition violation.
// Callers use errors.Is against it; the HTTP boundary renders the class
// as a client error.
var ErrInvalidTransition = errors.New("invalid status transition")

// StatusTransitionError reports a refused operation together with the status
// that blocked it.
type StatusTransitionError struct {
	Op      string
	Current Status
}

// NewStatusTransitionError creates a StatusTransitionError for the given
// operation and current status.
func NewStatusTransitionError(op string, current Status) *StatusTransitionError {
	return &StatusTransitionError{Op: op, Current: current}
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("cannot %s: order is %s", e.Op, e.Current)
}

func (e *StatusTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
