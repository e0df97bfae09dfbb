package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrOverrideStatusCommandIsNotConstructed = errors.New(
	"OverrideStatusCommand must be created via NewOverrideStatusCommand constructor",
)

// OverrideStatusCommand forces an order into a given status, bypassing the
// normal lifecycle. This is an administrative escape hatch; the one status it
// refuses is out-for-delivery, which must be reached through assignment.
type OverrideStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewOverrideStatusCommand creates a command to force an order's status.
// The target status must be a known lifecycle status.
func NewOverrideStatusCommand(orderID kernel.UUID, status order.Status) (OverrideStatusCommand, error) {
	cmd := OverrideStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return OverrideStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideStatusCommandIsNotConstructed)
}

// OrderID returns the order whose status is being forced.
func (c OverrideStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target status.
func (c OverrideStatusCommand) Status() order.Status {
	return c.status
}

func (c *OverrideStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *OverrideStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
