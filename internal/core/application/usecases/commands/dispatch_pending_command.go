package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrDispatchPendingCommandIsNotConstructed = errors.New(
	"DispatchPendingCommand must be created via NewDispatchPendingCommand constructor",
)

// DispatchPendingCommand triggers automatic assignment of a free delivery
// partner to the oldest unassigned order in preparation. This is the
// parameterless command the background dispatch job issues on its schedule.
//
// Example:
//
//	cmd := NewDispatchPendingCommand()
//	handler := NewDispatchPendingCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("nothing to dispatch: %v", err)
//	}
type DispatchPendingCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPendingCommand creates a new command to trigger partner dispatch.
func NewDispatchPendingCommand() DispatchPendingCommand {
	return DispatchPendingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchPendingCommandIsNotConstructed if validation fails.
func (c *DispatchPendingCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchPendingCommandIsNotConstructed,
	)
}
