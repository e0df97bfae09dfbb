package commands

import (
	"context"
)

// OverrideStatusCommandHandler applies an administrative status override.
// The order enforces the single restriction: out-for-delivery cannot be set
// this way because it would leave the order moving without a partner.
type OverrideStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewOverrideStatusCommandHandler creates a handler for status overrides.
func NewOverrideStatusCommandHandler(uowFactory OrderUoWFactory) OverrideStatusCommandHandler {
	return OverrideStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override command.
func (h OverrideStatusCommandHandler) Handle(ctx context.Context, cmd OverrideStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Override(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
