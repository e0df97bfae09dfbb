package commands

import (
	"context"
)

// PickUpOrderCommandHandler moves an order to the picked-up status.
// The transition is unconditional; the picked-up state is also what unlocks
// live partner coordinates on the tracking view.
type PickUpOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPickUpOrderCommandHandler creates a handler for pick-up notifications.
func NewPickUpOrderCommandHandler(uowFactory OrderUoWFactory) PickUpOrderCommandHandler {
	return PickUpOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pick-up command.
func (h PickUpOrderCommandHandler) Handle(ctx context.Context, cmd PickUpOrderCommand) error {
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

	o.PickUp()

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
