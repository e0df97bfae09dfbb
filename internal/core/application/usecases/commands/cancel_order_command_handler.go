package commands

import (
	"context"
)

// CancelOrderCommandHandler cancels an order.
// The order itself decides whether cancellation is still allowed (only
// before food is on the move); when it is, any assigned partner is released
// in the same transaction so the cancellation never strands a busy partner.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Returns the order's transition error when the order is past the point of
// cancellation; nothing is persisted in that case.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	partnerRepo := uow.PartnerRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	if o.HasPartner() {
		p, err := partnerRepo.Get(ctx, *o.Partner())
		if err != nil {
			return err
		}
		p.Release()
		if err = partnerRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
