package commands

import (
	"context"
)

// AssignPartnerCommandHandler orchestrates operator-driven assignment.
// Claims the partner before touching the order, so a partner already
// carrying a delivery is refused with partner.ErrPartnerUnavailable and a
// double assignment can never be committed. The order must still be in
// preparation; otherwise the order's transition error is returned.
type AssignPartnerCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignPartnerCommandHandler creates a handler for operator-driven assignment.
func NewAssignPartnerCommandHandler(uowFactory UoWFactory) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Loads both aggregates, claims the partner, moves the order out for
// delivery, and persists both within a single transaction.
func (h AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) error {
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

	p, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = p.MarkBusy(); err != nil {
		return err
	}
	if err = o.AssignPartner(p.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if err = partnerRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
