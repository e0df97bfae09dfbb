package commands

import (
	"context"
)

// ReportLocationCommandHandler records partner position heartbeats.
// The markOnDuty policy decides whether a heartbeat also flips the partner
// back to available. The policy ships enabled, matching the long-standing
// behavior partner clients rely on, and can be disabled through
// configuration for fleets where it fights the assignment invariant.
type ReportLocationCommandHandler struct {
	uowFactory PartnerUoWFactory
	markOnDuty bool
}

// NewReportLocationCommandHandler creates a handler for location heartbeats.
func NewReportLocationCommandHandler(uowFactory PartnerUoWFactory, markOnDuty bool) ReportLocationCommandHandler {
	return ReportLocationCommandHandler{
		uowFactory: uowFactory,
		markOnDuty: markOnDuty,
	}
}

// Handle processes the heartbeat command.
func (h ReportLocationCommandHandler) Handle(ctx context.Context, cmd ReportLocationCommand) error {
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

	partnerRepo := uow.PartnerRepository()

	p, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = p.ReportLocation(cmd.Location(), h.markOnDuty); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
