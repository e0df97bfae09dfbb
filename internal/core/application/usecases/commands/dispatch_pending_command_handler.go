package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

var (
	ErrNoPendingOrders     = errors.New("no pending orders found")
	ErrNoAvailablePartners = errors.New("no available delivery partners found")
)

// DispatchPendingCommandHandler orchestrates automatic partner dispatch.
// Finds the oldest unassigned order in preparation and matches it with a
// free partner through the PartnerDispatcher domain service. Both aggregates
// are updated within one transaction.
//
// Example:
//
//	handler := NewDispatchPendingCommandHandler(uowFactory)
//	cmd := NewDispatchPendingCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingOrders):
//	    log.Println("nothing waiting for dispatch")
//	case errors.Is(err, ErrNoAvailablePartners):
//	    log.Println("every partner is busy")
//	case err != nil:
//	    log.Printf("dispatch failed: %v", err)
//	}
type DispatchPendingCommandHandler struct {
	uowFactory UoWFactory
}

// NewDispatchPendingCommandHandler creates a handler for automatic dispatch.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewDispatchPendingCommandHandler(uowFactory UoWFactory) DispatchPendingCommandHandler {
	return DispatchPendingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// Returns ErrNoPendingOrders when nothing is waiting and
// ErrNoAvailablePartners when every partner is busy; both are expected
// outcomes for a scheduled job, not failures.
func (h DispatchPendingCommandHandler) Handle(ctx context.Context, cmd DispatchPendingCommand) error {
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

	pending, err := orderRepo.GetFirstUnassignedInStatus(ctx, order.Preparing)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrders
	}
	if err != nil {
		return err
	}

	partners, err := partnerRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(partners) == 0 {
		return ErrNoAvailablePartners
	}

	assigned, err := services.NewPartnerDispatcher().Dispatch(pending, partners)
	if errors.Is(err, services.ErrPartnerNotFound) {
		return ErrNoAvailablePartners
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, pending); err != nil {
		return err
	}
	if err = partnerRepo.Update(ctx, assigned); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
