package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/partner"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 1, decimal.NewFromInt(100))
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, time.Now(), decimal.NewFromInt(100), status, nil, 1,
	)
	require.NoError(t, err)
	return o
}

func storedPartner(t *testing.T, available bool) *partner.Partner {
	t.Helper()
	point, err := kernel.NewGeoPoint(0, 0)
	require.NoError(t, err)
	p, err := partner.RestorePartner(kernel.NewUUID(), nil, point, available, 1)
	require.NoError(t, err)
	return p
}

func TestAssignPartnerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Preparing)
	p := storedPartner(t, true)
	cmd, err := commands.NewAssignPartnerCommand(o.ID(), p.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		partnerRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		partnerRepo.On("Update", mock.Anything, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignPartnerCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.OutForDelivery, o.Status())
	assert.False(t, p.IsAvailable())
	orderRepo.AssertExpectations(t)
	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignPartnerCommandHandler_Handle_BusyPartner(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Preparing)
	p := storedPartner(t, false)
	cmd, err := commands.NewAssignPartnerCommand(o.ID(), p.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		partnerRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignPartnerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, partner.ErrPartnerUnavailable)
	assert.Equal(t, order.Preparing, o.Status())
	uow.AssertExpectations(t)
}

func TestAssignPartnerCommandHandler_Handle_OrderNotPreparing(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Placed)
	p := storedPartner(t, true)
	cmd, err := commands.NewAssignPartnerCommand(o.ID(), p.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		partnerRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignPartnerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	uow.AssertExpectations(t)
}
