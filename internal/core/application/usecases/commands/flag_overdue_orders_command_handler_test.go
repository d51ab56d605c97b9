package commands_test

import (
	"testing"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOverdueOrder(t *testing.T, now time.Time) *order.Order {
	t.Helper()

	item, err := order.NewOrderItem(kernel.NewUUID(), order.PieceClothing, "", 5, "")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "MTZ-007/2025", nil, "ACME Hotel",
		[]*order.OrderItem{item}, now.Add(-2*time.Hour), "", now.Add(-26*time.Hour))
	require.NoError(t, err)
	return aggregate
}

func TestFlagOverdueOrdersCommandHandler_Handle_FlagsOnce(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	overdue := newOverdueOrder(t, now)
	cmd, err := commands.NewFlagOverdueOrdersCommand(now)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetActiveBefore", mock.Anything, now).Return([]*order.Order{overdue}, nil).Once(),
		repo.On("AppendEvents", mock.Anything, overdue).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFlagOverdueOrdersCommandHandler(factory)
	flagged, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 1, flagged)

	events := overdue.Events()
	last := events[len(events)-1]
	require.Equal(t, order.EventAlert, last.EventType())
	require.Contains(t, last.Notes(), "2h 0m overdue")
	require.Equal(t, order.Received, overdue.Status(), "alert events never move the order")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFlagOverdueOrdersCommandHandler_Handle_AlreadyFlaggedIsSkipped(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	overdue := newOverdueOrder(t, now)
	_, err := overdue.AppendEvent(
		overdue.Status(), order.EventAlert, nil, "promise deadline missed: 1h 0m overdue", now.Add(-time.Hour))
	require.NoError(t, err)

	cmd, err := commands.NewFlagOverdueOrdersCommand(now)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetActiveBefore", mock.Anything, now).Return([]*order.Order{overdue}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFlagOverdueOrdersCommandHandler(factory)
	flagged, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 0, flagged)
	repo.AssertNotCalled(t, "AppendEvents", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}
