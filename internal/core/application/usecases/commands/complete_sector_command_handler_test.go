package commands_test

import (
	"testing"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoredOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewOrderItem(kernel.NewUUID(), order.PieceClothing, "", 10, "")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "MTZ-001/2025", nil, "ACME Hotel",
		[]*order.OrderItem{item}, time.Now().Add(48*time.Hour), "", time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}

func TestCompleteSectorCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t)
	cmd, err := commands.NewCompleteSectorCommand(stored.ID(), order.Sorting, order.SortingCompletion{}, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored, order.Received).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteSectorCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Washing, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteSectorCommandHandler_Handle_WrongSector(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t) // still in received
	cmd, err := commands.NewCompleteSectorCommand(
		stored.ID(), order.Ironing, order.IroningCompletion{Tally: map[order.PieceType]int{order.PieceClothing: 10}}, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteSectorCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.Equal(t, order.Received, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteSectorCommandHandler_Handle_ConcurrentConflict(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t)
	cmd, err := commands.NewCompleteSectorCommand(stored.ID(), order.Sorting, order.SortingCompletion{}, nil)
	require.NoError(t, err)

	conflict := errs.NewConflictError("order", stored.ID().String())
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored, order.Received).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteSectorCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCompleteSectorCommand_RejectsNonCompletableSector(t *testing.T) {
	_, err := commands.NewCompleteSectorCommand(kernel.NewUUID(), order.Delivered, order.SortingCompletion{}, nil)
	require.Error(t, err)

	_, err = commands.NewCompleteSectorCommand(kernel.NewUUID(), order.Washing, nil, nil)
	require.Error(t, err)
}
