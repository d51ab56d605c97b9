package commands_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	unitID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), unitID, nil, "ACME Hotel", validItemInputs(), time.Now().Add(48*time.Hour), "")
	require.NoError(t, err)

	units := new(MockUnitProvider)
	units.On("GetUnitPrefix", ctx, unitID).Return("MTZ", nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("CountCreatedInYear", mock.Anything, unitID, time.Now().UTC().Year()).Return(11, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, units)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, fmt.Sprintf("MTZ-012/%d", time.Now().UTC().Year()), created.OrderNumber())
	require.Equal(t, order.Received, created.Status())
	require.Len(t, created.PendingEvents(), 1, "creation writes the opening ledger event")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	units.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory), new(MockUnitProvider))

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_UnitPrefixError(t *testing.T) {
	ctx := t.Context()
	unitID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), unitID, nil, "ACME Hotel", validItemInputs(), time.Now().Add(48*time.Hour), "")
	require.NoError(t, err)

	units := new(MockUnitProvider)
	units.On("GetUnitPrefix", ctx, unitID).Return("", errors.New("unit not found")).Once()

	h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory), units)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	units.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	unitID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), unitID, nil, "ACME Hotel", validItemInputs(), time.Now().Add(48*time.Hour), "")
	require.NoError(t, err)

	units := new(MockUnitProvider)
	units.On("GetUnitPrefix", ctx, unitID).Return("MTZ", nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("CountCreatedInYear", mock.Anything, unitID, time.Now().UTC().Year()).Return(0, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("duplicate order number")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, units)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
