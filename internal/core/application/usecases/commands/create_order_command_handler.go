package commands

import (
	"context"
	"fmt"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// Assigns the sequential order number inside the creation transaction and
// persists the aggregate with its opening ledger event.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	units      ports.UnitProvider
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a
// UnitProvider for the order-number prefix.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, units ports.UnitProvider) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		units:      units,
	}
}

// Handle processes the order creation command.
// Derives the next order number from the unit's prefix and its yearly order
// count, then creates the order in the received sector. Uses a transaction so
// the count, the number and the insert observe the same state; the unique
// index on (unit, order number) rejects the loser of a concurrent race.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	prefix, err := h.units.GetUnitPrefix(ctx, cmd.UnitID())
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewOrderItem(kernel.NewUUID(), input.PieceType, input.OtherLabel, input.Quantity, input.Notes)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	orderRepo := uow.OrderRepository()

	count, err := orderRepo.CountCreatedInYear(ctx, cmd.UnitID(), now.Year())
	if err != nil {
		return nil, err
	}
	orderNumber := fmt.Sprintf("%s-%03d/%d", prefix, count+1, now.Year())

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UnitID(),
		orderNumber,
		cmd.ClientID(),
		cmd.ClientName(),
		items,
		cmd.PromisedAt(),
		cmd.Notes(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
