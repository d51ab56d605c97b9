package commands

import (
	"context"
	"time"
)

// CancelOrderCommandHandler handles order cancellation.
// Cancellation follows the same conditional-write discipline as sector
// completion, so a cancel racing a completion resolves to one winner.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous, err := aggregate.Cancel(cmd.OperatorID(), cmd.Reason(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
