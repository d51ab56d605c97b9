package commands

import (
	"context"
	"time"
)

// AppendEventCommandHandler handles direct ledger appends.
// Alert events never change the order's status, so the handler skips the
// conditional status write entirely.
type AppendEventCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAppendEventCommandHandler creates a handler for ledger appends.
func NewAppendEventCommandHandler(uowFactory OrderUoWFactory) AppendEventCommandHandler {
	return AppendEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the event append command.
func (h *AppendEventCommandHandler) Handle(ctx context.Context, cmd AppendEventCommand) error {
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

	if _, err = aggregate.AppendEvent(cmd.Sector(), cmd.EventType(), cmd.OperatorID(), cmd.Notes(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.AppendEvents(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
