package commands

import (
	"context"
	"time"
)

// CompleteSectorCommandHandler handles sector completion for orders.
// Loads the aggregate, applies the transition, and persists it with a
// conditional status write so concurrent completions resolve to exactly one
// winner.
type CompleteSectorCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteSectorCommandHandler creates a handler for sector completion.
func NewCompleteSectorCommandHandler(uowFactory OrderUoWFactory) CompleteSectorCommandHandler {
	return CompleteSectorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sector completion command.
// The repository update is conditional on the status the aggregate observed;
// a zero-row update surfaces as a ConflictError and the transaction rolls
// back, leaving the ledger untouched.
func (h *CompleteSectorCommandHandler) Handle(ctx context.Context, cmd CompleteSectorCommand) error {
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

	previous, err := aggregate.CompleteSector(cmd.Sector(), cmd.Payload(), cmd.OperatorID(), time.Now().UTC())
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
