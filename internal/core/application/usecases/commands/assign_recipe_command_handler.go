package commands

import (
	"context"
)

// AssignRecipeCommandHandler handles recipe assignment on order items.
type AssignRecipeCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignRecipeCommandHandler creates a handler for recipe assignment.
func NewAssignRecipeCommandHandler(uowFactory OrderUoWFactory) AssignRecipeCommandHandler {
	return AssignRecipeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recipe assignment command.
// The update is conditioned on the status the aggregate was loaded in: if a
// concurrent sorting completion moved the order on, the write conflicts and
// the assignment is rejected rather than applied to a sealed order.
func (h *AssignRecipeCommandHandler) Handle(ctx context.Context, cmd AssignRecipeCommand) error {
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

	if err = aggregate.AssignRecipe(cmd.ItemID(), cmd.RecipeID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, aggregate.Status()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
