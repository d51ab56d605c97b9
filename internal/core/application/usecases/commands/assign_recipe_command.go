package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrAssignRecipeCommandIsNotConstructed = errors.New(
	"AssignRecipeCommand must be created via NewAssignRecipeCommand constructor",
)

// AssignRecipeCommand represents a request to attach a wash recipe to one
// order item during sorting.
type AssignRecipeCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	recipeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRecipeCommand creates a recipe assignment command.
func NewAssignRecipeCommand(orderID, itemID, recipeID kernel.UUID) (AssignRecipeCommand, error) {
	cmd := AssignRecipeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setRecipeID(recipeID),
	); err != nil {
		return AssignRecipeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRecipeCommand) Validate() error {
	return c.guard.Validate(ErrAssignRecipeCommandIsNotConstructed)
}

// OrderID returns the order holding the item.
func (c AssignRecipeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the item receiving the recipe.
func (c AssignRecipeCommand) ItemID() kernel.UUID {
	return c.itemID
}

// RecipeID returns the recipe reference.
func (c AssignRecipeCommand) RecipeID() kernel.UUID {
	return c.recipeID
}

func (c *AssignRecipeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRecipeCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AssignRecipeCommand) setRecipeID(recipeID kernel.UUID) error {
	if err := recipeID.Validate(); err != nil {
		return err
	}

	c.recipeID = recipeID
	return nil
}
