package order

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an OrderItem was not created via
// NewOrderItem or RestoreOrderItem.
var ErrItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is one line of an order: a quantity of a single piece type.
// Items are immutable after creation except for recipe assignment, which the
// aggregate only permits while the order is still in the sorting stage.
type OrderItem struct {
	id         kernel.UUID
	pieceType  PieceType
	otherLabel string
	quantity   int
	recipeID   *kernel.UUID
	notes      string

	isConstructed bool
}

// NewOrderItem creates a validated order item. Quantity must be at least one,
// and PieceOther requires a free-text label describing the piece.
func NewOrderItem(
	id kernel.UUID,
	pieceType PieceType,
	otherLabel string,
	quantity int,
	notes string,
) (*OrderItem, error) {
	item := &OrderItem{
		otherLabel:    otherLabel,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setPieceType(pieceType),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	if pieceType == PieceOther && otherLabel == "" {
		return nil, errs.NewValueIsRequiredError("otherLabel")
	}

	return item, nil
}

// RestoreOrderItem reconstructs an item from persistence, including a recipe
// assignment made during sorting.
func RestoreOrderItem(
	id kernel.UUID,
	pieceType PieceType,
	otherLabel string,
	quantity int,
	recipeID *kernel.UUID,
	notes string,
) (*OrderItem, error) {
	item, err := NewOrderItem(id, pieceType, otherLabel, quantity, notes)
	if err != nil {
		return nil, err
	}
	if recipeID != nil {
		if err = item.setRecipe(*recipeID); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// Validate ensures the item came from a constructor.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// PieceType returns what kind of piece the item holds.
func (i *OrderItem) PieceType() PieceType {
	return i.pieceType
}

// OtherLabel returns the free-text label for PieceOther items.
func (i *OrderItem) OtherLabel() string {
	return i.otherLabel
}

// Quantity returns the piece count.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// RecipeID returns the assigned recipe reference, or nil before sorting
// assigns one.
func (i *OrderItem) RecipeID() *kernel.UUID {
	return i.recipeID
}

// Notes returns the per-item notes.
func (i *OrderItem) Notes() string {
	return i.notes
}

// setRecipe records a recipe reference. The aggregate gates this on the
// order's status; the item only validates the reference itself.
func (i *OrderItem) setRecipe(recipeID kernel.UUID) error {
	if err := recipeID.Validate(); err != nil {
		return err
	}
	i.recipeID = &recipeID
	return nil
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setPieceType(pieceType PieceType) error {
	if err := pieceType.Validate(); err != nil {
		return err
	}
	i.pieceType = pieceType
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, 9999)
	}
	i.quantity = quantity
	return nil
}
