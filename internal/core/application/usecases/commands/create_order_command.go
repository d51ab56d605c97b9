package commands

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrClientNameIsRequired = errors.New("client name is required")
	ErrItemsAreRequired     = errors.New("at least one item is required")
)

// OrderItemInput is one requested line of a new order, as captured at the
// reception desk.
type OrderItemInput struct {
	PieceType  order.PieceType
	OtherLabel string
	Quantity   int
	Notes      string
}

// CreateOrderCommand represents a request to open a new production order.
// Encapsulates the client, the item lines and the promise deadline. The order
// number is not part of the command: it is assigned inside the transaction so
// the per-unit-per-year sequence stays gapless under concurrent creation.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	unitID     kernel.UUID
	clientID   *kernel.UUID
	clientName string
	items      []OrderItemInput
	promisedAt time.Time
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates identifiers, the client name, the item list and the promise
// deadline. Per-item rules (quantity, other-label) are enforced by the
// aggregate when the handler builds the items.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	unitID kernel.UUID,
	clientID *kernel.UUID,
	clientName string,
	items []OrderItemInput,
	promisedAt time.Time,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUnitID(unitID),
		cmd.setClientID(clientID),
		cmd.setClientName(clientName),
		cmd.setItems(items),
		cmd.setPromisedAt(promisedAt),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UnitID returns the unit that owns the order.
func (c CreateOrderCommand) UnitID() kernel.UUID {
	return c.unitID
}

// ClientID returns the optional CRM client reference.
func (c CreateOrderCommand) ClientID() *kernel.UUID {
	return c.clientID
}

// ClientName returns the client display name.
func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

// Items returns the requested item lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// PromisedAt returns the promise deadline.
func (c CreateOrderCommand) PromisedAt() time.Time {
	return c.promisedAt
}

// Notes returns the order-level notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}

	c.unitID = unitID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID *kernel.UUID) error {
	if clientID == nil {
		return nil
	}
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setClientName(clientName string) error {
	if clientName == "" {
		return ErrClientNameIsRequired
	}

	c.clientName = clientName
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setPromisedAt(promisedAt time.Time) error {
	if promisedAt.IsZero() {
		return errs.NewValueIsRequiredError("promisedAt")
	}

	c.promisedAt = promisedAt
	return nil
}
