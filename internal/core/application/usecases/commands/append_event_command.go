package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var ErrAppendEventCommandIsNotConstructed = errors.New(
	"AppendEventCommand must be created via NewAppendEventCommand constructor",
)

// AppendEventCommand represents a request to record an observation on an
// order's ledger without moving the order: alert events from the floor, or
// free-form annotations against a sector.
type AppendEventCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	sector     order.Sector
	eventType  order.EventType
	operatorID *kernel.UUID
	notes      string

	guard guard.ConstructorGuard
}

// NewAppendEventCommand creates an event append command. Entry and exit
// events are reserved for transitions; only alert events can be appended
// directly.
func NewAppendEventCommand(
	orderID kernel.UUID,
	sector order.Sector,
	eventType order.EventType,
	operatorID *kernel.UUID,
	notes string,
) (AppendEventCommand, error) {
	cmd := AppendEventCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSector(sector),
		cmd.setEventType(eventType),
		cmd.setOperatorID(operatorID),
	); err != nil {
		return AppendEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendEventCommand) Validate() error {
	return c.guard.Validate(ErrAppendEventCommandIsNotConstructed)
}

// OrderID returns the order whose ledger grows.
func (c AppendEventCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Sector returns the sector the observation concerns.
func (c AppendEventCommand) Sector() order.Sector {
	return c.sector
}

// EventType returns the kind of event to append.
func (c AppendEventCommand) EventType() order.EventType {
	return c.eventType
}

// OperatorID returns who recorded the observation, when known.
func (c AppendEventCommand) OperatorID() *kernel.UUID {
	return c.operatorID
}

// Notes returns the observation text.
func (c AppendEventCommand) Notes() string {
	return c.notes
}

func (c *AppendEventCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AppendEventCommand) setSector(sector order.Sector) error {
	if err := sector.Validate(); err != nil {
		return err
	}

	c.sector = sector
	return nil
}

func (c *AppendEventCommand) setEventType(eventType order.EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	if eventType != order.EventAlert {
		return errs.NewValueIsInvalidError("eventType")
	}

	c.eventType = eventType
	return nil
}

func (c *AppendEventCommand) setOperatorID(operatorID *kernel.UUID) error {
	if operatorID == nil {
		return nil
	}
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}
