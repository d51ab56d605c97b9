package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var ErrCompleteSectorCommandIsNotConstructed = errors.New(
	"CompleteSectorCommand must be created via NewCompleteSectorCommand constructor",
)

// CompleteSectorCommand represents a request to finish one sector's work on an
// order and advance it to the next sector. The payload shape depends on the
// sector being completed.
type CompleteSectorCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	sector     order.Sector
	payload    order.CompletionPayload
	operatorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteSectorCommand creates a sector completion command.
// The sector must be one a worker can complete; payload content is validated
// by the aggregate at handle time.
func NewCompleteSectorCommand(
	orderID kernel.UUID,
	sector order.Sector,
	payload order.CompletionPayload,
	operatorID *kernel.UUID,
) (CompleteSectorCommand, error) {
	cmd := CompleteSectorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSector(sector),
		cmd.setPayload(payload),
		cmd.setOperatorID(operatorID),
	); err != nil {
		return CompleteSectorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteSectorCommand) Validate() error {
	return c.guard.Validate(ErrCompleteSectorCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c CompleteSectorCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Sector returns the sector being completed.
func (c CompleteSectorCommand) Sector() order.Sector {
	return c.sector
}

// Payload returns the sector-specific completion data.
func (c CompleteSectorCommand) Payload() order.CompletionPayload {
	return c.payload
}

// OperatorID returns who performed the completion, when known.
func (c CompleteSectorCommand) OperatorID() *kernel.UUID {
	return c.operatorID
}

func (c *CompleteSectorCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteSectorCommand) setSector(sector order.Sector) error {
	if err := sector.Validate(); err != nil {
		return err
	}
	if !sector.IsCompletable() {
		return errs.NewValueIsInvalidError("sector")
	}

	c.sector = sector
	return nil
}

func (c *CompleteSectorCommand) setPayload(payload order.CompletionPayload) error {
	if payload == nil {
		return errs.NewValueIsRequiredError("payload")
	}

	c.payload = payload
	return nil
}

func (c *CompleteSectorCommand) setOperatorID(operatorID *kernel.UUID) error {
	if operatorID == nil {
		return nil
	}
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}
