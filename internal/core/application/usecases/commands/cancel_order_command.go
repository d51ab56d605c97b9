package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrCancelReasonIsRequired = errors.New("cancellation reason is required")
)

// CancelOrderCommand represents a request to cancel an order at any
// non-terminal point of the pipeline. The reason is mandatory and lands on
// the order's ledger.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	reason     string
	operatorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command.
func NewCancelOrderCommand(orderID kernel.UUID, reason string, operatorID *kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
		cmd.setOperatorID(operatorID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

// OperatorID returns who cancelled, when known.
func (c CancelOrderCommand) OperatorID() *kernel.UUID {
	return c.operatorID
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrCancelReasonIsRequired
	}

	c.reason = reason
	return nil
}

func (c *CancelOrderCommand) setOperatorID(operatorID *kernel.UUID) error {
	if operatorID == nil {
		return nil
	}
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}
