package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an OrderEvent was not created via
// NewOrderEvent or RestoreOrderEvent.
var ErrEventIsNotConstructed = errors.New("OrderEvent must be created via NewOrderEvent constructor")

// EventType classifies ledger entries. Entry and exit events mark sector
// transitions; alert events are observations (e.g. an SLA breach noticed by
// the sweep) and never change the order status.
type EventType int

const (
	EventTypeUnknown EventType = iota
	EventEntry
	EventExit
	EventAlert
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventTypeUnknown: "unknown",
		EventEntry:       "entry",
		EventExit:        "exit",
		EventAlert:       "alert",
	}
}

// String returns the lower-case event type name.
func (t EventType) String() string {
	if str, ok := getEventTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// EventTypeFromString parses an event type name.
func EventTypeFromString(name string) (EventType, error) {
	for eventType, str := range getEventTypeStrings() {
		if eventType != EventTypeUnknown && str == name {
			return eventType, nil
		}
	}
	return EventTypeUnknown, errs.NewValueIsInvalidErrorWithCause("eventType",
		fmt.Errorf("%q is not a valid event type", name))
}

// Validate rejects EventTypeUnknown and out-of-range values.
func (t EventType) Validate() error {
	if t < EventEntry || t > EventAlert {
		return errs.NewValueIsInvalidErrorWithCause("eventType",
			fmt.Errorf("%d is not a valid event type", t))
	}
	return nil
}

// OrderEvent is one immutable row of the order's append-only ledger. Events
// are never updated or deleted; the ledger is the authoritative history of
// the order, and the order status is a cached projection of the most recent
// entry event.
type OrderEvent struct {
	id         kernel.UUID
	orderID    kernel.UUID
	sector     Sector
	eventType  EventType
	operatorID *kernel.UUID
	notes      string
	payload    json.RawMessage
	occurredAt time.Time

	isConstructed bool
}

// NewOrderEvent creates a validated ledger event. The payload, when present,
// is the JSON snapshot of the sector completion that produced the event.
func NewOrderEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	sector Sector,
	eventType EventType,
	operatorID *kernel.UUID,
	notes string,
	payload json.RawMessage,
	occurredAt time.Time,
) (*OrderEvent, error) {
	event := &OrderEvent{
		notes:         notes,
		payload:       payload,
		occurredAt:    occurredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		event.setID(id),
		event.setOrderID(orderID),
		event.setSector(sector),
		event.setEventType(eventType),
		event.setOperatorID(operatorID),
	); err != nil {
		return nil, err
	}

	if occurredAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("occurredAt")
	}

	return event, nil
}

// RestoreOrderEvent reconstructs an event from persistence.
func RestoreOrderEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	sector Sector,
	eventType EventType,
	operatorID *kernel.UUID,
	notes string,
	payload json.RawMessage,
	occurredAt time.Time,
) (*OrderEvent, error) {
	return NewOrderEvent(id, orderID, sector, eventType, operatorID, notes, payload, occurredAt)
}

// Validate ensures the event came from a constructor.
func (e *OrderEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event identifier.
func (e *OrderEvent) ID() kernel.UUID {
	return e.id
}

// OrderID returns the owning order's identifier.
func (e *OrderEvent) OrderID() kernel.UUID {
	return e.orderID
}

// Sector returns the sector the event belongs to.
func (e *OrderEvent) Sector() Sector {
	return e.sector
}

// EventType returns whether this is an entry, exit or alert event.
func (e *OrderEvent) EventType() EventType {
	return e.eventType
}

// OperatorID returns who triggered the event, when recorded.
func (e *OrderEvent) OperatorID() *kernel.UUID {
	return e.operatorID
}

// Notes returns the free-text notes attached to the event.
func (e *OrderEvent) Notes() string {
	return e.notes
}

// Payload returns the JSON completion snapshot, or nil.
func (e *OrderEvent) Payload() json.RawMessage {
	return e.payload
}

// OccurredAt returns when the event happened.
func (e *OrderEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func (e *OrderEvent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *OrderEvent) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *OrderEvent) setSector(sector Sector) error {
	if err := sector.Validate(); err != nil {
		return err
	}
	e.sector = sector
	return nil
}

func (e *OrderEvent) setEventType(eventType EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}

func (e *OrderEvent) setOperatorID(operatorID *kernel.UUID) error {
	if operatorID == nil {
		return nil
	}
	if err := operatorID.Validate(); err != nil {
		return err
	}
	e.operatorID = operatorID
	return nil
}
