package order

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the production pipeline. It owns its item
// list and event ledger, and is the only place sector transitions are
// decided.
//
// Invariants:
//   - at least one item, each with quantity >= 1
//   - status equals the sector of the most recent entry event
//   - every transition appends exactly one exit and one entry event
//   - recipe assignments are immutable once sorting completes
//
// The aggregate tracks events appended since construction or restore in a
// pending list so the repository can persist exactly the new ledger rows
// alongside the conditional status update.
type Order struct {
	id          kernel.UUID
	unitID      kernel.UUID
	orderNumber string
	clientID    *kernel.UUID
	clientName  string
	items       []*OrderItem
	events      []*OrderEvent
	pending     []*OrderEvent
	status      Sector
	promisedAt  time.Time
	notes       string
	createdAt   time.Time

	isConstructed bool
}

// NewOrder creates an order in the Received sector with its synthetic entry
// event, timestamped now. The order number is assigned by the caller (it is a
// per-unit-per-year sequence owned by the creation use case).
func NewOrder(
	id kernel.UUID,
	unitID kernel.UUID,
	orderNumber string,
	clientID *kernel.UUID,
	clientName string,
	items []*OrderItem,
	promisedAt time.Time,
	notes string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		clientName:    clientName,
		notes:         notes,
		status:        Received,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUnitID(unitID),
		o.setOrderNumber(orderNumber),
		o.setClientID(clientID),
		o.setItems(items),
		o.setPromisedAt(promisedAt),
	); err != nil {
		return nil, err
	}

	if clientName == "" {
		return nil, errs.NewValueIsRequiredError("clientName")
	}

	// Creation is itself a ledger fact: the order entered the received sector.
	if _, err := o.appendEvent(Received, EventEntry, nil, "", nil, now); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The event list must be
// in chronological order; no pending events are tracked.
func RestoreOrder(
	id kernel.UUID,
	unitID kernel.UUID,
	orderNumber string,
	clientID *kernel.UUID,
	clientName string,
	items []*OrderItem,
	events []*OrderEvent,
	status Sector,
	promisedAt time.Time,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		clientName:    clientName,
		events:        events,
		notes:         notes,
		promisedAt:    promisedAt,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUnitID(unitID),
		o.setOrderNumber(orderNumber),
		o.setClientID(clientID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the order came from a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// UnitID returns the owning unit's identifier.
func (o *Order) UnitID() kernel.UUID { return o.unitID }

// OrderNumber returns the human-readable number, unique per unit per year.
func (o *Order) OrderNumber() string { return o.orderNumber }

// ClientID returns the client reference, when the order is linked to a CRM
// record.
func (o *Order) ClientID() *kernel.UUID { return o.clientID }

// ClientName returns the client display name.
func (o *Order) ClientName() string { return o.clientName }

// Items returns the order's item list.
func (o *Order) Items() []*OrderItem { return o.items }

// Events returns the full event ledger, oldest first.
func (o *Order) Events() []*OrderEvent { return o.events }

// PendingEvents returns the events appended since construction or restore,
// i.e. the ledger rows not yet persisted.
func (o *Order) PendingEvents() []*OrderEvent { return o.pending }

// Status returns the current sector.
func (o *Order) Status() Sector { return o.status }

// PromisedAt returns the promise deadline.
func (o *Order) PromisedAt() time.Time { return o.promisedAt }

// Notes returns the order-level notes.
func (o *Order) Notes() string { return o.notes }

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Item finds an item by its identifier.
func (o *Order) Item(itemID kernel.UUID) (*OrderItem, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemId", itemID.String())
}

// LatestEntrySector returns the sector of the most recent entry event. By
// invariant it always equals Status; it exists so callers and tests can check
// the projection against the ledger.
func (o *Order) LatestEntrySector() Sector {
	for i := len(o.events) - 1; i >= 0; i-- {
		if o.events[i].EventType() == EventEntry {
			return o.events[i].Sector()
		}
	}
	return Unknown
}

// AssignRecipe records a recipe reference on one item. Only legal while the
// order is still in the sorting stage (Received or Sorting); afterwards
// recipe assignments are immutable.
func (o *Order) AssignRecipe(itemID, recipeID kernel.UUID) error {
	if o.status != Received && o.status != Sorting {
		return errs.NewInvalidTransitionError("order recipe", o.status.String(), Sorting.String())
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	return item.setRecipe(recipeID)
}

// CompleteSector finalizes the given sector's work and advances the order to
// the next sector, appending one exit and one entry event that both carry the
// payload snapshot. It returns the status the order held before the
// transition, which the repository uses as the optimistic-concurrency token
// for the conditional update.
//
// Errors: InvalidTransition when the order is not in the sector (including a
// repeat completion), a validation error when the payload is malformed or
// names a different sector.
func (o *Order) CompleteSector(
	sector Sector,
	payload CompletionPayload,
	operatorID *kernel.UUID,
	now time.Time,
) (Sector, error) {
	if err := sector.ValidateCompleteFrom(o.status); err != nil {
		return Unknown, err
	}

	if payload == nil {
		return Unknown, errs.NewValueIsRequiredError("payload")
	}
	if payload.CompletedSector() != sector {
		return Unknown, errs.NewValueIsInvalidError("payload")
	}
	if err := payload.Validate(); err != nil {
		return Unknown, err
	}

	next, err := sector.Next()
	if err != nil {
		return Unknown, err
	}

	snapshot, err := marshalPayload(payload)
	if err != nil {
		return Unknown, err
	}

	if _, err = o.appendEvent(sector, EventExit, operatorID, "", snapshot, now); err != nil {
		return Unknown, err
	}
	if _, err = o.appendEvent(next, EventEntry, operatorID, "", snapshot, now); err != nil {
		return Unknown, err
	}

	previous := o.status
	o.status = next
	return previous, nil
}

// Cancel moves a non-terminal order to Cancelled, recording the reason on the
// ledger. Like CompleteSector it returns the previous status for the
// conditional write.
func (o *Order) Cancel(operatorID *kernel.UUID, reason string, now time.Time) (Sector, error) {
	if o.status.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionError("order", o.status.String(), Cancelled.String())
	}

	if _, err := o.appendEvent(o.status, EventExit, operatorID, reason, nil, now); err != nil {
		return Unknown, err
	}
	if _, err := o.appendEvent(Cancelled, EventEntry, operatorID, reason, nil, now); err != nil {
		return Unknown, err
	}

	previous := o.status
	o.status = Cancelled
	return previous, nil
}

// AppendEvent appends an observation to the ledger without touching the
// status. Transition legality lives in CompleteSector; alert events are
// plain observations.
func (o *Order) AppendEvent(
	sector Sector,
	eventType EventType,
	operatorID *kernel.UUID,
	notes string,
	now time.Time,
) (*OrderEvent, error) {
	return o.appendEvent(sector, eventType, operatorID, notes, nil, now)
}

func (o *Order) appendEvent(
	sector Sector,
	eventType EventType,
	operatorID *kernel.UUID,
	notes string,
	payload []byte,
	now time.Time,
) (*OrderEvent, error) {
	event, err := NewOrderEvent(kernel.NewUUID(), o.id, sector, eventType, operatorID, notes, payload, now)
	if err != nil {
		return nil, err
	}
	o.events = append(o.events, event)
	o.pending = append(o.pending, event)
	return event, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	o.unitID = unitID
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setClientID(clientID *kernel.UUID) error {
	if clientID == nil {
		return nil
	}
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setPromisedAt(promisedAt time.Time) error {
	if promisedAt.IsZero() {
		return errs.NewValueIsRequiredError("promisedAt")
	}
	o.promisedAt = promisedAt
	return nil
}
