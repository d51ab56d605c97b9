// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The composite unique index on (unit_id, order_number) is the backstop for
// the sequential numbering scheme: two creations racing for the same number
// cannot both land.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UnitID      uuid.UUID  `gorm:"type:uuid;index;uniqueIndex:idx_orders_unit_number"`
	OrderNumber string     `gorm:"uniqueIndex:idx_orders_unit_number"`
	ClientID    *uuid.UUID `gorm:"type:uuid;index"`
	ClientName  string
	Status      int       `gorm:"index"`
	PromisedAt  time.Time `gorm:"index"`
	Notes       string
	CreatedAt   time.Time `gorm:"index"`

	Items  []OrderItemDTO  `gorm:"foreignKey:OrderID"`
	Events []OrderEventDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line in the database.
type OrderItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	PieceType  int
	OtherLabel string
	Quantity   int
	RecipeID   *uuid.UUID `gorm:"type:uuid"`
	Notes      string
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderEventDTO represents one ledger row. Rows are append-only: they are
// inserted when an aggregate's pending events are persisted and never updated
// or deleted afterwards.
type OrderEventDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	// Sequence is assigned by the database on insert. It fixes the replay
	// order of rows sharing an occurred_at timestamp, such as the exit/entry
	// pair written by one transition.
	Sequence int64 `gorm:"autoIncrement;uniqueIndex"`

	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Sector     int
	EventType  int
	OperatorID *uuid.UUID `gorm:"type:uuid"`
	Notes      string
	Payload    []byte    `gorm:"type:jsonb"`
	OccurredAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for order events.
func (OrderEventDTO) TableName() string {
	return "order_events"
}

// fromDomain converts an order aggregate to its database representation,
// including every item and every ledger event.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:          aggregate.ID().Bytes(),
		UnitID:      aggregate.UnitID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		ClientID:    uuidPtr(aggregate.ClientID()),
		ClientName:  aggregate.ClientName(),
		Status:      int(aggregate.Status()),
		PromisedAt:  aggregate.PromisedAt(),
		Notes:       aggregate.Notes(),
		CreatedAt:   aggregate.CreatedAt(),
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, itemFromDomain(aggregate.ID(), item))
	}
	for _, event := range aggregate.Events() {
		dto.Events = append(dto.Events, eventFromDomain(event))
	}

	return dto
}

func itemFromDomain(orderID kernel.UUID, item *order.OrderItem) OrderItemDTO {
	return OrderItemDTO{
		ID:         item.ID().Bytes(),
		OrderID:    orderID.Bytes(),
		PieceType:  int(item.PieceType()),
		OtherLabel: item.OtherLabel(),
		Quantity:   item.Quantity(),
		RecipeID:   uuidPtr(item.RecipeID()),
		Notes:      item.Notes(),
	}
}

func eventFromDomain(event *order.OrderEvent) OrderEventDTO {
	return OrderEventDTO{
		ID:         event.ID().Bytes(),
		OrderID:    event.OrderID().Bytes(),
		Sector:     int(event.Sector()),
		EventType:  int(event.EventType()),
		OperatorID: uuidPtr(event.OperatorID()),
		Notes:      event.Notes(),
		Payload:    event.Payload(),
		OccurredAt: event.OccurredAt(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
// Events must be preloaded in chronological order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	unitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernelPtr(dto.ClientID)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	events := make([]*order.OrderEvent, 0, len(dto.Events))
	for _, eventDTO := range dto.Events {
		event, eventErr := eventToDomain(eventDTO)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return order.RestoreOrder(
		id,
		unitID,
		dto.OrderNumber,
		clientID,
		dto.ClientName,
		items,
		events,
		order.Sector(dto.Status),
		dto.PromisedAt,
		dto.Notes,
		dto.CreatedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	recipeID, err := kernelPtr(dto.RecipeID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(
		id,
		order.PieceType(dto.PieceType),
		dto.OtherLabel,
		dto.Quantity,
		recipeID,
		dto.Notes,
	)
}

func eventToDomain(dto OrderEventDTO) (*order.OrderEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	operatorID, err := kernelPtr(dto.OperatorID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderEvent(
		id,
		orderID,
		order.Sector(dto.Sector),
		order.EventType(dto.EventType),
		operatorID,
		dto.Notes,
		dto.Payload,
		dto.OccurredAt,
	)
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelPtr(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
