// Package ports defines repository and provider interfaces for the production
// core. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and advancing order entities
// through the sector pipeline.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items and the
	// opening ledger event.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with items and its full event ledger.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Update persists a status transition and the aggregate's pending events.
	// The status write is conditional on the previous status: if another
	// writer moved the order first, no row matches and a ConflictError is
	// returned without touching the ledger.
	Update(ctx context.Context, aggregate *order.Order, previous order.Sector) error

	// AppendEvents persists the aggregate's pending ledger events without a
	// status transition. Used for alert events and recipe corrections.
	AppendEvents(ctx context.Context, aggregate *order.Order) error

	// CountCreatedInYear returns how many orders the unit opened in the given
	// year, the input to sequential order numbering.
	CountCreatedInYear(ctx context.Context, unitID kernel.UUID, year int) (int, error)

	// GetActiveBefore retrieves orders not yet in a terminal sector whose
	// promise deadline falls before the given instant. Used by the overdue
	// sweep.
	GetActiveBefore(ctx context.Context, deadline time.Time) ([]*order.Order, error)
}
