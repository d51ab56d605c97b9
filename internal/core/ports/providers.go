package ports

import (
	"context"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// RouteStop is one template stop of a delivery route, as maintained by the
// logistics collaborator.
type RouteStop struct {
	ClientID kernel.UUID
	Position int
}

// Route is an active delivery route owned by one unit.
type Route struct {
	ID     kernel.UUID
	UnitID kernel.UUID
	Name   string
}

// RouteProvider reads route definitions owned by the logistics collaborator.
// The production core never writes routes; it only instantiates manifests
// from them.
type RouteProvider interface {
	// GetActiveRoutes retrieves every route currently flagged active across
	// the network.
	GetActiveRoutes(ctx context.Context) ([]Route, error)

	// GetStops retrieves a route's template stops ordered by position.
	GetStops(ctx context.Context, routeID kernel.UUID) ([]RouteStop, error)
}

// UnitProvider reads unit master data owned by the administration
// collaborator.
type UnitProvider interface {
	// GetUnitPrefix retrieves the unit's order-number prefix, e.g. "MTZ".
	GetUnitPrefix(ctx context.Context, unitID kernel.UUID) (string, error)

	// GetUnitIDs retrieves every active unit in the network.
	GetUnitIDs(ctx context.Context) ([]kernel.UUID, error)
}

// LedgerProvider reads financial figures owned by the finance collaborator.
// All money amounts are exact decimals.
type LedgerProvider interface {
	// TotalPaidExpenses sums paid expenses for one unit over a period.
	TotalPaidExpenses(ctx context.Context, unitID kernel.UUID, from, to time.Time) (decimal.Decimal, error)

	// TotalChemicalOut sums chemical stock outflow cost for one unit over a
	// period.
	TotalChemicalOut(ctx context.Context, unitID kernel.UUID, from, to time.Time) (decimal.Decimal, error)
}

// NPSProvider reads survey tallies owned by the customer-experience
// collaborator.
type NPSProvider interface {
	// GetScores retrieves per-unit NPS tallies for the period.
	GetScores(ctx context.Context, from, to time.Time) ([]services.NPSScore, error)
}
