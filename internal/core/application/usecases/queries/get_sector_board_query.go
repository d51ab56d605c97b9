// Package queries contains read-only operations over the production store.
// Query handlers bypass the aggregates and read projections directly, keeping
// the read path free of domain reconstruction cost.
package queries

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/pkg/guard"
)

var ErrGetSectorBoardQueryIsNotConstructed = errors.New(
	"GetSectorBoardQuery must be created via NewGetSectorBoardQuery constructor",
)

// GetSectorBoardQuery retrieves one unit's live production board: every
// active order grouped by sector, each classified against its promise
// deadline.
type GetSectorBoardQuery struct { //nolint:recvcheck //using for validation
	unitID kernel.UUID
	now    time.Time

	guard guard.ConstructorGuard
}

// NewGetSectorBoardQuery creates a board query anchored at the given instant.
func NewGetSectorBoardQuery(unitID kernel.UUID, now time.Time) (GetSectorBoardQuery, error) {
	query := GetSectorBoardQuery{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUnitID(unitID); err != nil {
		return GetSectorBoardQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSectorBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetSectorBoardQueryIsNotConstructed)
}

// UnitID returns the unit whose board is requested.
func (q GetSectorBoardQuery) UnitID() kernel.UUID {
	return q.unitID
}

// Now returns the classification anchor.
func (q GetSectorBoardQuery) Now() time.Time {
	return q.now
}

func (q *GetSectorBoardQuery) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}

	q.unitID = unitID
	return nil
}

// SectorBoardCard is one order card on the board.
type SectorBoardCard struct {
	ID          kernel.UUID
	OrderNumber string
	ClientName  string
	Sector      order.Sector
	PieceCount  int
	PromisedAt  time.Time
	Sla         services.SlaClassification
}

// SectorBoardColumn groups the cards of one sector.
type SectorBoardColumn struct {
	Sector order.Sector
	Cards  []SectorBoardCard
}

// GetSectorBoardQueryResponse is the full board: one column per pipeline
// sector, in pipeline order, empty columns included so the board renders a
// stable layout.
type GetSectorBoardQueryResponse struct {
	Columns []SectorBoardColumn
}
