// Package collab contains read-only GORM adapters over tables owned by the
// collaborating back-office modules: unit master data, delivery routes,
// finance ledger entries and NPS survey responses. The production core never
// writes these tables; it only queries the slices it needs for numbering,
// manifest generation and the KPI dashboard.
package collab

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/core/ports"
	"laundryops/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UnitDTO mirrors the columns of the administration module's units table
// that the production core reads.
type UnitDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	OrderPrefix string
	Active      bool
}

// TableName maps the DTO onto the administration module's table.
func (UnitDTO) TableName() string {
	return "units"
}

// RouteDTO mirrors the logistics module's routes table.
type RouteDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UnitID uuid.UUID `gorm:"type:uuid"`
	Name   string
	Active bool
}

// TableName maps the DTO onto the logistics module's table.
func (RouteDTO) TableName() string {
	return "routes"
}

// RouteStopDTO mirrors the logistics module's route template stops.
type RouteStopDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID  uuid.UUID `gorm:"type:uuid;index"`
	ClientID uuid.UUID `gorm:"type:uuid"`
	Position int
}

// TableName maps the DTO onto the logistics module's table.
func (RouteStopDTO) TableName() string {
	return "route_stops"
}

// GormUnitProvider reads unit master data.
type GormUnitProvider struct {
	db *gorm.DB
}

// NewGormUnitProvider creates a unit provider over the shared database.
func NewGormUnitProvider(db *gorm.DB) *GormUnitProvider {
	return &GormUnitProvider{db: db}
}

// GetUnitPrefix retrieves the unit's order-number prefix.
func (p *GormUnitProvider) GetUnitPrefix(ctx context.Context, unitID kernel.UUID) (string, error) {
	if err := unitID.Validate(); err != nil {
		return "", err
	}

	var dto UnitDTO
	if err := p.db.WithContext(ctx).First(&dto, "id = ?", unitID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("unit", unitID.String())
		}
		return "", err
	}
	return dto.OrderPrefix, nil
}

// GetUnitIDs retrieves every active unit in the network.
func (p *GormUnitProvider) GetUnitIDs(ctx context.Context) ([]kernel.UUID, error) {
	var dtos []UnitDTO
	if err := p.db.WithContext(ctx).Where("active").Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GormRouteProvider reads delivery route definitions.
type GormRouteProvider struct {
	db *gorm.DB
}

// NewGormRouteProvider creates a route provider over the shared database.
func NewGormRouteProvider(db *gorm.DB) *GormRouteProvider {
	return &GormRouteProvider{db: db}
}

// GetActiveRoutes retrieves every active route across the network.
func (p *GormRouteProvider) GetActiveRoutes(ctx context.Context) ([]ports.Route, error) {
	var dtos []RouteDTO
	if err := p.db.WithContext(ctx).Where("active").Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	routes := make([]ports.Route, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		unitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
		if err != nil {
			return nil, err
		}
		routes = append(routes, ports.Route{ID: id, UnitID: unitID, Name: dto.Name})
	}
	return routes, nil
}

// GetStops retrieves a route's template stops ordered by position.
func (p *GormRouteProvider) GetStops(ctx context.Context, routeID kernel.UUID) ([]ports.RouteStop, error) {
	if err := routeID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RouteStopDTO
	err := p.db.WithContext(ctx).
		Where("route_id = ?", routeID.Bytes()).
		Order("position").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	stops := make([]ports.RouteStop, 0, len(dtos))
	for _, dto := range dtos {
		clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
		if err != nil {
			return nil, err
		}
		stops = append(stops, ports.RouteStop{ClientID: clientID, Position: dto.Position})
	}
	return stops, nil
}

// GormLedgerProvider reads the finance module's figures. Sums come back as
// numeric strings and are parsed into exact decimals; a period with no rows
// sums to zero.
type GormLedgerProvider struct {
	db *gorm.DB
}

// NewGormLedgerProvider creates a ledger provider over the shared database.
func NewGormLedgerProvider(db *gorm.DB) *GormLedgerProvider {
	return &GormLedgerProvider{db: db}
}

// TotalPaidExpenses sums paid expenses for one unit over a period.
func (p *GormLedgerProvider) TotalPaidExpenses(
	ctx context.Context,
	unitID kernel.UUID,
	from, to time.Time,
) (decimal.Decimal, error) {
	return p.sum(ctx, `
		SELECT SUM(amount)
		FROM expenses
		WHERE unit_id = ?
		  AND status = 'paid'
		  AND paid_at >= ? AND paid_at < ?
	`, unitID, from, to)
}

// TotalChemicalOut sums chemical stock outflow cost for one unit over a
// period.
func (p *GormLedgerProvider) TotalChemicalOut(
	ctx context.Context,
	unitID kernel.UUID,
	from, to time.Time,
) (decimal.Decimal, error) {
	return p.sum(ctx, `
		SELECT SUM(m.quantity * m.unit_cost)
		FROM stock_movements m
		JOIN stock_items i ON i.id = m.stock_item_id
		WHERE m.unit_id = ?
		  AND m.direction = 'out'
		  AND i.category = 'chemical'
		  AND m.moved_at >= ? AND m.moved_at < ?
	`, unitID, from, to)
}

func (p *GormLedgerProvider) sum(
	ctx context.Context,
	query string,
	unitID kernel.UUID,
	from, to time.Time,
) (decimal.Decimal, error) {
	if err := unitID.Validate(); err != nil {
		return decimal.Zero, err
	}

	var total sql.NullString
	if err := p.db.WithContext(ctx).Raw(query, unitID.Bytes(), from, to).Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(total.String)
}

// GormNPSProvider reads the customer-experience module's survey responses.
// Scores of 9 and 10 count as promoters, 7 and 8 as passives, the rest as
// detractors.
type GormNPSProvider struct {
	db *gorm.DB
}

// NewGormNPSProvider creates an NPS provider over the shared database.
func NewGormNPSProvider(db *gorm.DB) *GormNPSProvider {
	return &GormNPSProvider{db: db}
}

// GetScores retrieves per-unit NPS tallies for the period.
func (p *GormNPSProvider) GetScores(ctx context.Context, from, to time.Time) ([]services.NPSScore, error) {
	rows, err := p.db.WithContext(ctx).Raw(`
		SELECT
			unit_id,
			COUNT(*) FILTER (WHERE score >= 9) AS promoters,
			COUNT(*) FILTER (WHERE score IN (7, 8)) AS passives,
			COUNT(*) FILTER (WHERE score <= 6) AS detractors
		FROM nps_responses
		WHERE responded_at >= ? AND responded_at < ?
		GROUP BY unit_id
	`, from, to).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make([]services.NPSScore, 0)
	for rows.Next() {
		var raw uuid.UUID
		var promoters, passives, detractors int
		if err = rows.Scan(&raw, &promoters, &passives, &detractors); err != nil {
			return nil, err
		}

		unitID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		scores = append(scores, services.NPSScore{
			UnitID:     unitID,
			Promoters:  promoters,
			Passives:   passives,
			Detractors: detractors,
		})
	}
	return scores, rows.Err()
}
