package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// minProductionSpan is the shortest ironing window a throughput figure can be
// derived from; anything shorter yields a nil pieces-per-hour.
const minProductionSpan = 6 * time.Minute

// GetNetworkKPIsQueryHandler computes the per-unit KPI rows.
// Production figures come from the orders projection and the event ledger;
// money figures come from the finance collaborator and stay exact decimals
// end to end.
type GetNetworkKPIsQueryHandler struct {
	db           *gorm.DB
	ledger       ports.LedgerProvider
	units        ports.UnitProvider
	slaEvaluator services.SlaEvaluator
}

// NewGetNetworkKPIsQueryHandler creates a handler for KPI queries.
func NewGetNetworkKPIsQueryHandler(
	db *gorm.DB,
	ledger ports.LedgerProvider,
	units ports.UnitProvider,
) GetNetworkKPIsQueryHandler {
	return GetNetworkKPIsQueryHandler{
		db:           db,
		ledger:       ledger,
		units:        units,
		slaEvaluator: services.NewSlaEvaluator(),
	}
}

// Handle executes the KPI query for every active unit.
func (h GetNetworkKPIsQueryHandler) Handle(
	ctx context.Context,
	query GetNetworkKPIsQuery,
) (GetNetworkKPIsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNetworkKPIsQueryResponse{}, err
	}

	unitIDs, err := h.units.GetUnitIDs(ctx)
	if err != nil {
		return GetNetworkKPIsQueryResponse{}, err
	}

	rows := make([]services.UnitKPI, 0, len(unitIDs))
	for _, unitID := range unitIDs {
		kpi, kpiErr := h.computeUnit(ctx, unitID, query.From(), query.To())
		if kpiErr != nil {
			return GetNetworkKPIsQueryResponse{}, kpiErr
		}
		rows = append(rows, kpi)
	}

	return GetNetworkKPIsQueryResponse{Units: rows}, nil
}

func (h GetNetworkKPIsQueryHandler) computeUnit(
	ctx context.Context,
	unitID kernel.UUID,
	from, to time.Time,
) (services.UnitKPI, error) {
	kpi := services.UnitKPI{UnitID: unitID}

	costPerKg, err := h.costPerKg(ctx, unitID, from, to)
	if err != nil {
		return services.UnitKPI{}, err
	}
	kpi.CostPerKg = costPerKg

	piecesPerHour, err := h.piecesPerHour(ctx, unitID, from, to)
	if err != nil {
		return services.UnitKPI{}, err
	}
	kpi.PiecesPerHour = piecesPerHour

	breakage, err := h.breakageRate(ctx, unitID, from, to)
	if err != nil {
		return services.UnitKPI{}, err
	}
	kpi.BreakageRatePct = breakage

	chemicalCost, err := h.chemicalCostPerOrder(ctx, unitID, from, to)
	if err != nil {
		return services.UnitKPI{}, err
	}
	kpi.ChemicalCostPerOrder = chemicalCost

	return kpi, nil
}

// costPerKg divides the period's paid expenses by the kilos that left the
// washing sector. Weights are optional on washing completions, so only
// weighted loads count; with no weighted kilos the metric is nil.
func (h GetNetworkKPIsQueryHandler) costPerKg(
	ctx context.Context,
	unitID kernel.UUID,
	from, to time.Time,
) (*decimal.Decimal, error) {
	var totalKg sql.NullString
	err := h.db.WithContext(ctx).Raw(`
		SELECT SUM((e.payload->>'weightKg')::numeric)
		FROM order_events e
		JOIN orders o ON o.id = e.order_id
		WHERE o.unit_id = ?
		  AND e.sector = ?
		  AND e.event_type = ?
		  AND e.payload->>'weightKg' IS NOT NULL
		  AND e.occurred_at >= ? AND e.occurred_at < ?
	`, unitID.Bytes(), order.Washing, order.EventExit, from, to).Scan(&totalKg).Error
	if err != nil {
		return nil, err
	}
	if !totalKg.Valid {
		return nil, nil
	}

	kg, err := decimal.NewFromString(totalKg.String)
	if err != nil {
		return nil, err
	}
	if kg.IsZero() {
		return nil, nil
	}

	expenses, err := h.ledger.TotalPaidExpenses(ctx, unitID, from, to)
	if err != nil {
		return nil, err
	}

	result := expenses.DivRound(kg, 4)
	return &result, nil
}

// piecesPerHour derives ironing throughput from the tallies on ironing exit
// events. The span between the first and last completion must be long enough
// to mean anything; otherwise the metric is nil.
func (h GetNetworkKPIsQueryHandler) piecesPerHour(
	ctx context.Context,
	unitID kernel.UUID,
	from, to time.Time,
) (*float64, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT e.payload, e.occurred_at
		FROM order_events e
		JOIN orders o ON o.id = e.order_id
		WHERE o.unit_id = ?
		  AND e.sector = ?
		  AND e.event_type = ?
		  AND e.occurred_at >= ? AND e.occurred_at < ?
		ORDER BY e.occurred_at
	`, unitID.Bytes(), order.Ironing, order.EventExit, from, to).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pieces int
	var first, last time.Time
	for rows.Next() {
		var payload []byte
		var occurredAt time.Time
		if err = rows.Scan(&payload, &occurredAt); err != nil {
			return nil, err
		}

		var completion order.IroningCompletion
		if err = json.Unmarshal(payload, &completion); err != nil {
			return nil, err
		}
		for _, count := range completion.Tally {
			pieces += count
		}

		if first.IsZero() {
			first = occurredAt
		}
		last = occurredAt
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	span := last.Sub(first)
	if pieces == 0 || span < minProductionSpan {
		return nil, nil
	}

	rate := float64(pieces) / span.Hours()
	return &rate, nil
}

// breakageRate measures the share of the period's intake the unit is failing
// on: orders created in the window that sit past their promise deadline in a
// non-terminal sector, over all orders created in the window. The window end
// doubles as the as-of instant for the deadline check.
func (h GetNetworkKPIsQueryHandler) breakageRate(
	ctx context.Context,
	unitID kernel.UUID,
	from, to time.Time,
) (int, error) {
	var total, late int
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status NOT IN (?, ?) AND promised_at < ?) AS late
		FROM orders
		WHERE unit_id = ?
		  AND created_at >= ? AND created_at < ?
	`, int(order.Delivered), int(order.Cancelled), to, unitID.Bytes(), from, to).Row().Scan(&total, &late)
	if err != nil {
		return 0, err
	}

	return h.slaEvaluator.BreakageRate(late, total), nil
}

// chemicalCostPerOrder divides the period's chemical stock outflow by the
// orders opened in the period. With no orders the metric is nil.
func (h GetNetworkKPIsQueryHandler) chemicalCostPerOrder(
	ctx context.Context,
	unitID kernel.UUID,
	from, to time.Time,
) (*decimal.Decimal, error) {
	var orderCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE unit_id = ?
		  AND created_at >= ? AND created_at < ?
	`, unitID.Bytes(), from, to).Scan(&orderCount).Error
	if err != nil {
		return nil, err
	}
	if orderCount == 0 {
		return nil, nil
	}

	chemicalOut, err := h.ledger.TotalChemicalOut(ctx, unitID, from, to)
	if err != nil {
		return nil, err
	}

	result := chemicalOut.DivRound(decimal.NewFromInt(orderCount), 4)
	return &result, nil
}
