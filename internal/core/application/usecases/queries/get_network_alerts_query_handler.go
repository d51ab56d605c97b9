package queries

import (
	"context"
	"sort"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/manifest"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNetworkAlertsQueryHandler folds the network's current state into the
// executive alert list. KPI and NPS inputs cover the month to date; overdue
// and manifest inputs reflect the instant of the query.
type GetNetworkAlertsQueryHandler struct {
	db             *gorm.DB
	kpiHandler     GetNetworkKPIsQueryHandler
	nps            ports.NPSProvider
	alertEvaluator services.AlertEvaluator
}

// NewGetNetworkAlertsQueryHandler creates a handler for alert queries.
func NewGetNetworkAlertsQueryHandler(
	db *gorm.DB,
	kpiHandler GetNetworkKPIsQueryHandler,
	nps ports.NPSProvider,
	thresholds services.AlertThresholds,
) GetNetworkAlertsQueryHandler {
	return GetNetworkAlertsQueryHandler{
		db:             db,
		kpiHandler:     kpiHandler,
		nps:            nps,
		alertEvaluator: services.NewAlertEvaluator(thresholds),
	}
}

// Handle executes the alert query.
func (h GetNetworkAlertsQueryHandler) Handle(
	ctx context.Context,
	query GetNetworkAlertsQuery,
) (GetNetworkAlertsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNetworkAlertsQueryResponse{}, err
	}

	asOf := query.AsOf()
	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)

	kpiQuery, err := NewGetNetworkKPIsQuery(monthStart, asOf)
	if err != nil {
		return GetNetworkAlertsQueryResponse{}, err
	}
	kpis, err := h.kpiHandler.Handle(ctx, kpiQuery)
	if err != nil {
		return GetNetworkAlertsQueryResponse{}, err
	}

	overdue, err := h.overdueSummaries(ctx, asOf)
	if err != nil {
		return GetNetworkAlertsQueryResponse{}, err
	}

	manifests, err := h.manifestSummaries(ctx, asOf)
	if err != nil {
		return GetNetworkAlertsQueryResponse{}, err
	}

	npsScores, err := h.nps.GetScores(ctx, monthStart, asOf)
	if err != nil {
		return GetNetworkAlertsQueryResponse{}, err
	}

	alerts := h.alertEvaluator.Evaluate(kpis.Units, overdue, manifests, npsScores)
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity > alerts[j].Severity
	})

	return GetNetworkAlertsQueryResponse{Alerts: alerts}, nil
}

func (h GetNetworkAlertsQueryHandler) overdueSummaries(
	ctx context.Context,
	asOf time.Time,
) ([]services.OverdueSummary, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT unit_id, COUNT(*)
		FROM orders
		WHERE status NOT IN (?, ?)
		  AND promised_at < ?
		GROUP BY unit_id
	`, order.Delivered, order.Cancelled, asOf).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]services.OverdueSummary, 0)
	for rows.Next() {
		var id uuid.UUID
		var count int
		if err = rows.Scan(&id, &count); err != nil {
			return nil, err
		}

		unitID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summaries = append(summaries, services.OverdueSummary{UnitID: unitID, OverdueCount: count})
	}
	return summaries, rows.Err()
}

// manifestSummaries reports manifests dated before today that never reached
// completion, with their unresolved stop counts.
func (h GetNetworkAlertsQueryHandler) manifestSummaries(
	ctx context.Context,
	asOf time.Time,
) ([]services.ManifestSummary, error) {
	today := manifest.NormalizeDate(asOf)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.unit_id,
			m.route_id,
			m.date,
			m.status,
			COUNT(s.id) FILTER (WHERE s.status = ?) AS pending_stops
		FROM manifests m
		LEFT JOIN manifest_stops s ON s.manifest_id = m.id
		WHERE m.date < ?
		  AND m.status != ?
		GROUP BY m.unit_id, m.route_id, m.date, m.status
	`, manifest.StopPending, today, manifest.StatusCompleted).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]services.ManifestSummary, 0)
	for rows.Next() {
		var unitRaw, routeRaw uuid.UUID
		var date time.Time
		var status int
		var pendingStops int
		if err = rows.Scan(&unitRaw, &routeRaw, &date, &status, &pendingStops); err != nil {
			return nil, err
		}

		unitID, idErr := kernel.UUIDFromBytes(unitRaw[:])
		if idErr != nil {
			return nil, idErr
		}
		routeID, idErr := kernel.UUIDFromBytes(routeRaw[:])
		if idErr != nil {
			return nil, idErr
		}

		summaries = append(summaries, services.ManifestSummary{
			UnitID:       unitID,
			RouteID:      routeID,
			Date:         date,
			Status:       manifest.Status(status),
			PendingStops: pendingStops,
		})
	}
	return summaries, rows.Err()
}
