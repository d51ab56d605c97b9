package services

import (
	"fmt"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/manifest"

	"github.com/shopspring/decimal"
)

// Severity grades an alert for the executive dashboard.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

func getSeverityStrings() map[Severity]string {
	return map[Severity]string{
		SeverityUnknown: "unknown",
		SeverityLow:     "low",
		SeverityMedium:  "medium",
		SeverityHigh:    "high",
	}
}

// String returns the lower-case severity name.
func (s Severity) String() string {
	if str, ok := getSeverityStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Alert is a derived network signal. Alerts live only for the duration of one
// aggregation pass: they are recomputed on every dashboard read, never stored.
type Alert struct {
	Severity Severity
	Metric   string
	UnitID   *kernel.UUID
	Message  string
}

// UnitKPI carries one unit's computed indicators for an aggregation pass.
// Nil pointer fields mean the metric had insufficient data and is not
// evaluated against thresholds.
type UnitKPI struct {
	UnitID               kernel.UUID
	CostPerKg            *decimal.Decimal
	PiecesPerHour        *float64
	BreakageRatePct      int
	ChemicalCostPerOrder *decimal.Decimal
}

// OverdueSummary counts a unit's orders currently past their promise deadline.
type OverdueSummary struct {
	UnitID       kernel.UUID
	OverdueCount int
}

// ManifestSummary is the state of one manifest at aggregation time.
type ManifestSummary struct {
	UnitID       kernel.UUID
	RouteID      kernel.UUID
	Date         time.Time
	Status       manifest.Status
	PendingStops int
}

// NPSScore is a unit's NPS response tally for the current window, supplied by
// the survey collaborator.
type NPSScore struct {
	UnitID     kernel.UUID
	Promoters  int
	Passives   int
	Detractors int
}

// AlertThresholds configures the rule table.
type AlertThresholds struct {
	// BreakageRatePct fires a high alert at or above this percentage.
	BreakageRatePct int

	// DetractorShare fires a medium alert when detractors exceed this share
	// of NPS responses.
	DetractorShare float64

	// CostPerKgCeiling fires a medium alert when the monthly cost per kilo
	// exceeds it.
	CostPerKgCeiling decimal.Decimal

	// ChemicalCostPerOrderCeiling fires a medium alert when today's chemical
	// spend per order exceeds it.
	ChemicalCostPerOrderCeiling decimal.Decimal
}

// DefaultAlertThresholds returns the network defaults used by the dashboard.
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		BreakageRatePct:             20,
		DetractorShare:              0.25,
		CostPerKgCeiling:            decimal.NewFromInt(12),
		ChemicalCostPerOrderCeiling: decimal.NewFromInt(8),
	}
}

// AlertEvaluator maps KPI, SLA, manifest and NPS snapshots to alerts. Each
// rule is independent, so evaluation order does not matter and multiple
// alerts may fire for the same unit. The evaluator is pure.
type AlertEvaluator struct {
	thresholds AlertThresholds
}

// NewAlertEvaluator creates an evaluator with the given thresholds.
func NewAlertEvaluator(thresholds AlertThresholds) AlertEvaluator {
	return AlertEvaluator{thresholds: thresholds}
}

// Evaluate runs the rule table over one aggregation pass.
func (e AlertEvaluator) Evaluate(
	kpis []UnitKPI,
	overdue []OverdueSummary,
	manifests []ManifestSummary,
	npsScores []NPSScore,
) []Alert {
	alerts := make([]Alert, 0)

	for _, kpi := range kpis {
		kpi := kpi
		if kpi.BreakageRatePct >= e.thresholds.BreakageRatePct {
			alerts = append(alerts, Alert{
				Severity: SeverityHigh,
				Metric:   "breakage_rate",
				UnitID:   &kpi.UnitID,
				Message: fmt.Sprintf("breakage rate at %d%% (threshold %d%%)",
					kpi.BreakageRatePct, e.thresholds.BreakageRatePct),
			})
		}
		if kpi.CostPerKg != nil && kpi.CostPerKg.GreaterThan(e.thresholds.CostPerKgCeiling) {
			alerts = append(alerts, Alert{
				Severity: SeverityMedium,
				Metric:   "cost_per_kg",
				UnitID:   &kpi.UnitID,
				Message: fmt.Sprintf("cost per kg at %s (ceiling %s)",
					kpi.CostPerKg.StringFixed(2), e.thresholds.CostPerKgCeiling.StringFixed(2)),
			})
		}
		if kpi.ChemicalCostPerOrder != nil &&
			kpi.ChemicalCostPerOrder.GreaterThan(e.thresholds.ChemicalCostPerOrderCeiling) {
			alerts = append(alerts, Alert{
				Severity: SeverityMedium,
				Metric:   "chemical_cost_per_order",
				UnitID:   &kpi.UnitID,
				Message: fmt.Sprintf("chemical cost per order at %s (ceiling %s)",
					kpi.ChemicalCostPerOrder.StringFixed(2),
					e.thresholds.ChemicalCostPerOrderCeiling.StringFixed(2)),
			})
		}
	}

	for _, summary := range overdue {
		summary := summary
		if summary.OverdueCount > 0 {
			alerts = append(alerts, Alert{
				Severity: SeverityHigh,
				Metric:   "sla_overdue",
				UnitID:   &summary.UnitID,
				Message:  fmt.Sprintf("%d orders past their promise deadline", summary.OverdueCount),
			})
		}
	}

	for _, summary := range manifests {
		summary := summary
		if summary.Status != manifest.StatusCompleted && summary.PendingStops > 0 {
			alerts = append(alerts, Alert{
				Severity: SeverityMedium,
				Metric:   "manifest_incomplete",
				UnitID:   &summary.UnitID,
				Message: fmt.Sprintf("route manifest of %s has %d unresolved stops",
					summary.Date.Format("02/01/2006"), summary.PendingStops),
			})
		}
	}

	for _, score := range npsScores {
		score := score
		total := score.Promoters + score.Passives + score.Detractors
		if total == 0 {
			continue
		}
		share := float64(score.Detractors) / float64(total)
		if share > e.thresholds.DetractorShare {
			alerts = append(alerts, Alert{
				Severity: SeverityMedium,
				Metric:   "nps_detractors",
				UnitID:   &score.UnitID,
				Message: fmt.Sprintf("detractors at %.0f%% of NPS responses (bound %.0f%%)",
					share*100, e.thresholds.DetractorShare*100),
			})
		}
	}

	return alerts
}
