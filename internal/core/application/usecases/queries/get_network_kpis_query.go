package queries

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/services"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var ErrGetNetworkKPIsQueryIsNotConstructed = errors.New(
	"GetNetworkKPIsQuery must be created via NewGetNetworkKPIsQuery constructor",
)

// GetNetworkKPIsQuery computes per-unit performance indicators over a period:
// cost per kilo washed, pieces ironed per hour, SLA breakage rate, and
// chemical cost per order. Indicators whose inputs are missing degrade to nil
// instead of failing the whole report.
type GetNetworkKPIsQuery struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetNetworkKPIsQuery creates a KPI query for the half-open period
// [from, to).
func NewGetNetworkKPIsQuery(from, to time.Time) (GetNetworkKPIsQuery, error) {
	query := GetNetworkKPIsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPeriod(from, to); err != nil {
		return GetNetworkKPIsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNetworkKPIsQuery) Validate() error {
	return q.guard.Validate(ErrGetNetworkKPIsQueryIsNotConstructed)
}

// From returns the period start, inclusive.
func (q GetNetworkKPIsQuery) From() time.Time {
	return q.from
}

// To returns the period end, exclusive.
func (q GetNetworkKPIsQuery) To() time.Time {
	return q.to
}

func (q *GetNetworkKPIsQuery) setPeriod(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return errs.NewValueIsRequiredError("period")
	}
	if !to.After(from) {
		return errs.NewValueIsInvalidError("period")
	}

	q.from = from
	q.to = to
	return nil
}

// GetNetworkKPIsQueryResponse carries one KPI row per unit.
type GetNetworkKPIsQueryResponse struct {
	Units []services.UnitKPI
}
