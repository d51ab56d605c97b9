package queries

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/services"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var ErrGetNetworkAlertsQueryIsNotConstructed = errors.New(
	"GetNetworkAlertsQuery must be created via NewGetNetworkAlertsQuery constructor",
)

// GetNetworkAlertsQuery derives the executive alert list for one instant.
// Alerts are recomputed on every read from the KPI, overdue, manifest and NPS
// snapshots; nothing is stored.
type GetNetworkAlertsQuery struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetNetworkAlertsQuery creates an alert query anchored at the given
// instant.
func NewGetNetworkAlertsQuery(asOf time.Time) (GetNetworkAlertsQuery, error) {
	query := GetNetworkAlertsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setAsOf(asOf); err != nil {
		return GetNetworkAlertsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNetworkAlertsQuery) Validate() error {
	return q.guard.Validate(ErrGetNetworkAlertsQueryIsNotConstructed)
}

// AsOf returns the evaluation anchor.
func (q GetNetworkAlertsQuery) AsOf() time.Time {
	return q.asOf
}

func (q *GetNetworkAlertsQuery) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return errs.NewValueIsRequiredError("asOf")
	}

	q.asOf = asOf
	return nil
}

// GetNetworkAlertsQueryResponse carries the derived alerts, high severity
// first.
type GetNetworkAlertsQueryResponse struct {
	Alerts []services.Alert
}
