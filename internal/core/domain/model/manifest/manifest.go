package manifest

import (
	"errors"
	"fmt"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

var (
	// ErrManifestIsNotConstructed is returned when a Manifest was not created
	// via NewManifest or RestoreManifest.
	ErrManifestIsNotConstructed = errors.New("Manifest must be created via NewManifest constructor")

	// ErrIncompleteStops is the sentinel for completion attempts with pending
	// stops remaining.
	ErrIncompleteStops = errors.New("manifest has pending stops")
)

// IncompleteStopsError reports how many stops still block manifest
// completion.
type IncompleteStopsError struct {
	ManifestID kernel.UUID
	Pending    int
}

// NewIncompleteStopsError creates an IncompleteStopsError.
func NewIncompleteStopsError(manifestID kernel.UUID, pending int) *IncompleteStopsError {
	return &IncompleteStopsError{ManifestID: manifestID, Pending: pending}
}

func (e *IncompleteStopsError) Error() string {
	return fmt.Sprintf("%s: %d stops still pending on manifest %s",
		ErrIncompleteStops, e.Pending, e.ManifestID)
}

func (e *IncompleteStopsError) Unwrap() error {
	return ErrIncompleteStops
}

// Status is the lifecycle state of a manifest.
type Status int

const (
	StatusUnknown Status = iota

	// StatusPending means the manifest was generated but no stop has been
	// worked yet.
	StatusPending

	// StatusInProgress means at least one stop has been resolved.
	StatusInProgress

	// StatusCompleted means every stop is resolved and the manifest was
	// explicitly closed.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
	}
}

// String returns the lower-case status name.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a manifest status name.
func StatusFromString(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("manifestStatus",
		fmt.Errorf("%q is not a valid manifest status", name))
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if s < StatusPending || s > StatusCompleted {
		return errs.NewValueIsInvalidErrorWithCause("manifestStatus",
			fmt.Errorf("%d is not a valid manifest status", s))
	}
	return nil
}

// Manifest is a day's delivery run for one route: the aggregate root over its
// ordered stops. One manifest exists per (route, date); generation is
// idempotent at the repository level via that key.
type Manifest struct {
	id      kernel.UUID
	unitID  kernel.UUID
	routeID kernel.UUID
	date    time.Time
	status  Status
	stops   []*Stop

	isConstructed bool
}

// NormalizeDate truncates a timestamp to its UTC calendar date, the manifest
// upsert key granularity.
func NormalizeDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NewManifest creates a pending manifest for the given route and date with
// the stops built from the route template.
func NewManifest(
	id kernel.UUID,
	unitID kernel.UUID,
	routeID kernel.UUID,
	date time.Time,
	stops []*Stop,
) (*Manifest, error) {
	m := &Manifest{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setUnitID(unitID),
		m.setRouteID(routeID),
		m.setDate(date),
		m.setStops(stops),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreManifest reconstructs a manifest from persistence.
func RestoreManifest(
	id kernel.UUID,
	unitID kernel.UUID,
	routeID kernel.UUID,
	date time.Time,
	status Status,
	stops []*Stop,
) (*Manifest, error) {
	m, err := NewManifest(id, unitID, routeID, date, stops)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	m.status = status
	return m, nil
}

// Validate ensures the manifest came from a constructor.
func (m *Manifest) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrManifestIsNotConstructed
	}
	return nil
}

// ID returns the manifest identifier.
func (m *Manifest) ID() kernel.UUID { return m.id }

// UnitID returns the owning unit.
func (m *Manifest) UnitID() kernel.UUID { return m.unitID }

// RouteID returns the route this manifest instantiates.
func (m *Manifest) RouteID() kernel.UUID { return m.routeID }

// Date returns the manifest's calendar date (midnight UTC).
func (m *Manifest) Date() time.Time { return m.date }

// Status returns the lifecycle state.
func (m *Manifest) Status() Status { return m.status }

// Stops returns the stops ordered by position.
func (m *Manifest) Stops() []*Stop { return m.stops }

// Stop finds a stop by its identifier.
func (m *Manifest) Stop(stopID kernel.UUID) (*Stop, error) {
	for _, stop := range m.stops {
		if stop.ID().IsEqual(stopID) {
			return stop, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("stopId", stopID.String())
}

// PendingCount returns how many stops are still pending.
func (m *Manifest) PendingCount() int {
	count := 0
	for _, stop := range m.stops {
		if !stop.Status().IsResolved() {
			count++
		}
	}
	return count
}

// HasStopAtPosition reports whether a stop already occupies the given route
// position, used for duplicate-safe stop insertion on regeneration.
func (m *Manifest) HasStopAtPosition(position int) bool {
	for _, stop := range m.stops {
		if stop.Position() == position {
			return true
		}
	}
	return false
}

// MarkStop resolves one stop as visited or skipped. The first resolution on a
// pending manifest moves it to in progress. Re-marking an already resolved
// stop is treated as a field correction, not an error, and never rewrites the
// original visit timestamp.
func (m *Manifest) MarkStop(stopID kernel.UUID, status StopStatus, now time.Time) (*Stop, error) {
	if m.status == StatusCompleted {
		return nil, errs.NewInvalidTransitionError("manifest", m.status.String(), m.status.String())
	}

	stop, err := m.Stop(stopID)
	if err != nil {
		return nil, err
	}

	if err = stop.mark(status, now); err != nil {
		return nil, err
	}

	if m.status == StatusPending {
		m.status = StatusInProgress
	}
	return stop, nil
}

// Complete closes the manifest. It only succeeds once every stop is resolved;
// otherwise it returns IncompleteStopsError carrying the pending count.
func (m *Manifest) Complete() error {
	if m.status == StatusCompleted {
		return errs.NewInvalidTransitionError("manifest", m.status.String(), StatusCompleted.String())
	}

	if pending := m.PendingCount(); pending > 0 {
		return NewIncompleteStopsError(m.id, pending)
	}

	m.status = StatusCompleted
	return nil
}

func (m *Manifest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Manifest) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	m.unitID = unitID
	return nil
}

func (m *Manifest) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	m.routeID = routeID
	return nil
}

func (m *Manifest) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	m.date = NormalizeDate(date)
	return nil
}

func (m *Manifest) setStops(stops []*Stop) error {
	for _, stop := range stops {
		if err := stop.Validate(); err != nil {
			return err
		}
	}
	m.stops = stops
	return nil
}
