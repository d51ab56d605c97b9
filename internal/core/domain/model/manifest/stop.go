package manifest

import (
	"errors"
	"fmt"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// ErrStopIsNotConstructed is returned when a Stop was not created via NewStop
// or RestoreStop.
var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")

// StopStatus is the visitation state of one manifest stop.
type StopStatus int

const (
	StopStatusUnknown StopStatus = iota

	// StopPending means the driver has not resolved the stop yet.
	StopPending

	// StopVisited means the stop was served; VisitedAt records when.
	StopVisited

	// StopSkipped means the stop was deliberately passed over. No timestamp
	// is recorded.
	StopSkipped
)

func getStopStatusStrings() map[StopStatus]string {
	return map[StopStatus]string{
		StopStatusUnknown: "unknown",
		StopPending:       "pending",
		StopVisited:       "visited",
		StopSkipped:       "skipped",
	}
}

// String returns the lower-case status name.
func (s StopStatus) String() string {
	if str, ok := getStopStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StopStatusFromString parses a stop status name.
func StopStatusFromString(name string) (StopStatus, error) {
	for status, str := range getStopStatusStrings() {
		if status != StopStatusUnknown && str == name {
			return status, nil
		}
	}
	return StopStatusUnknown, errs.NewValueIsInvalidErrorWithCause("stopStatus",
		fmt.Errorf("%q is not a valid stop status", name))
}

// Validate rejects StopStatusUnknown and out-of-range values.
func (s StopStatus) Validate() error {
	if s < StopPending || s > StopSkipped {
		return errs.NewValueIsInvalidErrorWithCause("stopStatus",
			fmt.Errorf("%d is not a valid stop status", s))
	}
	return nil
}

// IsResolved reports whether the stop no longer blocks manifest completion.
func (s StopStatus) IsResolved() bool {
	return s == StopVisited || s == StopSkipped
}

// Stop is one client visit within a manifest, ordered by position.
type Stop struct {
	id        kernel.UUID
	clientID  kernel.UUID
	position  int
	status    StopStatus
	visitedAt *time.Time

	isConstructed bool
}

// NewStop creates a pending stop at the given route position.
func NewStop(id, clientID kernel.UUID, position int) (*Stop, error) {
	stop := &Stop{
		status:        StopPending,
		isConstructed: true,
	}

	if err := errors.Join(
		stop.setID(id),
		stop.setClientID(clientID),
		stop.setPosition(position),
	); err != nil {
		return nil, err
	}

	return stop, nil
}

// RestoreStop reconstructs a stop from persistence.
func RestoreStop(
	id, clientID kernel.UUID,
	position int,
	status StopStatus,
	visitedAt *time.Time,
) (*Stop, error) {
	stop, err := NewStop(id, clientID, position)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	stop.status = status
	stop.visitedAt = visitedAt
	return stop, nil
}

// Validate ensures the stop came from a constructor.
func (s *Stop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStopIsNotConstructed
	}
	return nil
}

// ID returns the stop identifier.
func (s *Stop) ID() kernel.UUID { return s.id }

// ClientID returns the client to be visited.
func (s *Stop) ClientID() kernel.UUID { return s.clientID }

// Position returns the stop's order within the route.
func (s *Stop) Position() int { return s.position }

// Status returns the visitation state.
func (s *Stop) Status() StopStatus { return s.status }

// VisitedAt returns when the stop was first marked visited, or nil.
func (s *Stop) VisitedAt() *time.Time { return s.visitedAt }

// mark resolves the stop. Marking visited stamps VisitedAt only on the first
// visit: re-marking an already resolved stop is a field correction and must
// not rewrite history. Marking skipped never stamps a timestamp.
func (s *Stop) mark(status StopStatus, now time.Time) error {
	if !status.IsResolved() {
		return errs.NewInvalidTransitionError("stop", s.status.String(), status.String())
	}

	s.status = status
	if status == StopVisited && s.visitedAt == nil {
		s.visitedAt = &now
	}
	return nil
}

func (s *Stop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stop) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	s.clientID = clientID
	return nil
}

func (s *Stop) setPosition(position int) error {
	if position < 1 {
		return errs.NewValueIsOutOfRangeError("position", position, 1, 999)
	}
	s.position = position
	return nil
}
