package order

import (
	"fmt"

	"laundryops/internal/pkg/errs"
)

// Sector represents one stage of the laundry production pipeline. It doubles
// as the order status: an order "in" a sector has that sector as its status.
//
// Pipeline order:
//
//	Received → Sorting → Washing → Drying → Ironing → Ready → Shipped → Delivered
//
// Cancelled is a terminal state reachable from any non-terminal sector via an
// explicit administrative cancel.
type Sector int

const (
	// Unknown represents an invalid or undefined sector.
	Unknown Sector = iota

	// Received is the initial status of a freshly created order. An order in
	// Received sits in the sorting queue.
	Received

	// Sorting covers item triage and recipe assignment.
	Sorting

	// Washing covers the wash cycles.
	Washing

	// Drying covers machine or line drying.
	Drying

	// Ironing covers pressing and finishing.
	Ironing

	// Ready means production is finished and the order awaits shipping.
	Ready

	// Shipped means the order left the unit on a delivery run.
	Shipped

	// Delivered is the terminal happy-path status.
	Delivered

	// Cancelled is the terminal status of an administratively cancelled order.
	Cancelled
)

func getSectorStrings() map[Sector]string {
	return map[Sector]string{
		Unknown:   "unknown",
		Received:  "received",
		Sorting:   "sorting",
		Washing:   "washing",
		Drying:    "drying",
		Ironing:   "ironing",
		Ready:     "ready",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// String returns the lower-case sector name, or "unknown" for invalid values.
func (s Sector) String() string {
	if str, ok := getSectorStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// SectorFromString parses a sector name as stored in events and exposed over
// the API.
func SectorFromString(name string) (Sector, error) {
	for sector, str := range getSectorStrings() {
		if sector != Unknown && str == name {
			return sector, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("sector",
		fmt.Errorf("%q is not a valid sector", name))
}

// Validate rejects Unknown and out-of-range sector values.
func (s Sector) Validate() error {
	if s < Received || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("sector",
			fmt.Errorf("%d is not a valid sector", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Sector) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsCompletable reports whether the sector's work can be completed to advance
// the pipeline. Received is excluded: a received order advances by completing
// Sorting. Terminal sectors are excluded.
func (s Sector) IsCompletable() bool {
	return s >= Sorting && s <= Shipped
}

// Next returns the sector that follows s in the pipeline.
func (s Sector) Next() (Sector, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("sector",
			fmt.Errorf("%s is terminal and has no next sector", s))
	}
	return s + 1, nil
}

// ValidateCompleteFrom checks that an order currently in the given sector may
// have sector s completed. The rule is exact equality, with one exception:
// a Received order is queued for sorting, so completing Sorting is legal from
// Received. This rule is the idempotency guard: a sector can neither be
// completed twice nor out of order.
func (s Sector) ValidateCompleteFrom(current Sector) error {
	if !s.IsCompletable() {
		return errs.NewValueIsInvalidErrorWithCause("sector",
			fmt.Errorf("%s is not a completable sector", s))
	}
	if current == s || (s == Sorting && current == Received) {
		return nil
	}
	next, _ := s.Next()
	return errs.NewInvalidTransitionError("order", current.String(), next.String())
}
