package order

import (
	"encoding/json"
	"fmt"

	"laundryops/internal/pkg/errs"
)

// TemperatureLevel is the drying temperature recorded when the drying sector
// completes.
type TemperatureLevel int

const (
	TemperatureUnknown TemperatureLevel = iota
	TemperatureLow
	TemperatureMedium
	TemperatureHigh
)

func getTemperatureLevelStrings() map[TemperatureLevel]string {
	return map[TemperatureLevel]string{
		TemperatureUnknown: "unknown",
		TemperatureLow:     "low",
		TemperatureMedium:  "medium",
		TemperatureHigh:    "high",
	}
}

// String returns the lower-case level name.
func (t TemperatureLevel) String() string {
	if str, ok := getTemperatureLevelStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// TemperatureLevelFromString parses a temperature level name.
func TemperatureLevelFromString(name string) (TemperatureLevel, error) {
	for level, str := range getTemperatureLevelStrings() {
		if level != TemperatureUnknown && str == name {
			return level, nil
		}
	}
	return TemperatureUnknown, errs.NewValueIsInvalidErrorWithCause("temperatureLevel",
		fmt.Errorf("%q is not a valid temperature level", name))
}

// Validate rejects TemperatureUnknown and out-of-range values.
func (t TemperatureLevel) Validate() error {
	if t < TemperatureLow || t > TemperatureHigh {
		return errs.NewValueIsInvalidErrorWithCause("temperatureLevel",
			fmt.Errorf("%d is not a valid temperature level", t))
	}
	return nil
}

// MarshalText encodes the level as its name for event payload snapshots.
func (t TemperatureLevel) MarshalText() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a level from its name.
func (t *TemperatureLevel) UnmarshalText(text []byte) error {
	parsed, err := TemperatureLevelFromString(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// CompletionPayload is the tagged union of per-sector completion inputs. Each
// variant names the sector it completes and validates its own required
// fields; the aggregate checks both before any state mutation. The payload is
// serialized into the exit and entry events written by the transition, so the
// ledger records what was captured on the production floor.
type CompletionPayload interface {
	// CompletedSector returns the sector this payload completes.
	CompletedSector() Sector

	// Validate checks the sector-specific required fields.
	Validate() error
}

// SortingCompletion completes the sorting sector. It carries no fields:
// per-item recipe assignment happens separately before sorting completes.
type SortingCompletion struct{}

func (SortingCompletion) CompletedSector() Sector { return Sorting }

func (SortingCompletion) Validate() error { return nil }

// WashingCompletion completes the washing sector.
type WashingCompletion struct {
	// Cycles is the number of wash cycles run, at least one.
	Cycles int `json:"cycles"`

	// WeightKg is the measured load weight, when the unit weighs loads.
	WeightKg *float64 `json:"weightKg,omitempty"`
}

func (WashingCompletion) CompletedSector() Sector { return Washing }

func (c WashingCompletion) Validate() error {
	if c.Cycles < 1 {
		return errs.NewValueIsOutOfRangeError("cycles", c.Cycles, 1, 99)
	}
	if c.WeightKg != nil && *c.WeightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%v is not greater than 0", *c.WeightKg))
	}
	return nil
}

// DryingCompletion completes the drying sector.
type DryingCompletion struct {
	// Temperature is the drying temperature level used.
	Temperature TemperatureLevel `json:"temperatureLevel"`
}

func (DryingCompletion) CompletedSector() Sector { return Drying }

func (c DryingCompletion) Validate() error {
	return c.Temperature.Validate()
}

// IroningCompletion completes the ironing sector with the resolved per-piece-
// type tally of pressed pieces.
type IroningCompletion struct {
	Tally map[PieceType]int `json:"tally"`
}

func (IroningCompletion) CompletedSector() Sector { return Ironing }

func (c IroningCompletion) Validate() error {
	if len(c.Tally) == 0 {
		return errs.NewValueIsRequiredError("tally")
	}
	for pieceType, count := range c.Tally {
		if err := pieceType.Validate(); err != nil {
			return err
		}
		if count < 1 {
			return errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("tally[%s]", pieceType), count, 1, 9999)
		}
	}
	return nil
}

// ShippingCompletion completes the ready sector: the order is packed and
// leaves the unit.
type ShippingCompletion struct {
	PackagingType     string `json:"packagingType"`
	PackagingQuantity int    `json:"packagingQuantity"`
}

func (ShippingCompletion) CompletedSector() Sector { return Ready }

func (c ShippingCompletion) Validate() error {
	if c.PackagingType == "" {
		return errs.NewValueIsRequiredError("packagingType")
	}
	if c.PackagingQuantity < 1 {
		return errs.NewValueIsOutOfRangeError("packagingQuantity", c.PackagingQuantity, 1, 9999)
	}
	return nil
}

// DeliveryCompletion completes the shipped sector when the order reaches the
// client.
type DeliveryCompletion struct {
	// ReceivedBy optionally names who accepted the delivery.
	ReceivedBy string `json:"receivedBy,omitempty"`
}

func (DeliveryCompletion) CompletedSector() Sector { return Shipped }

func (DeliveryCompletion) Validate() error { return nil }

// marshalPayload snapshots a completion payload for the event ledger.
func marshalPayload(payload CompletionPayload) (json.RawMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	return raw, nil
}
