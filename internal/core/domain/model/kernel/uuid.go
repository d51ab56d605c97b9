package kernel

import (
	"fmt"

	"laundryops/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID that
// did not come from NewUUID, UUIDFromString or UUIDFromBytes.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identity value object used for orders, items, events, manifests,
// stops and all external references (unit, client, operator, route, recipe).
// It wraps github.com/google/uuid to keep the rest of the domain independent
// of the library type.
//
// UUID is immutable and safe for concurrent use. The zero value is invalid
// and fails Validate.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses a UUID from its canonical string form. Used when
// reconstructing entities from persistence or parsing identifiers supplied by
// collaborators.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice, as stored in the
// database. The nil UUID is rejected.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

// String returns the canonical textual form of the UUID.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying library UUID value, for DTO mapping.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero (nil) UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
