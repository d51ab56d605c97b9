package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Each typed error in this package unwraps to exactly one of
// these, so callers classify failures with errors.Is without inspecting the
// concrete type.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("conflict")
)

// sanitize strips line breaks from interpolated values so a single error
// message never spans multiple log lines.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError reports that a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given
// parameter name and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the named
// parameter with the offending value and its bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named
// parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError reports an invalid aggregate or schema version.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an
// underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without a
// cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// InvalidTransitionError reports a state-machine operation attempted from an
// illegal current state, e.g. completing a sector the order is not in.
type InvalidTransitionError struct {
	ParamName string
	From      string
	To        string
	Cause     error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the named
// entity and the attempted transition.
func NewInvalidTransitionError(paramName, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{ParamName: paramName, From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError
// wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(paramName, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{ParamName: paramName, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s (cause: %s)",
			ErrInvalidTransition, e.ParamName, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s",
		ErrInvalidTransition, e.ParamName, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ConflictError reports a lost optimistic-concurrency race: the entity was
// modified between read and conditional write. Callers may retry with fresh
// state; this package never retries.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError for the named entity and
// identifier.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying
// cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %s was modified concurrently (cause: %s)",
			ErrConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s was modified concurrently", ErrConflict, e.ParamName, e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
