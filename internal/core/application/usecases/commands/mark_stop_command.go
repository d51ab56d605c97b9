package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/manifest"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var ErrMarkStopCommandIsNotConstructed = errors.New(
	"MarkStopCommand must be created via NewMarkStopCommand constructor",
)

// MarkStopCommand represents a driver resolving one manifest stop as visited
// or skipped.
type MarkStopCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	stopID     kernel.UUID
	status     manifest.StopStatus

	guard guard.ConstructorGuard
}

// NewMarkStopCommand creates a stop resolution command. The target status
// must be a resolved one; pending is not a mark target.
func NewMarkStopCommand(manifestID, stopID kernel.UUID, status manifest.StopStatus) (MarkStopCommand, error) {
	cmd := MarkStopCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setStopID(stopID),
		cmd.setStatus(status),
	); err != nil {
		return MarkStopCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkStopCommand) Validate() error {
	return c.guard.Validate(ErrMarkStopCommandIsNotConstructed)
}

// ManifestID returns the manifest holding the stop.
func (c MarkStopCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// StopID returns the stop to resolve.
func (c MarkStopCommand) StopID() kernel.UUID {
	return c.stopID
}

// Status returns the resolution to record.
func (c MarkStopCommand) Status() manifest.StopStatus {
	return c.status
}

func (c *MarkStopCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}

func (c *MarkStopCommand) setStopID(stopID kernel.UUID) error {
	if err := stopID.Validate(); err != nil {
		return err
	}

	c.stopID = stopID
	return nil
}

func (c *MarkStopCommand) setStatus(status manifest.StopStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if !status.IsResolved() {
		return errs.NewValueIsInvalidError("stopStatus")
	}

	c.status = status
	return nil
}
