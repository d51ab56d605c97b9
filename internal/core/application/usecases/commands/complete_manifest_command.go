package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrCompleteManifestCommandIsNotConstructed = errors.New(
	"CompleteManifestCommand must be created via NewCompleteManifestCommand constructor",
)

// CompleteManifestCommand represents a driver closing a manifest at the end
// of the run.
type CompleteManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteManifestCommand creates a manifest completion command.
func NewCompleteManifestCommand(manifestID kernel.UUID) (CompleteManifestCommand, error) {
	cmd := CompleteManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setManifestID(manifestID); err != nil {
		return CompleteManifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteManifestCommand) Validate() error {
	return c.guard.Validate(ErrCompleteManifestCommandIsNotConstructed)
}

// ManifestID returns the manifest to close.
func (c CompleteManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

func (c *CompleteManifestCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}
