package commands

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var ErrGenerateManifestCommandIsNotConstructed = errors.New(
	"GenerateManifestCommand must be created via NewGenerateManifestCommand constructor",
)

// GenerateManifestCommand represents a request to instantiate a route's
// manifest for one calendar date. Generation is idempotent: re-running it for
// the same route and date only fills in stops that appeared on the route
// template since the first run.
type GenerateManifestCommand struct { //nolint:recvcheck //using for validation
	unitID  kernel.UUID
	routeID kernel.UUID
	date    time.Time

	guard guard.ConstructorGuard
}

// NewGenerateManifestCommand creates a manifest generation command.
func NewGenerateManifestCommand(unitID, routeID kernel.UUID, date time.Time) (GenerateManifestCommand, error) {
	cmd := GenerateManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUnitID(unitID),
		cmd.setRouteID(routeID),
		cmd.setDate(date),
	); err != nil {
		return GenerateManifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateManifestCommand) Validate() error {
	return c.guard.Validate(ErrGenerateManifestCommandIsNotConstructed)
}

// UnitID returns the unit owning the route.
func (c GenerateManifestCommand) UnitID() kernel.UUID {
	return c.unitID
}

// RouteID returns the route to instantiate.
func (c GenerateManifestCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Date returns the manifest date.
func (c GenerateManifestCommand) Date() time.Time {
	return c.date
}

func (c *GenerateManifestCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}

	c.unitID = unitID
	return nil
}

func (c *GenerateManifestCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *GenerateManifestCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	c.date = date
	return nil
}
