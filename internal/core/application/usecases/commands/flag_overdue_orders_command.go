package commands

import (
	"errors"
	"time"

	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var ErrFlagOverdueOrdersCommandIsNotConstructed = errors.New(
	"FlagOverdueOrdersCommand must be created via NewFlagOverdueOrdersCommand constructor",
)

// FlagOverdueOrdersCommand represents one run of the overdue sweep: every
// active order whose promise deadline has passed gets an alert event on its
// ledger.
type FlagOverdueOrdersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewFlagOverdueOrdersCommand creates a sweep command anchored at the given
// instant. The caller supplies the clock value so runs are deterministic and
// testable.
func NewFlagOverdueOrdersCommand(now time.Time) (FlagOverdueOrdersCommand, error) {
	cmd := FlagOverdueOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNow(now); err != nil {
		return FlagOverdueOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FlagOverdueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrFlagOverdueOrdersCommandIsNotConstructed)
}

// Now returns the sweep's clock anchor.
func (c FlagOverdueOrdersCommand) Now() time.Time {
	return c.now
}

func (c *FlagOverdueOrdersCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	c.now = now
	return nil
}
