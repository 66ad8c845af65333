package commands

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrCompleteDueRunsCommandIsNotConstructed = errors.New(
		"CompleteDueRunsCommand must be created via NewCompleteDueRunsCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff is required")
)

// CompleteDueRunsCommand represents the housekeeping sweep that closes out
// dispatched runs whose scheduled date has passed.
type CompleteDueRunsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCompleteDueRunsCommand creates a command to close out every in-transit
// run scheduled before the cutoff.
func NewCompleteDueRunsCommand(cutoff time.Time) (CompleteDueRunsCommand, error) {
	cmd := CompleteDueRunsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCutoff(cutoff); err != nil {
		return CompleteDueRunsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDueRunsCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDueRunsCommandIsNotConstructed)
}

// Cutoff returns the date before which in-transit runs are closed out.
func (c CompleteDueRunsCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *CompleteDueRunsCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
