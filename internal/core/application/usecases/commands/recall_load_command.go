package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRecallLoadCommandIsNotConstructed = errors.New(
	"RecallLoadCommand must be created via NewRecallLoadCommand constructor",
)

// RecallLoadCommand represents calling a dispatched delivery run back.
type RecallLoadCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecallLoadCommand creates a command to recall a dispatched run.
func NewRecallLoadCommand(loadID kernel.UUID) (RecallLoadCommand, error) {
	cmd := RecallLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLoadID(loadID); err != nil {
		return RecallLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecallLoadCommand) Validate() error {
	return c.guard.Validate(ErrRecallLoadCommandIsNotConstructed)
}

// LoadID returns the identifier of the run being recalled.
func (c RecallLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c *RecallLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}
