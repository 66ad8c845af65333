package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompletePickListCommandIsNotConstructed = errors.New(
	"CompletePickListCommand must be created via NewCompletePickListCommand constructor",
)

// CompletePickListCommand represents the finish action on a pick list:
// the worker confirms every item is settled and records how many trolleys
// the picked stock occupies.
type CompletePickListCommand struct { //nolint:recvcheck //using for validation
	pickListID kernel.UUID
	trolleys   int
	note       string

	guard guard.ConstructorGuard
}

// NewCompletePickListCommand creates a command to finish a pick list.
// The trolley count may be zero when the metadata is unknown; the note is
// free-form loading information.
func NewCompletePickListCommand(pickListID kernel.UUID, trolleys int, note string) (CompletePickListCommand, error) {
	cmd := CompletePickListCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPickListID(pickListID),
		cmd.setTrolleys(trolleys),
	); err != nil {
		return CompletePickListCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePickListCommand) Validate() error {
	return c.guard.Validate(ErrCompletePickListCommandIsNotConstructed)
}

// PickListID returns the identifier of the pick list being finished.
func (c CompletePickListCommand) PickListID() kernel.UUID {
	return c.pickListID
}

// Trolleys returns the trolley count recorded at completion.
func (c CompletePickListCommand) Trolleys() int {
	return c.trolleys
}

// Note returns the free-form loading metadata.
func (c CompletePickListCommand) Note() string {
	return c.note
}

func (c *CompletePickListCommand) setPickListID(pickListID kernel.UUID) error {
	if err := pickListID.Validate(); err != nil {
		return err
	}

	c.pickListID = pickListID
	return nil
}

func (c *CompletePickListCommand) setTrolleys(trolleys int) error {
	if trolleys < 0 {
		return fmt.Errorf("trolleys %d must not be negative", trolleys)
	}

	c.trolleys = trolleys
	return nil
}
