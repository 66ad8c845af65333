package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrStartPickListCommandIsNotConstructed = errors.New(
		"StartPickListCommand must be created via NewStartPickListCommand constructor",
	)
	ErrAssigneeIsRequired = errors.New("assignee is required")
)

// StartPickListCommand represents a worker claiming a pick list to begin
// gathering its items.
type StartPickListCommand struct { //nolint:recvcheck //using for validation
	pickListID kernel.UUID
	assignee   string

	guard guard.ConstructorGuard
}

// NewStartPickListCommand creates a command to claim a pick list.
func NewStartPickListCommand(pickListID kernel.UUID, assignee string) (StartPickListCommand, error) {
	cmd := StartPickListCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPickListID(pickListID),
		cmd.setAssignee(assignee),
	); err != nil {
		return StartPickListCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPickListCommand) Validate() error {
	return c.guard.Validate(ErrStartPickListCommandIsNotConstructed)
}

// PickListID returns the identifier of the pick list to claim.
func (c StartPickListCommand) PickListID() kernel.UUID {
	return c.pickListID
}

// Assignee returns the worker or team claiming the list.
func (c StartPickListCommand) Assignee() string {
	return c.assignee
}

func (c *StartPickListCommand) setPickListID(pickListID kernel.UUID) error {
	if err := pickListID.Validate(); err != nil {
		return err
	}

	c.pickListID = pickListID
	return nil
}

func (c *StartPickListCommand) setAssignee(assignee string) error {
	assignee = strings.TrimSpace(assignee)
	if assignee == "" {
		return ErrAssigneeIsRequired
	}

	c.assignee = assignee
	return nil
}
