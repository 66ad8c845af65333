package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreatePickListCommandIsNotConstructed = errors.New(
		"CreatePickListCommand must be created via NewCreatePickListCommand constructor",
	)
	ErrPickLinesAreRequired = errors.New("at least one pick line is required")
)

// PickLine is one order line in a pick list creation request: which article,
// where it stands and how many units to gather.
type PickLine struct {
	VarietyID kernel.UUID
	Size      kernel.SizeCode
	Location  kernel.LocationCode
	TargetQty int
}

func (l PickLine) validate() error {
	if err := l.VarietyID.Validate(); err != nil {
		return err
	}
	if err := l.Size.Validate(); err != nil {
		return err
	}
	if err := l.Location.Validate(); err != nil {
		return err
	}
	if l.TargetQty <= 0 {
		return fmt.Errorf("target quantity %d must be greater than 0", l.TargetQty)
	}
	return nil
}

// CreatePickListCommand represents a request to take an order into the
// fulfillment stage: it creates the order record and its pick list with one
// item per line.
type CreatePickListCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	trolleys int
	lines    []PickLine

	guard guard.ConstructorGuard
}

// NewCreatePickListCommand creates a command to start fulfillment of an
// order. Validates that the order ID is valid, the estimated trolley count
// is positive and at least one line is present.
func NewCreatePickListCommand(orderID kernel.UUID, trolleys int, lines []PickLine) (CreatePickListCommand, error) {
	cmd := CreatePickListCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTrolleys(trolleys),
		cmd.setLines(lines),
	); err != nil {
		return CreatePickListCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePickListCommand) Validate() error {
	return c.guard.Validate(ErrCreatePickListCommandIsNotConstructed)
}

// OrderID returns the identifier of the order entering fulfillment.
func (c CreatePickListCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Trolleys returns the estimated trolley count for the order.
func (c CreatePickListCommand) Trolleys() int {
	return c.trolleys
}

// Lines returns the order lines to pick.
func (c CreatePickListCommand) Lines() []PickLine {
	lines := make([]PickLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreatePickListCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreatePickListCommand) setTrolleys(trolleys int) error {
	if trolleys <= 0 {
		return fmt.Errorf("trolleys %d must be greater than 0", trolleys)
	}

	c.trolleys = trolleys
	return nil
}

func (c *CreatePickListCommand) setLines(lines []PickLine) error {
	if len(lines) == 0 {
		return ErrPickLinesAreRequired
	}
	for _, line := range lines {
		if err := line.validate(); err != nil {
			return err
		}
	}

	c.lines = make([]PickLine, len(lines))
	copy(c.lines, lines)
	return nil
}
