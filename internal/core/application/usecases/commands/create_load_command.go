package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateLoadCommandIsNotConstructed = errors.New(
		"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
	)
	ErrCarrierIsRequired       = errors.New("carrier is required")
	ErrScheduledDateIsRequired = errors.New("scheduled date is required")
)

// CreateLoadCommand represents a dispatcher planning a new delivery run.
type CreateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID          kernel.UUID
	scheduledDate   time.Time
	carrier         string
	vehicleCapacity int

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand creates a command to plan a delivery run.
func NewCreateLoadCommand(
	loadID kernel.UUID,
	scheduledDate time.Time,
	carrier string,
	vehicleCapacity int,
) (CreateLoadCommand, error) {
	cmd := CreateLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setScheduledDate(scheduledDate),
		cmd.setCarrier(carrier),
		cmd.setVehicleCapacity(vehicleCapacity),
	); err != nil {
		return CreateLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

// LoadID returns the identifier for the new run.
func (c CreateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// ScheduledDate returns the calendar date of the run.
func (c CreateLoadCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

// Carrier returns the transport company or driver name.
func (c CreateLoadCommand) Carrier() string {
	return c.carrier
}

// VehicleCapacity returns the trolley capacity of the vehicle.
func (c CreateLoadCommand) VehicleCapacity() int {
	return c.vehicleCapacity
}

func (c *CreateLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *CreateLoadCommand) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return ErrScheduledDateIsRequired
	}

	c.scheduledDate = scheduledDate
	return nil
}

func (c *CreateLoadCommand) setCarrier(carrier string) error {
	carrier = strings.TrimSpace(carrier)
	if carrier == "" {
		return ErrCarrierIsRequired
	}

	c.carrier = carrier
	return nil
}

func (c *CreateLoadCommand) setVehicleCapacity(vehicleCapacity int) error {
	if vehicleCapacity <= 0 {
		return fmt.Errorf("vehicle capacity %d must be greater than 0", vehicleCapacity)
	}

	c.vehicleCapacity = vehicleCapacity
	return nil
}
