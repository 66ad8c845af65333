package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrDispatchLoadCommandIsNotConstructed = errors.New(
		"DispatchLoadCommand must be created via NewDispatchLoadCommand constructor",
	)
	ErrOverrideReasonIsRequired = errors.New("override reason is required when forcing a dispatch")
)

// DispatchLoadCommand represents a dispatcher sending a delivery run on its
// way. With force set, readiness checks are overridden and the reason is
// recorded on the run for audit.
type DispatchLoadCommand struct { //nolint:recvcheck //using for validation
	loadID         kernel.UUID
	force          bool
	overrideReason string

	guard guard.ConstructorGuard
}

// NewDispatchLoadCommand creates a command to dispatch a run. A forced
// dispatch must carry a non-empty override reason.
func NewDispatchLoadCommand(loadID kernel.UUID, force bool, overrideReason string) (DispatchLoadCommand, error) {
	cmd := DispatchLoadCommand{
		force: force,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setOverrideReason(overrideReason, force),
	); err != nil {
		return DispatchLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchLoadCommand) Validate() error {
	return c.guard.Validate(ErrDispatchLoadCommandIsNotConstructed)
}

// LoadID returns the identifier of the run being dispatched.
func (c DispatchLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Force reports whether readiness checks are overridden.
func (c DispatchLoadCommand) Force() bool {
	return c.force
}

// OverrideReason returns the recorded reason for a forced dispatch, or an
// empty string for a normal one.
func (c DispatchLoadCommand) OverrideReason() string {
	return c.overrideReason
}

func (c *DispatchLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *DispatchLoadCommand) setOverrideReason(overrideReason string, force bool) error {
	overrideReason = strings.TrimSpace(overrideReason)
	if force && overrideReason == "" {
		return ErrOverrideReasonIsRequired
	}
	if !force {
		overrideReason = ""
	}

	c.overrideReason = overrideReason
	return nil
}
