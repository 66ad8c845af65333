package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/load"
)

// CreateLoadCommandHandler handles planning of new delivery runs.
type CreateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewCreateLoadCommandHandler creates a handler for run planning.
func NewCreateLoadCommandHandler(uowFactory LoadUoWFactory) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the run in Planned status with no orders.
func (h *CreateLoadCommandHandler) Handle(ctx context.Context, cmd CreateLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	run, err := load.NewDeliveryRun(
		cmd.LoadID(), cmd.ScheduledDate(), cmd.Carrier(), cmd.VehicleCapacity())
	if err != nil {
		return err
	}

	if err = uow.LoadRepository().Add(ctx, run); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
