package commands

import (
	"context"
)

// RemoveOrderFromLoadCommandHandler handles taking an order off a delivery
// run.
type RemoveOrderFromLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewRemoveOrderFromLoadCommandHandler creates a handler for unloading
// orders.
func NewRemoveOrderFromLoadCommandHandler(uowFactory LoadUoWFactory) RemoveOrderFromLoadCommandHandler {
	return RemoveOrderFromLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the order and closes the sequence gap. Dispatched and
// completed runs reject the change with LoadActive.
func (h *RemoveOrderFromLoadCommandHandler) Handle(ctx context.Context, cmd RemoveOrderFromLoadCommand) error {
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

	repo := uow.LoadRepository()
	run, err := repo.Get(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	if err = run.RemoveOrder(cmd.OrderID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, run); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
