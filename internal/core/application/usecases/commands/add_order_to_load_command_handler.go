package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// AddOrderToLoadCommandHandler handles placing an order on a delivery run.
type AddOrderToLoadCommandHandler struct {
	uowFactory LoadOrderUoWFactory
}

// NewAddOrderToLoadCommandHandler creates a handler for loading orders.
func NewAddOrderToLoadCommandHandler(uowFactory LoadOrderUoWFactory) AddOrderToLoadCommandHandler {
	return AddOrderToLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends the order at the end of the run's unloading sequence with
// the order's trolley count. An order may sit on at most one non-completed
// run at a time; a second placement fails with OrderAlreadyLoaded naming the
// run that holds it.
func (h *AddOrderToLoadCommandHandler) Handle(ctx context.Context, cmd AddOrderToLoadCommand) error {
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

	loadRepo := uow.LoadRepository()

	holder, err := loadRepo.FindRunWithOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if holder != nil {
		return errs.NewOrderAlreadyLoadedError(cmd.OrderID().String(), holder.ID().String())
	}

	run, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = run.AddOrder(ord.ID(), ord.Trolleys()); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, run); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
