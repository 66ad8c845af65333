package commands

import (
	"context"
)

// ResequenceLoadCommandHandler handles reordering of a run's unloading
// sequence.
type ResequenceLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewResequenceLoadCommandHandler creates a handler for run reordering.
func NewResequenceLoadCommandHandler(uowFactory LoadUoWFactory) ResequenceLoadCommandHandler {
	return ResequenceLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the new unloading order to the run.
func (h *ResequenceLoadCommandHandler) Handle(ctx context.Context, cmd ResequenceLoadCommand) error {
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

	if err = run.Resequence(cmd.OrderIDs()); err != nil {
		return err
	}

	if err = repo.Update(ctx, run); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
