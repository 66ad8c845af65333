package commands

import (
	"context"
)

// DeleteLoadCommandHandler handles removal of delivery runs.
type DeleteLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewDeleteLoadCommandHandler creates a handler for run deletion.
func NewDeleteLoadCommandHandler(uowFactory LoadUoWFactory) DeleteLoadCommandHandler {
	return DeleteLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the run. A run still carrying orders fails with
// LoadNotEmpty; a dispatched or completed run fails with LoadActive.
func (h *DeleteLoadCommandHandler) Handle(ctx context.Context, cmd DeleteLoadCommand) error {
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

	if err = run.EnsureDeletable(); err != nil {
		return err
	}

	if err = repo.Delete(ctx, run.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
