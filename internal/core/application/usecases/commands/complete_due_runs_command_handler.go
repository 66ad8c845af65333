package commands

import (
	"context"
)

// CompleteDueRunsCommandHandler closes out dispatched runs whose scheduled
// date has passed. Invoked periodically by the job scheduler.
type CompleteDueRunsCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewCompleteDueRunsCommandHandler creates a handler for the run completion
// sweep.
func NewCompleteDueRunsCommandHandler(uowFactory LoadUoWFactory) CompleteDueRunsCommandHandler {
	return CompleteDueRunsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves every in-transit run scheduled before the cutoff to
// Completed and returns how many runs were closed.
func (h *CompleteDueRunsCommandHandler) Handle(ctx context.Context, cmd CompleteDueRunsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LoadRepository()
	runs, err := repo.GetAllInTransitBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	for _, run := range runs {
		if err = run.Complete(); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, run); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(runs), nil
}
