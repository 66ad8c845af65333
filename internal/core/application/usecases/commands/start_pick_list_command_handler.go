package commands

import (
	"context"
)

// StartPickListCommandHandler handles a worker claiming a pick list.
type StartPickListCommandHandler struct {
	uowFactory PickListUoWFactory
}

// NewStartPickListCommandHandler creates a handler for pick list claims.
func NewStartPickListCommandHandler(uowFactory PickListUoWFactory) StartPickListCommandHandler {
	return StartPickListCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim: the list moves to InProgress and the first
// claimer is recorded. Claiming an already claimed list is a no-op success.
func (h *StartPickListCommandHandler) Handle(ctx context.Context, cmd StartPickListCommand) error {
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

	repo := uow.PickListRepository()
	list, err := repo.Get(ctx, cmd.PickListID())
	if err != nil {
		return err
	}

	if err = list.Start(cmd.Assignee()); err != nil {
		return err
	}

	if err = repo.Update(ctx, list); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
