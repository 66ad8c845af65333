package commands

import (
	"context"
)

// MarkItemShortCommandHandler handles a worker's short confirmation on a
// pick item.
type MarkItemShortCommandHandler struct {
	uowFactory PickListUoWFactory
}

// NewMarkItemShortCommandHandler creates a handler for short confirmations.
func NewMarkItemShortCommandHandler(uowFactory PickListUoWFactory) MarkItemShortCommandHandler {
	return MarkItemShortCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle settles the item as short. The domain rejects the confirmation when
// the item is already fully picked or already settled.
func (h *MarkItemShortCommandHandler) Handle(ctx context.Context, cmd MarkItemShortCommand) error {
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
	list, err := repo.GetByItem(ctx, cmd.PickItemID())
	if err != nil {
		return err
	}

	if err = list.MarkItemShort(cmd.PickItemID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, list); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
