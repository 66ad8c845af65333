package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/picklist"
)

// RecordPickCommandHandler handles the single-batch picking path.
//
// The recorded quantity replaces the item's prior picks: earlier
// reservations are released back to the ledger first, then the new quantity
// is reserved from the given batch. Validate-then-commit holds across the
// whole exchange because everything happens inside one transaction; an
// InsufficientStock failure rolls the released picks back too.
type RecordPickCommandHandler struct {
	uowFactory PickingUoWFactory
}

// NewRecordPickCommandHandler creates a handler for single-batch picks.
func NewRecordPickCommandHandler(uowFactory PickingUoWFactory) RecordPickCommandHandler {
	return RecordPickCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pick: releases the item's prior reservations,
// reserves the new quantity, applies it and optionally settles the item as
// short.
func (h *RecordPickCommandHandler) Handle(ctx context.Context, cmd RecordPickCommand) error {
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

	listRepo := uow.PickListRepository()
	batchRepo := uow.BatchRepository()

	list, err := listRepo.GetByItem(ctx, cmd.PickItemID())
	if err != nil {
		return err
	}

	released, err := list.ReopenItem(cmd.PickItemID())
	if err != nil {
		return err
	}
	for _, pick := range released {
		if err = batchRepo.Release(ctx, pick.BatchID(), pick.Qty()); err != nil {
			return err
		}
	}

	if cmd.PickedQty() > 0 {
		if err = batchRepo.Reserve(ctx, cmd.BatchID(), cmd.PickedQty()); err != nil {
			return err
		}

		pick, err := picklist.NewBatchPick(cmd.BatchID(), cmd.PickedQty())
		if err != nil {
			return err
		}
		if err = list.ApplyItemPicks(cmd.PickItemID(), pick); err != nil {
			return err
		}
	}

	if cmd.MarkShort() {
		if err = list.MarkItemShort(cmd.PickItemID()); err != nil {
			return err
		}
	}

	if err = listRepo.Update(ctx, list); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
