package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/picklist"
	"fulfillment/internal/pkg/errs"
)

// ReplaceItemBatchesCommandHandler handles atomic replacement of a pick
// item's batch allocations.
type ReplaceItemBatchesCommandHandler struct {
	uowFactory PickingUoWFactory
}

// NewReplaceItemBatchesCommandHandler creates a handler for batch
// replacement.
func NewReplaceItemBatchesCommandHandler(uowFactory PickingUoWFactory) ReplaceItemBatchesCommandHandler {
	return ReplaceItemBatchesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the replacement. The total replacement quantity is
// checked against the item's target before any ledger mutation; only then
// are the old reservations released and the new set reserved, all inside one
// transaction.
func (h *ReplaceItemBatchesCommandHandler) Handle(ctx context.Context, cmd ReplaceItemBatchesCommand) error {
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

	item, err := list.Item(cmd.PickItemID())
	if err != nil {
		return err
	}
	if cmd.TotalQty() > item.TargetQty() {
		return errs.NewOverAllocationError(cmd.TotalQty(), item.TargetQty())
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

	picks := make([]picklist.BatchPick, 0, len(cmd.Entries()))
	for _, entry := range cmd.Entries() {
		if err = batchRepo.Reserve(ctx, entry.BatchID, entry.Qty); err != nil {
			return err
		}

		pick, err := picklist.NewBatchPick(entry.BatchID, entry.Qty)
		if err != nil {
			return err
		}
		picks = append(picks, pick)
	}

	if err = list.ApplyItemPicks(cmd.PickItemID(), picks...); err != nil {
		return err
	}

	if err = listRepo.Update(ctx, list); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
