package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picklist"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// ConfirmCombinedPickCommandHandler handles confirmation of a combined pick.
//
// The confirmed quantity is validated against the group's remaining need
// before any ledger mutation. Allocation then draws from the location's
// batches oldest first; whatever the ledger could book is distributed over
// the constituent order lines by ascending pick list sequence, so a ledger
// shortfall shorts the newest orders.
type ConfirmCombinedPickCommandHandler struct {
	uowFactory PickingUoWFactory
	allocator  services.BatchAllocator
	combined   services.CombinedPicking
}

// NewConfirmCombinedPickCommandHandler creates a handler for combined pick
// confirmations.
func NewConfirmCombinedPickCommandHandler(uowFactory PickingUoWFactory) ConfirmCombinedPickCommandHandler {
	return ConfirmCombinedPickCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewBatchAllocator(),
		combined:   services.NewCombinedPicking(),
	}
}

// Handle processes the confirmation: pre-checks the group's remaining need,
// books the quantity on the ledger and distributes it over the open pick
// lists, all inside one transaction. A command carrying pick list IDs
// confines both the need check and the distribution to those lists.
func (h *ConfirmCombinedPickCommandHandler) Handle(ctx context.Context, cmd ConfirmCombinedPickCommand) error {
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

	lists, err := listRepo.GetAllOpen(ctx)
	if err != nil {
		return err
	}
	lists = scopeLists(lists, cmd.PickListIDs())

	remaining, err := h.groupRemaining(cmd, lists)
	if err != nil {
		return err
	}
	if cmd.Qty() > remaining {
		return errs.NewOverAllocationError(cmd.Qty(), remaining)
	}

	candidates, err := batchRepo.FindCandidates(ctx, cmd.VarietyID(), cmd.Size(), cmd.Location())
	if err != nil {
		return err
	}

	result, err := h.allocator.Allocate(ctx, cmd.Qty(), candidates, batchRepo)
	if err != nil {
		return err
	}
	if len(result.Picks) == 0 {
		return errs.NewInsufficientStockError(cmd.Location().String(), cmd.Qty(), 0)
	}

	distributed, err := h.combined.Distribute(
		lists, cmd.Location(), cmd.VarietyID(), cmd.Size(), result.Picks)
	if err != nil {
		return err
	}

	touched := make(map[string]bool, len(distributed))
	for _, dist := range distributed {
		if touched[dist.ListID.String()] {
			continue
		}
		touched[dist.ListID.String()] = true

		for _, list := range lists {
			if list.ID().IsEqual(dist.ListID) {
				if err = listRepo.Update(ctx, list); err != nil {
					return err
				}
				break
			}
		}
	}

	return uow.Commit(ctx)
}

// scopeLists narrows the open pick lists to the requested IDs. An empty ID
// set keeps them all.
func scopeLists(lists []*picklist.PickList, ids []kernel.UUID) []*picklist.PickList {
	if len(ids) == 0 {
		return lists
	}

	wanted := make(map[kernel.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	scoped := make([]*picklist.PickList, 0, len(ids))
	for _, list := range lists {
		if wanted[list.ID()] {
			scoped = append(scoped, list)
		}
	}
	return scoped
}

// groupRemaining computes how much the article group still needs across the
// open pick lists. An article nobody is waiting for has a remaining need of
// zero, which the caller rejects as over-allocation.
func (h *ConfirmCombinedPickCommandHandler) groupRemaining(
	cmd ConfirmCombinedPickCommand,
	lists []*picklist.PickList,
) (int, error) {
	lines, err := h.combined.Aggregate(lists)
	if err != nil {
		return 0, err
	}

	for _, line := range lines {
		if line.Location.IsEqual(cmd.Location()) &&
			line.VarietyID.IsEqual(cmd.VarietyID()) &&
			line.Size.IsEqual(cmd.Size()) {
			return line.RemainingQty, nil
		}
	}
	return 0, nil
}
