package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picklist"
	"fulfillment/internal/core/ports"
)

// CreatePickListCommandHandler handles the business logic for taking an
// order into fulfillment: it registers the order in Picking status and
// creates its pick list with a freshly drawn sequence number, all in one
// transaction.
type CreatePickListCommandHandler struct {
	uowFactory CreatePickListUoWFactory
}

// NewCreatePickListCommandHandler creates a handler for pick list creation.
func NewCreatePickListCommandHandler(uowFactory CreatePickListUoWFactory) CreatePickListCommandHandler {
	return CreatePickListCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pick list creation command.
// Draws the next pick list sequence number from the shared counter, creates
// the order and its pick list, and commits both together.
func (h *CreatePickListCommandHandler) Handle(ctx context.Context, cmd CreatePickListCommand) error {
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

	sequence, err := uow.SequenceAllocator().Next(ctx, ports.SequencePickList)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Trolleys())
	if err != nil {
		return err
	}

	items := make([]*picklist.PickItem, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		item, err := picklist.NewPickItem(
			kernel.NewUUID(), line.VarietyID, line.Size, line.Location, line.TargetQty)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	list, err := picklist.NewPickList(kernel.NewUUID(), newOrder.ID(), sequence, items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}
	if err = uow.PickListRepository().Add(ctx, list); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
