package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/ports"
)

// CompletePickListCommandHandler handles the finish action on a pick list.
//
// Completion is atomic and idempotent: the list's transition and the order's
// move to Ready commit together, and re-invoking finish on an already
// completed list is a no-op success so client retries are safe. The
// PickListCompleted event is published only when this invocation performed
// the transition, and only after the transaction committed.
type CompletePickListCommandHandler struct {
	uowFactory CompletePickListUoWFactory
	publisher  ports.EventPublisher
}

// NewCompletePickListCommandHandler creates a handler for pick list
// completion.
func NewCompletePickListCommandHandler(
	uowFactory CompletePickListUoWFactory,
	publisher ports.EventPublisher,
) CompletePickListCommandHandler {
	return CompletePickListCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the finish action: verifies no item remains pending,
// records the trolley metadata, marks the order ready for loading and emits
// the completion event.
func (h *CompletePickListCommandHandler) Handle(ctx context.Context, cmd CompletePickListCommand) error {
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
	list, err := listRepo.Get(ctx, cmd.PickListID())
	if err != nil {
		return err
	}

	changed, err := list.Complete(cmd.Trolleys(), cmd.Note())
	if err != nil {
		return err
	}
	if !changed {
		return uow.Commit(ctx)
	}

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, list.OrderID())
	if err != nil {
		return err
	}
	if err = ord.MarkReady(); err != nil {
		return err
	}

	if err = listRepo.Update(ctx, list); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := events.PickListCompleted{
		PickListID: list.ID().String(),
		OrderID:    list.OrderID().String(),
		Sequence:   list.Sequence(),
		Trolleys:   list.Trolleys(),
		OccurredAt: time.Now().UTC(),
	}
	if err = h.publisher.PublishPickListCompleted(ctx, event); err != nil {
		slog.Error("publish pick list completed event", "pickListID", event.PickListID, "error", err)
	}

	return nil
}
