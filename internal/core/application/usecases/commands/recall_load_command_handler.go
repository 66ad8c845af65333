package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/ports"
)

// RecallLoadCommandHandler handles recall of a dispatched delivery run.
// The run returns to Planned and every constituent order to its pre-dispatch
// state, all in one transaction. An order that was force-dispatched mid-pick
// resumes in Picking and must finish its pick list before the next dispatch.
type RecallLoadCommandHandler struct {
	uowFactory LoadOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewRecallLoadCommandHandler creates a handler for run recall.
func NewRecallLoadCommandHandler(
	uowFactory LoadOrderUoWFactory,
	publisher ports.EventPublisher,
) RecallLoadCommandHandler {
	return RecallLoadCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the recall and returns the number of orders brought
// back. A run that is not in transit fails with NotDispatched.
func (h *RecallLoadCommandHandler) Handle(ctx context.Context, cmd RecallLoadCommand) (int, error) {
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

	loadRepo := uow.LoadRepository()
	orderRepo := uow.OrderRepository()

	run, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return 0, err
	}

	if err = run.Recall(); err != nil {
		return 0, err
	}

	orders, err := orderRepo.GetMany(ctx, run.OrderIDs())
	if err != nil {
		return 0, err
	}
	for _, ord := range orders {
		if err = ord.Recall(); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, ord); err != nil {
			return 0, err
		}
	}

	if err = loadRepo.Update(ctx, run); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	ids := make([]string, len(orders))
	for i, ord := range orders {
		ids[i] = ord.ID().String()
	}
	event := events.LoadRecalled{
		LoadID:     run.ID().String(),
		OrderIDs:   ids,
		OccurredAt: time.Now().UTC(),
	}
	if err = h.publisher.PublishLoadRecalled(ctx, event); err != nil {
		slog.Error("publish load recalled event", "loadID", event.LoadID, "error", err)
	}

	return len(orders), nil
}
