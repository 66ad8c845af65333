package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// DispatchLoadCommandHandler handles dispatch of a delivery run.
//
// Dispatch is all-or-nothing: the run's transition and every constituent
// order's transition commit together, so a failure on any order leaves the
// run and all orders untouched. The handler is idempotent: a run that is
// already in transit, or a run a concurrent dispatch just won (the run
// UPDATE is conditioned on the loaded version), reports zero orders without
// mutating or publishing anything.
type DispatchLoadCommandHandler struct {
	uowFactory LoadOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewDispatchLoadCommandHandler creates a handler for run dispatch.
func NewDispatchLoadCommandHandler(
	uowFactory LoadOrderUoWFactory,
	publisher ports.EventPublisher,
) DispatchLoadCommandHandler {
	return DispatchLoadCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the dispatch and returns the number of orders that left
// with the run; a re-sent dispatch of an in-transit run returns zero.
// Without force, a run carrying any order that is not Ready fails with
// NotReady listing the offending orders and persisting nothing.
func (h *DispatchLoadCommandHandler) Handle(ctx context.Context, cmd DispatchLoadCommand) (int, error) {
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

	performed, err := run.Dispatch(cmd.OverrideReason())
	if err != nil {
		return 0, err
	}
	if !performed {
		return 0, nil
	}

	orders, err := orderRepo.GetMany(ctx, run.OrderIDs())
	if err != nil {
		return 0, err
	}

	var notReady []string
	for _, ord := range orders {
		if !ord.IsReady() {
			notReady = append(notReady, ord.ID().String())
		}
	}
	if len(notReady) > 0 && !cmd.Force() {
		return 0, errs.NewNotReadyError(notReady)
	}

	for _, ord := range orders {
		if cmd.Force() {
			err = ord.ForceDispatch()
		} else {
			err = ord.Dispatch()
		}
		if err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, ord); err != nil {
			return 0, err
		}
	}

	if err = loadRepo.Update(ctx, run); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return 0, nil
		}
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	ids := make([]string, len(orders))
	for i, ord := range orders {
		ids[i] = ord.ID().String()
	}
	event := events.LoadDispatched{
		LoadID:         run.ID().String(),
		ScheduledDate:  run.ScheduledDate(),
		Carrier:        run.Carrier(),
		OrderIDs:       ids,
		OverrideReason: run.OverrideReason(),
		OccurredAt:     time.Now().UTC(),
	}
	if err = h.publisher.PublishLoadDispatched(ctx, event); err != nil {
		slog.Error("publish load dispatched event", "loadID", event.LoadID, "error", err)
	}

	return len(orders), nil
}
