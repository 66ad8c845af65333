package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/load"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatchLoadCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	first := newReadyOrder(t, 8)
	second := newReadyOrder(t, 6)
	run := newLoadedRun(t, 20, first, second)

	cmd, err := commands.NewDispatchLoadCommand(run.ID(), false, "")
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	orderRepo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		loadRepo.On("Get", ctx, run.ID()).Return(run, nil).Once(),
		orderRepo.On("GetMany", ctx, run.OrderIDs()).Return([]*order.Order{first, second}, nil).Once(),
		orderRepo.On("Update", ctx, first).Return(nil).Once(),
		orderRepo.On("Update", ctx, second).Return(nil).Once(),
		loadRepo.On("Update", ctx, run).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishLoadDispatched", ctx, mock.AnythingOfType("events.LoadDispatched")).
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchLoadCommandHandler(factory, publisher)
	count, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, load.InTransit, run.Status())
	assert.Equal(t, order.Dispatched, first.Status())
	assert.Equal(t, order.Dispatched, second.Status())

	published := publisher.Calls[0].Arguments.Get(1).(events.LoadDispatched)
	assert.Equal(t, run.ID().String(), published.LoadID)
	assert.Equal(t, "Van Veen Transport", published.Carrier)
	assert.Len(t, published.OrderIDs, 2)
	assert.Empty(t, published.OverrideReason)
	uow.AssertExpectations(t)
}

func TestDispatchLoadCommandHandler_Handle_NotReady(t *testing.T) {
	ctx := t.Context()
	ready := newReadyOrder(t, 8)
	unfinished := newPickingOrder(t, 6)
	run := newLoadedRun(t, 20, ready, unfinished)

	cmd, err := commands.NewDispatchLoadCommand(run.ID(), false, "")
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	orderRepo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		loadRepo.On("Get", ctx, run.ID()).Return(run, nil).Once(),
		orderRepo.On("GetMany", ctx, run.OrderIDs()).Return([]*order.Order{ready, unfinished}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchLoadCommandHandler(factory, publisher)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotReady)
	var notReady *errs.NotReadyError
	require.ErrorAs(t, err, &notReady)
	assert.Equal(t, []string{unfinished.ID().String()}, notReady.OrderIDs)
	assert.Equal(t, order.Ready, ready.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	publisher.AssertNotCalled(t, "PublishLoadDispatched", mock.Anything, mock.Anything)
}

func TestDispatchLoadCommandHandler_Handle_ForceDispatchesUnfinishedOrders(t *testing.T) {
	ctx := t.Context()
	unfinished := newPickingOrder(t, 6)
	run := newLoadedRun(t, 20, unfinished)

	cmd, err := commands.NewDispatchLoadCommand(run.ID(), true, "customer needs partial delivery today")
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	orderRepo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LoadRepository").Return(loadRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	loadRepo.On("Get", ctx, run.ID()).Return(run, nil).Once()
	orderRepo.On("GetMany", ctx, run.OrderIDs()).Return([]*order.Order{unfinished}, nil).Once()
	orderRepo.On("Update", ctx, unfinished).Return(nil).Once()
	loadRepo.On("Update", ctx, run).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("PublishLoadDispatched", ctx, mock.AnythingOfType("events.LoadDispatched")).
		Return(nil).Once()

	factory := new(MockLoadOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchLoadCommandHandler(factory, publisher)
	count, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, order.Dispatched, unfinished.Status())
	assert.Equal(t, "customer needs partial delivery today", run.OverrideReason())

	published := publisher.Calls[0].Arguments.Get(1).(events.LoadDispatched)
	assert.Equal(t, "customer needs partial delivery today", published.OverrideReason)
}

func TestDispatchLoadCommandHandler_Handle_OrderUpdateFailureAbortsAll(t *testing.T) {
	ctx := t.Context()
	first := newReadyOrder(t, 8)
	second := newReadyOrder(t, 6)
	run := newLoadedRun(t, 20, first, second)

	cmd, err := commands.NewDispatchLoadCommand(run.ID(), false, "")
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	orderRepo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LoadRepository").Return(loadRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	loadRepo.On("Get", ctx, run.ID()).Return(run, nil).Once()
	orderRepo.On("GetMany", ctx, run.OrderIDs()).Return([]*order.Order{first, second}, nil).Once()
	orderRepo.On("Update", ctx, first).Return(nil).Once()
	orderRepo.On("Update", ctx, second).Return(assert.AnError).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLoadOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchLoadCommandHandler(factory, publisher)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, assert.AnError)
	loadRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	publisher.AssertNotCalled(t, "PublishLoadDispatched", mock.Anything, mock.Anything)
}

func TestDispatchLoadCommandHandler_Handle_RepeatDispatchIsNoOp(t *testing.T) {
	ctx := t.Context()
	ord := newReadyOrder(t, 8)
	run := newLoadedRun(t, 20, ord)
	_, err := run.Dispatch("forced past shortfall")
	require.NoError(t, err)
	require.NoError(t, ord.Dispatch())

	cmd, err := commands.NewDispatchLoadCommand(run.ID(), false, "")
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	orderRepo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LoadRepository").Return(loadRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	loadRepo.On("Get", ctx, run.ID()).Return(run, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLoadOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchLoadCommandHandler(factory, publisher)
	count, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, load.InTransit, run.Status())
	assert.Equal(t, "forced past shortfall", run.OverrideReason())
	orderRepo.AssertNotCalled(t, "GetMany", mock.Anything, mock.Anything)
	loadRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	publisher.AssertNotCalled(t, "PublishLoadDispatched", mock.Anything, mock.Anything)
}

func TestDispatchLoadCommandHandler_Handle_ConcurrentDispatchLoserStaysQuiet(t *testing.T) {
	ctx := t.Context()
	ord := newReadyOrder(t, 8)
	run := newLoadedRun(t, 20, ord)

	cmd, err := commands.NewDispatchLoadCommand(run.ID(), false, "")
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	orderRepo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LoadRepository").Return(loadRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	loadRepo.On("Get", ctx, run.ID()).Return(run, nil).Once()
	orderRepo.On("GetMany", ctx, run.OrderIDs()).Return([]*order.Order{ord}, nil).Once()
	orderRepo.On("Update", ctx, ord).Return(nil).Once()
	loadRepo.On("Update", ctx, run).
		Return(errs.NewVersionIsInvalidErrorWithCause("load", assert.AnError)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLoadOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchLoadCommandHandler(factory, publisher)
	count, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	uow.AssertNotCalled(t, "Commit", ctx)
	publisher.AssertNotCalled(t, "PublishLoadDispatched", mock.Anything, mock.Anything)
}

func TestNewDispatchLoadCommand_ForceRequiresOverrideReason(t *testing.T) {
	run := newPlannedRun(t, 20)

	_, err := commands.NewDispatchLoadCommand(run.ID(), true, "  ")

	require.ErrorIs(t, err, commands.ErrOverrideReasonIsRequired)
}
