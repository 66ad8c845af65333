package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testReceipt(t *testing.T, qty int) commands.BatchReceipt {
	t.Helper()

	return commands.BatchReceipt{
		VarietyID:  kernel.NewUUID(),
		Size:       testSize(t),
		Location:   testLocation(t),
		Qty:        qty,
		ReceivedAt: time.Date(2026, time.February, 2, 8, 0, 0, 0, time.UTC),
	}
}

func TestCheckInBatchesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	receipts := []commands.BatchReceipt{testReceipt(t, 250), testReceipt(t, 80)}

	cmd, err := commands.NewCheckInBatchesCommand(receipts)
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	sequences := new(MockSequenceAllocator)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("SequenceAllocator").Return(sequences).Twice()
	uow.On("BatchRepository").Return(batchRepo).Twice()
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()
	sequences.On("Next", ctx, ports.SequenceBatchNumber).Return(101, nil).Once()
	sequences.On("Next", ctx, ports.SequenceBatchNumber).Return(102, nil).Once()
	batchRepo.On("Add", ctx, mock.AnythingOfType("*batch.InventoryBatch")).Return(nil).Twice()

	factory := new(MockCheckInUoWFactory)
	factory.On("Create").Return(uow).Twice()

	handler := commands.NewCheckInBatchesCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded())
	require.NotNil(t, result.CheckedIn[0])
	require.NotNil(t, result.CheckedIn[1])
	assert.Equal(t, 101, result.CheckedIn[0].BatchNumber())
	assert.Equal(t, 102, result.CheckedIn[1].BatchNumber())
	assert.Equal(t, 250, result.CheckedIn[0].AvailableQty())
	uow.AssertExpectations(t)
}

func TestCheckInBatchesCommandHandler_Handle_PartialFailure(t *testing.T) {
	ctx := t.Context()
	bad := testReceipt(t, 0) // zero quantity fails receipt validation
	good := testReceipt(t, 40)

	cmd, err := commands.NewCheckInBatchesCommand([]commands.BatchReceipt{bad, good})
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	sequences := new(MockSequenceAllocator)
	uow := new(MockUoW)

	// Only the valid receipt reaches a transaction: each receipt runs in
	// its own unit of work, so the failed one cannot poison its sibling.
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SequenceAllocator").Return(sequences).Once()
	uow.On("BatchRepository").Return(batchRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	sequences.On("Next", ctx, ports.SequenceBatchNumber).Return(103, nil).Once()

	var created *batch.InventoryBatch
	batchRepo.On("Add", ctx, mock.AnythingOfType("*batch.InventoryBatch")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*batch.InventoryBatch)
		}).
		Return(nil).Once()

	factory := new(MockCheckInUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckInBatchesCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded())
	assert.Nil(t, result.CheckedIn[0])
	require.Error(t, result.Errors[0])
	assert.NoError(t, result.Errors[1])
	require.NotNil(t, created)
	assert.Equal(t, 40, created.AvailableQty())
	uow.AssertExpectations(t)
}

func TestCheckInBatchesCommandHandler_Handle_AllFailed(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCheckInBatchesCommand([]commands.BatchReceipt{testReceipt(t, 0)})
	require.NoError(t, err)

	factory := new(MockCheckInUoWFactory)

	handler := commands.NewCheckInBatchesCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAllReceiptsFailed)
	assert.Equal(t, 0, result.Succeeded())
	factory.AssertNotCalled(t, "Create")
}

func TestNewCheckInBatchesCommand_RequiresReceipts(t *testing.T) {
	_, err := commands.NewCheckInBatchesCommand(nil)

	require.Error(t, err)
}
