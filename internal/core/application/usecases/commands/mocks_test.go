package commands_test

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/load"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picklist"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, aggregate *batch.InventoryBatch) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.InventoryBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.InventoryBatch), args.Error(1)
}

func (m *MockBatchRepository) FindCandidates(
	ctx context.Context,
	varietyID kernel.UUID,
	size kernel.SizeCode,
	location kernel.LocationCode,
) ([]*batch.InventoryBatch, error) {
	args := m.Called(ctx, varietyID, size, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*batch.InventoryBatch), args.Error(1)
}

func (m *MockBatchRepository) Reserve(ctx context.Context, batchID kernel.UUID, qty int) error {
	args := m.Called(ctx, batchID, qty)
	return args.Error(0)
}

func (m *MockBatchRepository) Release(ctx context.Context, batchID kernel.UUID, qty int) error {
	args := m.Called(ctx, batchID, qty)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPickListRepository struct{ mock.Mock }

func (m *MockPickListRepository) Add(ctx context.Context, aggregate *picklist.PickList) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPickListRepository) Update(ctx context.Context, aggregate *picklist.PickList) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPickListRepository) Get(ctx context.Context, id kernel.UUID) (*picklist.PickList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*picklist.PickList), args.Error(1)
}

func (m *MockPickListRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*picklist.PickList, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*picklist.PickList), args.Error(1)
}

func (m *MockPickListRepository) GetByItem(ctx context.Context, itemID kernel.UUID) (*picklist.PickList, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*picklist.PickList), args.Error(1)
}

func (m *MockPickListRepository) GetAllOpen(ctx context.Context) ([]*picklist.PickList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*picklist.PickList), args.Error(1)
}

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, aggregate *load.DeliveryRun) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLoadRepository) Update(ctx context.Context, aggregate *load.DeliveryRun) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLoadRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.DeliveryRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.DeliveryRun), args.Error(1)
}

func (m *MockLoadRepository) FindRunWithOrder(ctx context.Context, orderID kernel.UUID) (*load.DeliveryRun, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.DeliveryRun), args.Error(1)
}

func (m *MockLoadRepository) GetAllInTransitBefore(ctx context.Context, cutoff time.Time) ([]*load.DeliveryRun, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*load.DeliveryRun), args.Error(1)
}

type MockSequenceAllocator struct{ mock.Mock }

func (m *MockSequenceAllocator) Next(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishPickListCompleted(ctx context.Context, event events.PickListCompleted) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishLoadDispatched(ctx context.Context, event events.LoadDispatched) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishLoadRecalled(ctx context.Context, event events.LoadRecalled) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockUoW satisfies every composite unit of work the command handlers
// declare; each test wires only the repositories its command touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) BatchRepository() ports.BatchRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PickListRepository() ports.PickListRepository {
	args := m.Called()
	return args.Get(0).(ports.PickListRepository)
}

func (m *MockUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

func (m *MockUoW) SequenceAllocator() ports.SequenceAllocator {
	args := m.Called()
	return args.Get(0).(ports.SequenceAllocator)
}

type MockCreatePickListUoWFactory struct{ mock.Mock }

func (m *MockCreatePickListUoWFactory) Create() commands.CreatePickListUoW {
	args := m.Called()
	return args.Get(0).(commands.CreatePickListUoW)
}

type MockPickListUoWFactory struct{ mock.Mock }

func (m *MockPickListUoWFactory) Create() commands.PickListUoW {
	args := m.Called()
	return args.Get(0).(commands.PickListUoW)
}

type MockPickingUoWFactory struct{ mock.Mock }

func (m *MockPickingUoWFactory) Create() commands.PickingUoW {
	args := m.Called()
	return args.Get(0).(commands.PickingUoW)
}

type MockCompletePickListUoWFactory struct{ mock.Mock }

func (m *MockCompletePickListUoWFactory) Create() commands.CompletePickListUoW {
	args := m.Called()
	return args.Get(0).(commands.CompletePickListUoW)
}

type MockCheckInUoWFactory struct{ mock.Mock }

func (m *MockCheckInUoWFactory) Create() commands.CheckInUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckInUoW)
}

type MockLoadUoWFactory struct{ mock.Mock }

func (m *MockLoadUoWFactory) Create() commands.LoadUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUoW)
}

type MockLoadOrderUoWFactory struct{ mock.Mock }

func (m *MockLoadOrderUoWFactory) Create() commands.LoadOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadOrderUoW)
}
