package postgres_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/batchrepo"
	"fulfillment/internal/adapters/out/postgres/loadrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/picklistrepo"
	"fulfillment/internal/adapters/out/postgres/sequencerepo"
	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picklist"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the GORM unit of work binds
// every repository to one transaction: writes across the fulfillment tables
// commit together or disappear together.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&batchrepo.BatchDTO{},
		&orderrepo.OrderDTO{},
		&picklistrepo.PickListDTO{},
		&picklistrepo.PickItemDTO{},
		&picklistrepo.BatchPickDTO{},
		&loadrepo.LoadDTO{},
		&loadrepo.LoadItemDTO{},
		&sequencerepo.SequenceDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE inventory_batches, orders, pick_lists, pick_items, batch_picks, loads, load_items, sequences").Error)

	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newBatch(batchNumber, qty int) *batch.InventoryBatch {
	size, err := kernel.NewSizeCode("P9")
	suite.Require().NoError(err)
	location, err := kernel.NewLocationCode("TUNNEL-3")
	suite.Require().NoError(err)

	b, err := batch.NewInventoryBatch(kernel.NewUUID(), batchNumber, kernel.NewUUID(),
		size, location, time.Date(2026, time.February, 2, 8, 0, 0, 0, time.UTC), qty)
	suite.Require().NoError(err)
	return b
}

func (suite *UnitOfWorkIntegrationTestSuite) newPickList(orderID kernel.UUID, sequence int) *picklist.PickList {
	size, err := kernel.NewSizeCode("P9")
	suite.Require().NoError(err)
	location, err := kernel.NewLocationCode("TUNNEL-3")
	suite.Require().NoError(err)

	item, err := picklist.NewPickItem(kernel.NewUUID(), kernel.NewUUID(), size, location, 40)
	suite.Require().NoError(err)
	list, err := picklist.NewPickList(kernel.NewUUID(), orderID, sequence, []*picklist.PickItem{item})
	suite.Require().NoError(err)
	return list
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreate_ReturnsIndependentInstances() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotSame(first, second)

	ctx := context.Background()
	suite.Require().NoError(first.Begin(ctx))
	suite.Require().ErrorIs(second.Commit(ctx), gorm.ErrInvalidTransaction,
		"a transaction on one instance must not leak into another")
	suite.Require().NoError(first.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_TwiceIsNoOp() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction,
		"the no-op Begin must not open a second transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()

	b := suite.newBatch(1, 120)
	o, err := order.NewOrder(kernel.NewUUID(), 3)
	suite.Require().NoError(err)
	list := suite.newPickList(o.ID(), 1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BatchRepository().Add(ctx, b))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.PickListRepository().Add(ctx, list))
	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()

	gotBatch, err := fresh.BatchRepository().Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.Equal(120, gotBatch.AvailableQty())

	gotOrder, err := fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(3, gotOrder.Trolleys())

	gotList, err := fresh.PickListRepository().Get(ctx, list.ID())
	suite.Require().NoError(err)
	suite.Len(gotList.Items(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRoundTrip_KeepsPreDispatchState() {
	ctx := context.Background()

	o, err := order.NewOrder(kernel.NewUUID(), 3)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(o.ForceDispatch())

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	suite.Require().NoError(second.OrderRepository().Update(ctx, o))
	suite.Require().NoError(second.Commit(ctx))

	fresh := suite.factory.Create()

	got, err := fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Dispatched, got.Status())
	suite.Equal(order.Picking, got.PreDispatchStatus())

	suite.Require().NoError(got.Recall())
	suite.Equal(order.Picking, got.Status(),
		"a forced dispatch must recall into the pick, not past it")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAcrossRepositories() {
	ctx := context.Background()

	b := suite.newBatch(1, 120)
	o, err := order.NewOrder(kernel.NewUUID(), 3)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BatchRepository().Add(ctx, b))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()

	_, err = fresh.BatchRepository().Get(ctx, b.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSequenceAllocator_MonotonicPerName() {
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))

		value, err := uow.SequenceAllocator().Next(ctx, "pick_list")
		suite.Require().NoError(err)
		suite.Equal(want, value)

		suite.Require().NoError(uow.Commit(ctx))
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	value, err := uow.SequenceAllocator().Next(ctx, "inventory_batch")
	suite.Require().NoError(err)
	suite.Equal(1, value, "counters with different names are independent")
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSequenceAllocator_RolledBackDrawIsReissued() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	value, err := uow.SequenceAllocator().Next(ctx, "pick_list")
	suite.Require().NoError(err)
	suite.Equal(1, value)
	suite.Require().NoError(uow.Rollback(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	value, err = uow.SequenceAllocator().Next(ctx, "pick_list")
	suite.Require().NoError(err)
	suite.Equal(1, value, "a draw discarded with its transaction must not leave a gap")
	suite.Require().NoError(uow.Commit(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
