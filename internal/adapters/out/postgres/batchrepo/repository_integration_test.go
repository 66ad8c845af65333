package batchrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/batchrepo"
	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// BatchRepositoryIntegrationTestSuite verifies the inventory ledger against
// a real PostgreSQL database, in particular the atomicity of Reserve under
// concurrent access.
type BatchRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *batchrepo.GormBatchRepository
	tracker    *MockAggregateTracker
}

func (suite *BatchRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&batchrepo.BatchDTO{}))
}

func (suite *BatchRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE inventory_batches").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = batchrepo.NewGormBatchRepository(suite.db, suite.tracker)
}

func (suite *BatchRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BatchRepositoryIntegrationTestSuite) newBatch(batchNumber, qty int, receivedAt time.Time) *batch.InventoryBatch {
	size, err := kernel.NewSizeCode("P9")
	suite.Require().NoError(err)
	location, err := kernel.NewLocationCode("TUNNEL-3")
	suite.Require().NoError(err)

	b, err := batch.NewInventoryBatch(
		kernel.NewUUID(), batchNumber, kernel.NewUUID(), size, location, receivedAt, qty)
	suite.Require().NoError(err)
	return b
}

func (suite *BatchRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	b := suite.newBatch(1, 250, time.Date(2026, time.February, 2, 8, 0, 0, 0, time.UTC))

	suite.Require().NoError(suite.repository.Add(ctx, b))

	got, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(b))
	suite.Equal(250, got.AvailableQty())
	suite.Equal(1, got.BatchNumber())
}

func (suite *BatchRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BatchRepositoryIntegrationTestSuite) TestFindCandidates_OldestFirstExcludingEmpty() {
	ctx := context.Background()
	size, err := kernel.NewSizeCode("P9")
	suite.Require().NoError(err)
	location, err := kernel.NewLocationCode("TUNNEL-3")
	suite.Require().NoError(err)
	varietyID := kernel.NewUUID()

	newer, err := batch.NewInventoryBatch(kernel.NewUUID(), 2, varietyID, size, location,
		time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC), 80)
	suite.Require().NoError(err)
	older, err := batch.NewInventoryBatch(kernel.NewUUID(), 1, varietyID, size, location,
		time.Date(2026, time.February, 1, 8, 0, 0, 0, time.UTC), 30)
	suite.Require().NoError(err)
	empty, err := batch.RestoreInventoryBatch(kernel.NewUUID(), 3, varietyID, size, location,
		time.Date(2026, time.January, 1, 8, 0, 0, 0, time.UTC), 0)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, empty))

	candidates, err := suite.repository.FindCandidates(ctx, varietyID, size, location)
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 2)
	suite.True(candidates[0].IsEqual(older), "oldest received batch must come first")
	suite.True(candidates[1].IsEqual(newer))
}

func (suite *BatchRepositoryIntegrationTestSuite) TestReserve_DecrementsAvailability() {
	ctx := context.Background()
	b := suite.newBatch(1, 50, time.Date(2026, time.February, 2, 8, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.repository.Add(ctx, b))

	suite.Require().NoError(suite.repository.Reserve(ctx, b.ID(), 30))

	got, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.Equal(20, got.AvailableQty())
}

func (suite *BatchRepositoryIntegrationTestSuite) TestReserve_InsufficientStock() {
	ctx := context.Background()
	b := suite.newBatch(1, 10, time.Date(2026, time.February, 2, 8, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.repository.Add(ctx, b))

	err := suite.repository.Reserve(ctx, b.ID(), 11)
	suite.Require().ErrorIs(err, errs.ErrInsufficientStock)

	var stockErr *errs.InsufficientStockError
	suite.Require().ErrorAs(err, &stockErr)
	suite.Equal(10, stockErr.Available)

	got, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.Equal(10, got.AvailableQty(), "failed reservation must not touch the ledger")
}

func (suite *BatchRepositoryIntegrationTestSuite) TestReserve_ConcurrentNeverOverdraws() {
	ctx := context.Background()
	b := suite.newBatch(1, 10, time.Date(2026, time.February, 2, 8, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.repository.Add(ctx, b))

	const workers = 8
	results := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			results[slot] = suite.repository.Reserve(ctx, b.ID(), 3)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			suite.Require().ErrorIs(err, errs.ErrInsufficientStock)
		}
	}
	suite.Equal(3, succeeded, "only three reservations of 3 fit into 10")

	got, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.Equal(1, got.AvailableQty())
}

func (suite *BatchRepositoryIntegrationTestSuite) TestRelease_RestoresAvailability() {
	ctx := context.Background()
	b := suite.newBatch(1, 50, time.Date(2026, time.February, 2, 8, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.repository.Add(ctx, b))

	suite.Require().NoError(suite.repository.Reserve(ctx, b.ID(), 30))
	suite.Require().NoError(suite.repository.Release(ctx, b.ID(), 30))

	got, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.Equal(50, got.AvailableQty())
}

func TestBatchRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(BatchRepositoryIntegrationTestSuite))
}
