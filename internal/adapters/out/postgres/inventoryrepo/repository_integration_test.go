package inventoryrepo_test

import (
	"context"
	"testing"
	"time"

	"vehicletrack/internal/adapters/out/postgres/inventoryrepo"
	"vehicletrack/internal/core/domain/model/inventory"
	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/pkg/errs"

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

// InventoryRepositoryIntegrationTestSuite provides integration tests for
// InventoryRepository using PostgreSQL containers to verify database
// persistence behavior.
type InventoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *inventoryrepo.GormInventoryRepository
	tracker    *MockAggregateTracker
}

func (suite *InventoryRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&inventoryrepo.InventoryItemDTO{}))
}

func (suite *InventoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE inventory_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = inventoryrepo.NewGormInventoryRepository(suite.db, suite.tracker)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestAdd_ValidItem_Success() {
	ctx := context.Background()

	item := suite.createTestItem("BRK-PAD-001", 50, 10)
	suite.tracker.On("TrackAggregate", item.ID(), item).Once()

	err := suite.repository.Add(ctx, item)
	suite.Require().NoError(err)

	suite.assertItemCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGet_ExistingItem_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestItem("OIL-FLT-442", 3, 10)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.PartNumber(), retrieved.PartNumber())
	suite.Equal(original.Details().QuantityInStock, retrieved.Details().QuantityInStock)
	suite.Equal(original.Details().ReorderLevel, retrieved.Details().ReorderLevel)
	// The stored status is whatever the aggregate last computed. A fresh
	// item keeps IN_STOCK even below the reorder level.
	suite.Equal(inventory.StatusInStock, retrieved.Status())
	suite.Nil(retrieved.LastRestocked())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGetByPartNumber_ExistingItem_Success() {
	ctx := context.Background()

	item := suite.createTestItem("SPK-PLG-778", 120, 25)
	suite.tracker.On("TrackAggregate", item.ID(), item).Once()
	suite.Require().NoError(suite.repository.Add(ctx, item))

	retrieved, err := suite.repository.GetByPartNumber(ctx, "SPK-PLG-778")
	suite.Require().NoError(err)
	suite.Equal(item.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGetByPartNumber_Unknown_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByPartNumber(ctx, "MISSING-000")

	suite.Nil(retrieved)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestUpdate_StockAdjustment_Persisted() {
	ctx := context.Background()

	item := suite.createTestItem("BAT-12V-900", 8, 5)
	suite.tracker.On("TrackAggregate", item.ID(), item).Once()
	suite.Require().NoError(suite.repository.Add(ctx, item))

	suite.Require().NoError(item.AdjustStock(-8))

	suite.tracker.On("TrackAggregate", item.ID(), item).Once()
	suite.Require().NoError(suite.repository.Update(ctx, item))

	retrieved, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(0, retrieved.Details().QuantityInStock)
	suite.Equal(inventory.StatusOutOfStock, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestUpdate_RestockStampsLastRestocked() {
	ctx := context.Background()

	item := suite.createTestItem("WPR-BLD-314", 2, 10)
	suite.tracker.On("TrackAggregate", item.ID(), item).Once()
	suite.Require().NoError(suite.repository.Add(ctx, item))

	suite.Require().NoError(item.AdjustStock(48))

	suite.tracker.On("TrackAggregate", item.ID(), item).Once()
	suite.Require().NoError(suite.repository.Update(ctx, item))

	retrieved, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(50, retrieved.Details().QuantityInStock)
	suite.Equal(inventory.StatusInStock, retrieved.Status())
	suite.Require().NotNil(retrieved.LastRestocked())
	suite.WithinDuration(time.Now(), *retrieved.LastRestocked(), time.Minute)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestDelete_NonExistentItem_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// createTestItem creates a test inventory item with the given part number
// and stock levels.
func (suite *InventoryRepositoryIntegrationTestSuite) createTestItem(
	partNumber string, quantity, reorderLevel int,
) *inventory.InventoryItem {
	item, err := inventory.NewItem(
		kernel.NewUUID(),
		partNumber,
		inventory.Details{
			PartName:        "Test Part",
			Category:        "Brakes",
			QuantityInStock: quantity,
			ReorderLevel:    reorderLevel,
			MaxStockLevel:   200,
			Supplier:        "ACME Parts Co",
			UnitPrice:       19.99,
			Location:        "A-12-3",
		},
	)
	suite.Require().NoError(err)
	return item
}

// assertItemCount verifies the number of inventory items in the database.
func (suite *InventoryRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&inventoryrepo.InventoryItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestInventoryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryRepositoryIntegrationTestSuite))
}
