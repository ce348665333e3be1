package vehiclerepo_test

import (
	"context"
	"testing"
	"time"

	"vehicletrack/internal/adapters/out/postgres/vehiclerepo"
	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/vehicle"
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

// VehicleRepositoryIntegrationTestSuite provides integration tests for
// VehicleRepository using PostgreSQL containers to verify database
// persistence behavior.
type VehicleRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *vehiclerepo.GormVehicleRepository
	tracker    *MockAggregateTracker
}

func (suite *VehicleRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&vehiclerepo.VehicleDTO{}))
}

func (suite *VehicleRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vehicles").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = vehiclerepo.NewGormVehicleRepository(suite.db, suite.tracker)
}

func (suite *VehicleRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestAdd_ValidVehicle_Success() {
	ctx := context.Background()

	aggregate := suite.createTestVehicle("1HGCM82633A004352")
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	suite.assertVehicleCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestAdd_DuplicateVIN_ReturnsError() {
	ctx := context.Background()

	first := suite.createTestVehicle("1HGCM82633A004352")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// The unique index on vin rejects the second insert.
	second := suite.createTestVehicle("1HGCM82633A004352")
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	suite.assertVehicleCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestGet_ExistingVehicle_RoundTrips() {
	ctx := context.Background()

	manufactured := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	original, err := vehicle.NewVehicle(
		kernel.NewUUID(),
		"5YJSA1E26HF000337", "Model S", "Tesla",
		2023,
		"Midnight Silver", "SEDAN",
		vehicle.StatusQualityCheck,
		vehicle.Details{
			EngineType:        "Electric",
			Transmission:      "Single-speed",
			Price:             89990,
			ManufacturingDate: &manufactured,
		},
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.VIN(), retrieved.VIN())
	suite.Equal(original.Model(), retrieved.Model())
	suite.Equal(original.Make(), retrieved.Make())
	suite.Equal(original.Year(), retrieved.Year())
	suite.Equal(original.Color(), retrieved.Color())
	suite.Equal(original.VehicleType(), retrieved.VehicleType())
	suite.Equal(vehicle.StatusQualityCheck, retrieved.Status())
	suite.Equal(original.Details().EngineType, retrieved.Details().EngineType)
	suite.InEpsilon(original.Details().Price, retrieved.Details().Price, 0.001)
	suite.Require().NotNil(retrieved.Details().ManufacturingDate)
	suite.WithinDuration(manufactured, *retrieved.Details().ManufacturingDate, time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestGet_NonExistentVehicle_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestGetByVIN_ExistingVehicle_Success() {
	ctx := context.Background()

	aggregate := suite.createTestVehicle("WBA3A5C51CF256987")
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	retrieved, err := suite.repository.GetByVIN(ctx, "WBA3A5C51CF256987")
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestGetByVIN_UnknownVIN_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByVIN(ctx, "NOPE0000000000000")

	suite.Nil(retrieved)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestUpdate_StatusChange_Persisted() {
	ctx := context.Background()

	aggregate := suite.createTestVehicle("JH4KA7561PC008269")
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.ChangeStatus(vehicle.StatusShipped))

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(vehicle.StatusShipped, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestUpdate_ClearedDetails_Persisted() {
	ctx := context.Background()

	aggregate := suite.createTestVehicle("3VWFE21C04M000001")
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// Full-replace update clearing the optional detail fields; the
	// zero-valued columns must be written, not skipped.
	suite.Require().NoError(aggregate.UpdateDetails(
		aggregate.Model(), aggregate.Make(),
		aggregate.Year(),
		aggregate.Color(), aggregate.VehicleType(),
		vehicle.StatusInProduction,
		vehicle.Details{EngineType: "", Transmission: "", Price: 0},
	))

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Empty(retrieved.Details().EngineType)
	suite.Empty(retrieved.Details().Transmission)
	suite.InDelta(0.0, retrieved.Details().Price, 0.001)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestUpdate_NonExistentVehicle_ReturnsNotFoundError() {
	ctx := context.Background()

	aggregate := suite.createTestVehicle("2HGFG12848H542674")

	err := suite.repository.Update(ctx, aggregate)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestDelete_ExistingVehicle_RemovesRow() {
	ctx := context.Background()

	aggregate := suite.createTestVehicle("1FTFW1ET5DFC10312")
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(suite.repository.Delete(ctx, aggregate.ID()))

	suite.assertVehicleCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestDelete_NonExistentVehicle_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// createTestVehicle creates a test vehicle with the given VIN and default
// descriptive attributes.
func (suite *VehicleRepositoryIntegrationTestSuite) createTestVehicle(vin string) *vehicle.Vehicle {
	aggregate, err := vehicle.NewVehicle(
		kernel.NewUUID(),
		vin, "Camry", "Toyota",
		2024,
		"White", "SEDAN",
		vehicle.StatusUnknown,
		vehicle.Details{
			EngineType:   "V6",
			Transmission: "Automatic",
			Price:        35000,
		},
	)
	suite.Require().NoError(err)
	return aggregate
}

// assertVehicleCount verifies the number of vehicles in the database.
func (suite *VehicleRepositoryIntegrationTestSuite) assertVehicleCount(expected int) {
	var count int64
	err := suite.db.Model(&vehiclerepo.VehicleDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestVehicleRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleRepositoryIntegrationTestSuite))
}
