package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	tracker    *MockAggregateTracker
	repository *shipmentrepo.GormShipmentRepository
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.tracker = &MockAggregateTracker{}
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

var bookedAt = time.Date(2026, 5, 14, 10, 15, 0, 0, time.UTC)

func (suite *ShipmentRepositoryIntegrationTestSuite) newInternationalCOD() *shipment.Shipment {
	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), shipment.Details{
		PickupAddress:   "Plot 7, Andheri East, Mumbai",
		DeliveryAddress: "22 Orchard Road, Singapore",
		HomePickup:      true,
		PackageType:     "box",
		Weight:          62.5,
		Dimensions:      "60x40x40",
		Description:     "machine parts",
		Type:            shipment.International,
		TransportMode:   shipment.ModeSea,
		Port:            shipment.MumbaiPort,
		IsCOD:           true,
		CODAmount:       1250.75,
		Express:         true,
	}, shipment.Price{Base: 1500, WeightCharge: 3125, ModeSurcharge: 1000, FuelSurcharge: 1250, ExpressCharge: 2500, Total: 9375}, bookedAt)
	suite.Require().NoError(err)
	return s
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_RoundTripsEveryField() {
	ctx := context.Background()
	s := suite.newInternationalCOD()

	suite.Require().NoError(suite.repository.Add(ctx, s))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", s.ID(), s)

	stored, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)

	want := s.Snapshot()
	got := stored.Snapshot()
	suite.Equal(want.Number, got.Number)
	suite.Equal(want.CustomerID, got.CustomerID)
	suite.Nil(got.DriverID)
	suite.Equal(want.Details, got.Details)
	suite.Equal(want.Price, got.Price)
	suite.Equal(shipment.Pending, got.Status)
	suite.Equal(want.CustomsStatus, got.CustomsStatus)
	suite.Equal(shipment.CODPending, got.CODStatus)
	suite.True(want.EstimatedDelivery.Equal(got.EstimatedDelivery))
	suite.True(bookedAt.Equal(got.CreatedAt))
	suite.Equal(time.UTC, got.CreatedAt.Location())
	suite.Empty(stored.Events(), "a loaded shipment carries no events")
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_RejectsDuplicateID() {
	ctx := context.Background()
	s := suite.newInternationalCOD()

	suite.Require().NoError(suite.repository.Add(ctx, s))
	suite.Require().Error(suite.repository.Add(ctx, s))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitionsAndClearedFields() {
	ctx := context.Background()
	s := suite.newInternationalCOD()
	suite.Require().NoError(suite.repository.Add(ctx, s))

	driverID := kernel.NewUUID()
	at := bookedAt.Add(time.Hour)
	suite.Require().NoError(s.AssignDriver(driverID, at))
	suite.Require().NoError(s.MarkPickedUp("", at))
	suite.Require().NoError(s.MarkFailed(shipment.FailureWrongAddress, "gate closed", at))
	suite.Require().NoError(suite.repository.Update(ctx, s))

	failed, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Failed, failed.Status())
	suite.Require().NotNil(failed.DriverID())
	suite.Equal(driverID, *failed.DriverID())
	suite.Equal("gate closed", failed.Snapshot().FailureNotes)
	suite.NotNil(failed.Snapshot().PickupCompletedAt)

	suite.Require().NoError(failed.OverrideStatus(shipment.InTransit, at.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, failed))

	restored, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, restored.Status())
	suite.Empty(restored.Snapshot().FailureReason)
	suite.Empty(restored.Snapshot().FailureNotes)
	suite.Nil(restored.ActualDelivery())
	suite.True(at.Add(time.Hour).Equal(restored.UpdatedAt()))
	suite.True(bookedAt.Equal(restored.Snapshot().CreatedAt), "created_at is never rewritten")
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_UnknownShipment() {
	err := suite.repository.Update(context.Background(), suite.newInternationalCOD())

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NotFound() {
	id := kernel.NewUUID()

	_, err := suite.repository.Get(context.Background(), id)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetForUpdate(context.Background(), id)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetForUpdate_LocksRowUntilCommit() {
	ctx := context.Background()
	s := suite.newInternationalCOD()
	suite.Require().NoError(suite.repository.Add(ctx, s))

	holder := suite.db.Begin()
	suite.Require().NoError(holder.Error)
	defer holder.Rollback()

	locked, err := shipmentrepo.NewGormShipmentRepository(holder, suite.tracker).GetForUpdate(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(s.ID(), locked.ID())

	waiter := suite.db.Begin()
	suite.Require().NoError(waiter.Error)
	defer waiter.Rollback()
	suite.Require().NoError(waiter.Exec("SET LOCAL lock_timeout = '200ms'").Error)

	_, err = shipmentrepo.NewGormShipmentRepository(waiter, suite.tracker).GetForUpdate(ctx, s.ID())
	suite.Require().Error(err, "a second writer must wait for the lock")

	_, err = suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err, "plain reads are not blocked")
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
