package commands_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Append(ctx context.Context, entries ...*tracking.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

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

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockCredentialService struct{ mock.Mock }

func (m *MockCredentialService) Issue(acc *account.Account) (ports.Credential, error) {
	args := m.Called(acc)
	return args.Get(0).(ports.Credential), args.Error(1)
}

func (m *MockCredentialService) Verify(token string) (ports.Claims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.Claims), args.Error(1)
}

type MockSpeechRecognizer struct{ mock.Mock }

func (m *MockSpeechRecognizer) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	args := m.Called(ctx, audio, filename)
	return args.String(0), args.Error(1)
}

type MockIntentClassifier struct{ mock.Mock }

func (m *MockIntentClassifier) Classify(ctx context.Context, text string) (ports.Intent, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(ports.Intent), args.Error(1)
}

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestAccount(t *testing.T, role account.Role, active bool) *account.Account {
	t.Helper()
	id := kernel.NewUUID()
	a, err := account.RestoreAccount(id, id.String()+"@example.com", "$2a$10$hash", "Test "+role.String(),
		"+91-9000000000", role, active, testNow, testNow)
	require.NoError(t, err)
	return a
}

func newTestShipment(t *testing.T, customer *account.Account, details shipment.Details) *shipment.Shipment {
	t.Helper()
	if details.PickupAddress == "" {
		details.PickupAddress = "12 MG Road, Pune"
	}
	if details.DeliveryAddress == "" {
		details.DeliveryAddress = "4 Park Street, Kolkata"
	}
	if details.Weight == 0 {
		details.Weight = 10
	}
	s, err := shipment.NewShipment(kernel.NewUUID(), customer.ID(), details, shipment.Price{Base: 1500, Total: 1500}, testNow)
	require.NoError(t, err)
	return reload(t, s)
}

// reload mimics a repository round trip: a restored aggregate carries no events.
func reload(t *testing.T, s *shipment.Shipment) *shipment.Shipment {
	t.Helper()
	restored, err := shipment.RestoreShipment(s.Snapshot())
	require.NoError(t, err)
	return restored
}

// shipmentIn builds a shipment bound to driver and advanced to status.
func shipmentIn(t *testing.T, status shipment.Status, driver *account.Account, details shipment.Details) *shipment.Shipment {
	t.Helper()
	customer := newTestAccount(t, account.RoleCustomer, true)
	s := newTestShipment(t, customer, details)
	if status == shipment.Pending {
		return s
	}

	at := testNow.Add(time.Minute)
	require.NoError(t, s.AssignDriver(driver.ID(), at))
	steps := []struct {
		reached shipment.Status
		next    func() error
	}{
		{shipment.Assigned, func() error { return s.MarkPickedUp("", at) }},
		{shipment.PickedUp, func() error { return s.MarkInTransit("", at) }},
		{shipment.InTransit, func() error { return s.MarkOutForDelivery("", at) }},
		{shipment.OutForDelivery, func() error { return s.MarkDelivered(shipment.DeliveryProof{}, at) }},
	}
	for _, step := range steps {
		if s.Status() == status {
			break
		}
		require.Equal(t, step.reached, s.Status())
		require.NoError(t, step.next())
	}
	require.Equal(t, status, s.Status())
	return reload(t, s)
}

// expectShipmentAction wires the mocks for a successful locked action that
// writes ledger entries, and captures the entries appended.
func expectShipmentAction(
	ctx context.Context,
	factory *MockShipmentUoWFactory,
	uow *MockUoW,
	shipments *MockShipmentRepository,
	ledger *MockTrackingRepository,
	s *shipment.Shipment,
	appended *[]*tracking.Entry,
) {
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once(),
		uow.On("TrackingRepository").Return(ledger).Once(),
		ledger.On("Append", ctx, mock.AnythingOfType("[]*tracking.Entry")).
			Run(func(args mock.Arguments) { *appended = args.Get(1).([]*tracking.Entry) }).
			Return(nil).Once(),
		shipments.On("Update", ctx, s).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

// expectRejectedShipmentAction wires the mocks for an action rejected after
// the locked read: nothing is written and the transaction is rolled back.
func expectRejectedShipmentAction(
	ctx context.Context,
	factory *MockShipmentUoWFactory,
	uow *MockUoW,
	shipments *MockShipmentRepository,
	s *shipment.Shipment,
) {
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}
