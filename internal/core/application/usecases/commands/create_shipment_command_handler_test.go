package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand(t *testing.T) {
	customer := newTestAccount(t, account.RoleCustomer, true)

	t.Run("should keep booking input", func(t *testing.T) {
		id := kernel.NewUUID()
		details := shipment.Details{PickupAddress: "A", DeliveryAddress: "B", Weight: 3}

		cmd, err := commands.NewCreateShipmentCommand(customer, id, details, 250)

		require.NoError(t, err)
		assert.Equal(t, id, cmd.ShipmentID())
		assert.Equal(t, details, cmd.Details())
		assert.InDelta(t, 250.0, cmd.DistanceKm(), 0)
	})

	t.Run("should reject negative distance and missing id", func(t *testing.T) {
		_, err := commands.NewCreateShipmentCommand(customer, kernel.UUID{}, shipment.Details{}, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := newTestAccount(t, account.RoleCustomer, true)

	factory := new(MockShipmentUoWFactory)
	uow := new(MockUoW)
	shipments := new(MockShipmentRepository)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCreateShipmentCommand(customer, kernel.NewUUID(), shipment.Details{
		PickupAddress:   "12 MG Road, Pune",
		DeliveryAddress: "4 Park Street, Kolkata",
		Weight:          10,
		Type:            shipment.Domestic,
		IsCOD:           true,
		CODAmount:       750,
	}, 0)
	require.NoError(t, err)

	created, err := commands.NewCreateShipmentCommandHandler(factory, 100).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Pending, created.Status())
	assert.Nil(t, created.DriverID())
	assert.True(t, created.IsOwnedBy(customer.ID()))
	assert.Equal(t, shipment.CODPending, created.CODStatus())
	assert.InDelta(t, 4750.0, created.Price().Total, 1e-9)
	assert.Regexp(t, `^SHP[0-9A-F]{8}$`, created.Number())
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	shipments.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ForbiddenForDriver(t *testing.T) {
	driver := newTestAccount(t, account.RoleDriver, true)
	factory := new(MockShipmentUoWFactory)

	cmd, err := commands.NewCreateShipmentCommand(driver, kernel.NewUUID(), shipment.Details{
		PickupAddress: "A", DeliveryAddress: "B", Weight: 1,
	}, 0)
	require.NoError(t, err)

	_, err = commands.NewCreateShipmentCommandHandler(factory, 100).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_InvalidDetails(t *testing.T) {
	customer := newTestAccount(t, account.RoleCustomer, true)
	factory := new(MockShipmentUoWFactory)

	cmd, err := commands.NewCreateShipmentCommand(customer, kernel.NewUUID(), shipment.Details{
		PickupAddress: "A", DeliveryAddress: "B", Weight: 0,
	}, 0)
	require.NoError(t, err)

	_, err = commands.NewCreateShipmentCommandHandler(factory, 100).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	customer := newTestAccount(t, account.RoleCustomer, true)

	factory := new(MockShipmentUoWFactory)
	uow := new(MockUoW)
	shipments := new(MockShipmentRepository)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Add", ctx, mock.Anything).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCreateShipmentCommand(customer, kernel.NewUUID(), shipment.Details{
		PickupAddress: "A", DeliveryAddress: "B", Weight: 1,
	}, 10)
	require.NoError(t, err)

	_, err = commands.NewCreateShipmentCommandHandler(factory, 100).Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
