package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/services"
)

const actionRecordLocation = "record location"

// RecordLocationCommandHandler appends a GPS fix for the assigned driver. The
// shipment itself is not modified, so it is read without a row lock.
type RecordLocationCommandHandler struct {
	uowFactory  ShipmentUoWFactory
	accessGuard services.AccessGuard
}

func NewRecordLocationCommandHandler(uowFactory ShipmentUoWFactory) RecordLocationCommandHandler {
	return RecordLocationCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
	}
}

func (h RecordLocationCommandHandler) Handle(ctx context.Context, command RecordLocationCommand) (*tracking.Entry, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := uow.ShipmentRepository().Get(ctx, command.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = h.accessGuard.AuthorizeDriver(command.Actor(), s, actionRecordLocation); err != nil {
		return nil, err
	}

	entry, err := tracking.NewEntry(
		kernel.NewUUID(),
		s.ID(),
		command.Position(),
		command.LocationName(),
		command.Note(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.TrackingRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
