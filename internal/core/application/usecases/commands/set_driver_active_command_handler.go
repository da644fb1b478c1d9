package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/services"
)

// SetDriverActiveCommandHandler toggles a driver account. Shipments already
// assigned to a deactivated driver keep the binding, but the driver can no
// longer act on them until approved again.
type SetDriverActiveCommandHandler struct {
	uowFactory  AccountUoWFactory
	accessGuard services.AccessGuard
}

func NewSetDriverActiveCommandHandler(uowFactory AccountUoWFactory) SetDriverActiveCommandHandler {
	return SetDriverActiveCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
	}
}

func (h SetDriverActiveCommandHandler) Handle(ctx context.Context, command SetDriverActiveCommand) (*account.Account, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	action := "deactivate driver"
	if command.Active() {
		action = "approve driver"
	}
	if err := h.accessGuard.AuthorizeAdmin(command.Actor(), action); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accounts := uow.AccountRepository()

	driver, err := accounts.Get(ctx, command.DriverID())
	if err != nil {
		return nil, err
	}
	if driver.Role() != account.RoleDriver {
		return nil, account.ErrUserIsNotDriver
	}

	now := time.Now().UTC()
	if command.Active() {
		driver.Activate(now)
	} else {
		driver.Deactivate(now)
	}

	if err = accounts.Update(ctx, driver); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return driver, nil
}
