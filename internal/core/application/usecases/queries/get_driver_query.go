package queries

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

// GetDriverQuery reads one driver account. Administrators only.
type GetDriverQuery struct {
	actor    *account.Account
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDriverQuery(actor *account.Account, driverID kernel.UUID) (GetDriverQuery, error) {
	if err := errors.Join(validateActor(actor), validateID("driver id", driverID)); err != nil {
		return GetDriverQuery{}, err
	}

	return GetDriverQuery{actor: actor, driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

func (q GetDriverQuery) Actor() *account.Account {
	return q.actor
}

func (q GetDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}
