package queries

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/pkg/guard"
)

var ErrListDriversQueryIsNotConstructed = errors.New(
	"ListDriversQuery must be created via NewListDriversQuery constructor",
)

// ListDriversQuery lists every driver account, active or not, newest first.
// Administrators only.
type ListDriversQuery struct {
	actor *account.Account

	guard guard.ConstructorGuard
}

func NewListDriversQuery(actor *account.Account) (ListDriversQuery, error) {
	if err := validateActor(actor); err != nil {
		return ListDriversQuery{}, err
	}

	return ListDriversQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

func (q ListDriversQuery) Actor() *account.Account {
	return q.actor
}
