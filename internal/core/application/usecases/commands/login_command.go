package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand exchanges credentials for a bearer token on one portal. The
// portal fixes the role the account must have.
type LoginCommand struct {
	email    string
	password string
	portal   account.Role

	guard guard.ConstructorGuard
}

func NewLoginCommand(email, password string, portal account.Role) (LoginCommand, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var problems []error
	if email == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	problems = append(problems, portal.Validate())

	if err := errors.Join(problems...); err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{
		email:    email,
		password: password,
		portal:   portal,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Email() string {
	return c.email
}

func (c LoginCommand) Password() string {
	return c.password
}

func (c LoginCommand) Portal() account.Role {
	return c.portal
}
