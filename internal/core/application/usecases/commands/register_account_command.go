package commands

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const MinPasswordLength = 8

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

// RegisterAccountCommand signs up a customer or driver through their portal.
// Administrators are only created by the bootstrap at startup.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	email     string
	password  string
	fullName  string
	phone     string
	role      account.Role

	guard guard.ConstructorGuard
}

func NewRegisterAccountCommand(
	accountID kernel.UUID,
	email string,
	password string,
	fullName string,
	phone string,
	role account.Role,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		email:    strings.ToLower(strings.TrimSpace(email)),
		fullName: strings.TrimSpace(fullName),
		phone:    strings.TrimSpace(phone),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c RegisterAccountCommand) Email() string {
	return c.email
}

func (c RegisterAccountCommand) Password() string {
	return c.password
}

func (c RegisterAccountCommand) FullName() string {
	return c.fullName
}

func (c RegisterAccountCommand) Phone() string {
	return c.phone
}

func (c RegisterAccountCommand) Role() account.Role {
	return c.role
}

func (c *RegisterAccountCommand) setAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("account id", err)
	}
	c.accountID = id
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if len(password) < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters", MinPasswordLength))
	}
	c.password = password
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
