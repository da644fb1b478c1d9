package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginResult is the signed-in account and its bearer token.
type LoginResult struct {
	Account    *account.Account
	Credential ports.Credential
}

// LoginCommandHandler verifies credentials for a portal.
//
// Unknown emails, wrong passwords and accounts of another role all yield
// *errs.UnauthenticatedError wrapping ErrInvalidCredentials. Inactive drivers
// and administrators are *errs.ForbiddenError.
type LoginCommandHandler struct {
	uowFactory  AccountUoWFactory
	hasher      ports.PasswordHasher
	credentials ports.CredentialService
}

func NewLoginCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	credentials ports.CredentialService,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory:  uowFactory,
		hasher:      hasher,
		credentials: credentials,
	}
}

func (h LoginCommandHandler) Handle(ctx context.Context, command LoginCommand) (LoginResult, error) {
	if err := command.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	acc, err := uow.AccountRepository().GetByEmail(ctx, command.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, errs.NewUnauthenticatedError(ErrInvalidCredentials)
	}
	if err != nil {
		return LoginResult{}, err
	}

	if err = h.hasher.Compare(acc.PasswordHash(), command.Password()); err != nil {
		return LoginResult{}, errs.NewUnauthenticatedError(ErrInvalidCredentials)
	}
	if acc.Role() != command.Portal() {
		return LoginResult{}, errs.NewUnauthenticatedError(ErrInvalidCredentials)
	}
	if acc.Role() != account.RoleCustomer && !acc.IsActive() {
		return LoginResult{}, errs.NewForbiddenError("login", acc.Role().String()+" account is inactive")
	}

	credential, err := h.credentials.Issue(acc)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Account: acc, Credential: credential}, nil
}
