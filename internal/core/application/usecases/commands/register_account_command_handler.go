package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory, hasher ports.PasswordHasher) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle creates the account active. Email uniqueness is checked here and
// enforced again by the store's unique index.
func (h RegisterAccountCommandHandler) Handle(ctx context.Context, command RegisterAccountCommand) (*account.Account, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(command.Password())
	if err != nil {
		return nil, err
	}

	created, err := account.NewAccount(
		command.AccountID(),
		command.Email(),
		hash,
		command.FullName(),
		command.Phone(),
		command.Role(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accounts := uow.AccountRepository()

	_, err = accounts.GetByEmail(ctx, created.Email())
	switch {
	case err == nil:
		return nil, account.ErrEmailAlreadyRegistered
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = accounts.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
