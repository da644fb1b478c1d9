package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCollectCODCommandIsNotConstructed = errors.New(
	"CollectCODCommand must be created via NewCollectCODCommand constructor",
)

// CollectCODCommand records the cash a driver collected on delivery. The amount
// must equal the booked COD amount to the cent.
type CollectCODCommand struct { //nolint:recvcheck //using for validation
	driverTarget

	amount float64

	guard guard.ConstructorGuard
}

func NewCollectCODCommand(actor *account.Account, shipmentID kernel.UUID, amount float64) (CollectCODCommand, error) {
	target, targetErr := newDriverTarget(actor, shipmentID)

	var amountErr error
	if amount <= 0 {
		amountErr = errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%.2f is not greater than 0", amount))
	}

	if err := errors.Join(targetErr, amountErr); err != nil {
		return CollectCODCommand{}, err
	}

	return CollectCODCommand{
		driverTarget: target,
		amount:       amount,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CollectCODCommand) Validate() error {
	return c.guard.Validate(ErrCollectCODCommandIsNotConstructed)
}

func (c CollectCODCommand) Amount() float64 {
	return c.amount
}
