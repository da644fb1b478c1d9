package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrReportDelayCommandIsNotConstructed = errors.New(
	"ReportDelayCommand must be created via NewReportDelayCommand constructor",
)

// ReportDelayCommand records why an active shipment is running late. A later
// report replaces the earlier one; the ledger keeps both.
type ReportDelayCommand struct { //nolint:recvcheck //using for validation
	driverTarget

	reason shipment.DelayReason
	notes  string

	guard guard.ConstructorGuard
}

func NewReportDelayCommand(
	actor *account.Account,
	shipmentID kernel.UUID,
	rawReason string,
	notes string,
) (ReportDelayCommand, error) {
	target, targetErr := newDriverTarget(actor, shipmentID)
	reason, reasonErr := shipment.ParseDelayReason(rawReason)

	if err := errors.Join(targetErr, reasonErr); err != nil {
		return ReportDelayCommand{}, err
	}

	return ReportDelayCommand{
		driverTarget: target,
		reason:       reason,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ReportDelayCommand) Validate() error {
	return c.guard.Validate(ErrReportDelayCommandIsNotConstructed)
}

func (c ReportDelayCommand) Reason() shipment.DelayReason {
	return c.reason
}

func (c ReportDelayCommand) Notes() string {
	return c.notes
}
