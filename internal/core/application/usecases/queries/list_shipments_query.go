package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery lists the shipments visible to the actor, newest first.
//
// Scope by role:
//   - customer: own bookings
//   - driver: assigned shipments still in progress (ASSIGNED … OUT_FOR_DELIVERY)
//   - admin: every shipment
//
// An optional status narrows the result further.
type ListShipmentsQuery struct {
	actor  *account.Account
	status shipment.Status

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery accepts an empty status for "any status". An unknown
// status yields a validation error enumerating the legal values.
func NewListShipmentsQuery(actor *account.Account, status string) (ListShipmentsQuery, error) {
	q := ListShipmentsQuery{guard: guard.NewConstructorGuard()}

	var statusErr error
	if strings.TrimSpace(status) != "" {
		q.status, statusErr = shipment.ParseStatus(status)
	}

	if err := errors.Join(validateActor(actor), statusErr); err != nil {
		return ListShipmentsQuery{}, err
	}

	q.actor = actor
	return q, nil
}

func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

func (q ListShipmentsQuery) Actor() *account.Account {
	return q.actor
}

// Status is shipment.Unknown when no filter was requested.
func (q ListShipmentsQuery) Status() shipment.Status {
	return q.status
}
