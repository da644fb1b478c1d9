package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetDriverDashboardQueryIsNotConstructed = errors.New(
	"GetDriverDashboardQuery must be created via NewGetDriverDashboardQuery constructor",
)

// GetDriverDashboardQuery summarises a driver's workload. "Today" is the UTC
// calendar day containing now.
type GetDriverDashboardQuery struct {
	actor *account.Account
	now   time.Time

	guard guard.ConstructorGuard
}

func NewGetDriverDashboardQuery(actor *account.Account, now time.Time) (GetDriverDashboardQuery, error) {
	var nowErr error
	if now.IsZero() {
		nowErr = errs.NewValueIsRequiredError("now")
	}
	if err := errors.Join(validateActor(actor), nowErr); err != nil {
		return GetDriverDashboardQuery{}, err
	}

	return GetDriverDashboardQuery{
		actor: actor,
		now:   now.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetDriverDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverDashboardQueryIsNotConstructed)
}

func (q GetDriverDashboardQuery) Actor() *account.Account {
	return q.actor
}

func (q GetDriverDashboardQuery) Now() time.Time {
	return q.now
}

// GetDriverDashboardQueryResponse is the driver's home screen.
type GetDriverDashboardQueryResponse struct {
	DeliveriesToday   int64
	ActiveShipments   int64
	CompletedCount    int64
	FailedCount       int64
	CurrentShipment   *CurrentShipmentResponse
	LastKnownLocation *TrackingEntryResponse
}

// CurrentShipmentResponse is the oldest shipment the driver still has to finish.
type CurrentShipmentResponse struct {
	ID              kernel.UUID
	Number          string
	PickupAddress   string
	DeliveryAddress string
	Status          string
}
