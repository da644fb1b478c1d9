package shipment

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment.
//
// State transitions:
//
//	PENDING ──> ASSIGNED ──> PICKED_UP ──> IN_TRANSIT ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │                                        │                                  ▲
//	   │                                        └──────────────────────────────────┘
//	   └──> CANCELLED                    (any non-terminal) ──> FAILED
//
// DELIVERED, FAILED and CANCELLED are terminal.
type Status string

const (
	// Unknown is the zero value and never a valid status.
	Unknown        Status = ""
	Pending        Status = "PENDING"
	Assigned       Status = "ASSIGNED"
	PickedUp       Status = "PICKED_UP"
	InTransit      Status = "IN_TRANSIT"
	OutForDelivery Status = "OUT_FOR_DELIVERY"
	Delivered      Status = "DELIVERED"
	Failed         Status = "FAILED"
	Cancelled      Status = "CANCELLED"
)

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Assigned, PickedUp, InTransit, OutForDelivery, Delivered, Failed, Cancelled}
}

// ActiveStatuses are the statuses in which the assigned driver still has work to do.
func ActiveStatuses() []Status {
	return []Status{Assigned, PickedUp, InTransit, OutForDelivery}
}

// ParseStatus converts external input into a Status.
// An unknown value yields a validation error that enumerates the legal values.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return s, nil
}

// Validate checks membership in the closed enumeration.
func (s Status) Validate() error {
	for _, valid := range Statuses() {
		if s == valid {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status, must be one of: %s", string(s), joinStatuses(Statuses())),
	)
}

func (s Status) String() string {
	if s == Unknown {
		return "UNKNOWN"
	}
	return string(s)
}

// IsTerminal reports whether no further lifecycle action is allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed || s == Cancelled
}

// Assign returns the status after binding a driver.
// PENDING advances to ASSIGNED; the other non-terminal statuses are kept,
// which makes re-assignment idempotent.
func (s Status) Assign() (Status, error) {
	return s.apply(ActionAssign)
}

func (s Status) PickUp() (Status, error) {
	return s.apply(ActionPickUp)
}

func (s Status) StartTransit() (Status, error) {
	return s.apply(ActionStartTransit)
}

func (s Status) SendOutForDelivery() (Status, error) {
	return s.apply(ActionOutForDelivery)
}

func (s Status) Deliver() (Status, error) {
	return s.apply(ActionDeliver)
}

func (s Status) Fail() (Status, error) {
	return s.apply(ActionFail)
}

func (s Status) Cancel() (Status, error) {
	return s.apply(ActionCancel)
}

// Allows reports whether action is legal from s without performing it.
func (s Status) Allows(action Action) bool {
	_, err := s.apply(action)
	return err == nil
}

func (s Status) apply(action Action) (Status, error) {
	if next, ok := transitionTable()[action][s]; ok {
		return next, nil
	}
	return Unknown, errs.NewInvalidTransitionError(s, action)
}

func joinStatuses(statuses []Status) string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
