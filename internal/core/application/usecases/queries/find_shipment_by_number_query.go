package queries

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrFindShipmentByNumberQueryIsNotConstructed = errors.New(
	"FindShipmentByNumberQuery must be created via NewFindShipmentByNumberQuery constructor",
)

// FindShipmentByNumberQuery resolves a human-facing shipment number such as
// "SHP1A2B3C4D". Matching ignores case and a separator after the prefix, so
// "shp-1a2b3c4d" finds the same shipment.
type FindShipmentByNumberQuery struct {
	number string

	guard guard.ConstructorGuard
}

func NewFindShipmentByNumberQuery(number string) (FindShipmentByNumberQuery, error) {
	normalized := normalizeNumber(number)
	if normalized == "" {
		return FindShipmentByNumberQuery{}, errs.NewValueIsRequiredError("shipment number")
	}

	return FindShipmentByNumberQuery{number: normalized, guard: guard.NewConstructorGuard()}, nil
}

func (q FindShipmentByNumberQuery) Validate() error {
	return q.guard.Validate(ErrFindShipmentByNumberQueryIsNotConstructed)
}

func (q FindShipmentByNumberQuery) Number() string {
	return q.number
}

func normalizeNumber(raw string) string {
	n := strings.ToUpper(strings.TrimSpace(raw))
	if rest, ok := strings.CutPrefix(n, "SHP"); ok {
		n = "SHP" + strings.TrimLeft(rest, "-_")
	}
	return n
}
