package shipment

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Type distinguishes domestic from international shipments.
type Type string

const (
	Domestic      Type = "domestic"
	International Type = "international"
)

func Types() []Type { return []Type{Domestic, International} }

// TransportMode applies to international shipments only.
type TransportMode string

const (
	ModeAir   TransportMode = "air"
	ModeSea   TransportMode = "sea"
	ModeTruck TransportMode = "truck"
)

func TransportModes() []TransportMode { return []TransportMode{ModeAir, ModeSea, ModeTruck} }

// Port is the port or airport an international shipment enters through.
type Port string

const (
	MumbaiPort       Port = "mumbai_port"
	MumbaiAirport    Port = "mumbai_airport"
	DelhiAirport     Port = "delhi_airport"
	ChennaiPort      Port = "chennai_port"
	ChennaiAirport   Port = "chennai_airport"
	KolkataPort      Port = "kolkata_port"
	BangaloreAirport Port = "bangalore_airport"
	HyderabadAirport Port = "hyderabad_airport"
	MundraPort       Port = "mundra_port"
	NhavaShevaPort   Port = "nhava_sheva_port"
)

func Ports() []Port {
	return []Port{
		MumbaiPort, MumbaiAirport, DelhiAirport, ChennaiPort, ChennaiAirport,
		KolkataPort, BangaloreAirport, HyderabadAirport, MundraPort, NhavaShevaPort,
	}
}

// CustomsStatus tracks clearance of an international shipment.
type CustomsStatus string

const (
	CustomsNotRequired CustomsStatus = ""
	CustomsPending     CustomsStatus = "pending"
	CustomsInProgress  CustomsStatus = "in_progress"
	CustomsCleared     CustomsStatus = "cleared"
	CustomsHeld        CustomsStatus = "held"
)

func CustomsStatuses() []CustomsStatus {
	return []CustomsStatus{CustomsPending, CustomsInProgress, CustomsCleared, CustomsHeld}
}

// FailureReason explains a failed delivery attempt.
type FailureReason string

const (
	FailureRecipientNotAvailable FailureReason = "recipient_not_available"
	FailureWrongAddress          FailureReason = "wrong_address"
	FailurePhoneUnreachable      FailureReason = "phone_unreachable"
	FailureRefusedDelivery       FailureReason = "refused_delivery"
	FailureAddressIncomplete     FailureReason = "address_incomplete"
	FailureOther                 FailureReason = "other"
)

func FailureReasons() []FailureReason {
	return []FailureReason{
		FailureRecipientNotAvailable, FailureWrongAddress, FailurePhoneUnreachable,
		FailureRefusedDelivery, FailureAddressIncomplete, FailureOther,
	}
}

// DelayReason explains a reported delay. Delays do not change the status.
type DelayReason string

const (
	DelayTrafficJam       DelayReason = "traffic_jam"
	DelayVehicleBreakdown DelayReason = "vehicle_breakdown"
	DelayWeather          DelayReason = "weather"
	DelayAccident         DelayReason = "accident"
	DelayCustoms          DelayReason = "customs_delay"
	DelayOther            DelayReason = "other"
)

func DelayReasons() []DelayReason {
	return []DelayReason{DelayTrafficJam, DelayVehicleBreakdown, DelayWeather, DelayAccident, DelayCustoms, DelayOther}
}

// CODStatus tracks cash-on-delivery collection.
type CODStatus string

const (
	CODNotApplicable CODStatus = "not_applicable"
	CODPending       CODStatus = "pending"
	CODCollected     CODStatus = "collected"
)

func CODStatuses() []CODStatus { return []CODStatus{CODNotApplicable, CODPending, CODCollected} }

func ParseType(raw string) (Type, error) {
	return parseEnum("shipment type", raw, Types())
}

func ParseTransportMode(raw string) (TransportMode, error) {
	return parseEnum("transport mode", raw, TransportModes())
}

func ParsePort(raw string) (Port, error) {
	return parseEnum("port", raw, Ports())
}

func ParseCustomsStatus(raw string) (CustomsStatus, error) {
	return parseEnum("customs status", raw, CustomsStatuses())
}

func ParseFailureReason(raw string) (FailureReason, error) {
	return parseEnum("failure reason", raw, FailureReasons())
}

func ParseDelayReason(raw string) (DelayReason, error) {
	return parseEnum("delay reason", raw, DelayReasons())
}

func ParseCODStatus(raw string) (CODStatus, error) {
	return parseEnum("cod status", raw, CODStatuses())
}

func parseEnum[T ~string](param, raw string, valid []T) (T, error) {
	candidate := T(strings.ToLower(strings.TrimSpace(raw)))
	if isOneOf(candidate, valid) {
		return candidate, nil
	}

	var zero T
	return zero, invalidEnumError(param, raw, valid)
}

func invalidEnumError[T ~string](param, raw string, valid []T) error {
	names := make([]string, len(valid))
	for i, v := range valid {
		names[i] = string(v)
	}
	return errs.NewValueIsInvalidErrorWithCause(
		param,
		fmt.Errorf("%q is not valid, must be one of: %s", raw, strings.Join(names, ", ")),
	)
}

func isOneOf[T comparable](value T, valid []T) bool {
	for _, v := range valid {
		if value == v {
			return true
		}
	}
	return false
}
