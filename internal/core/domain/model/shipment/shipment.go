package shipment

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created through
	// NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

const (
	numberPrefix          = "SHP"
	standardTransitDays   = 5
	heavyCargoExtraDays   = 2
	heavyCargoThresholdKg = 50.0
)

// Details is the customer's booking input for a new shipment.
type Details struct {
	PickupAddress   string
	DeliveryAddress string
	HomePickup      bool
	HomeDelivery    bool
	PackageType     string
	Weight          float64
	Dimensions      string
	Description     string
	Type            Type
	TransportMode   TransportMode
	Port            Port
	IsCOD           bool
	CODAmount       float64
	Express         bool
}

// DeliveryProof is captured by the driver when handing over the shipment.
type DeliveryProof struct {
	Signature string
	PhotoURL  string
	Notes     string
}

// Snapshot is the complete persisted state of a shipment. Repositories and read
// models use it; domain code goes through the aggregate's methods.
type Snapshot struct {
	ID                  kernel.UUID
	Number              string
	CustomerID          kernel.UUID
	DriverID            *kernel.UUID
	Details             Details
	Price               Price
	Status              Status
	CustomsStatus       CustomsStatus
	CODStatus           CODStatus
	FailureReason       FailureReason
	FailureNotes        string
	DelayReason         DelayReason
	DelayNotes          string
	Signature           string
	PhotoURL            string
	EstimatedDelivery   time.Time
	ActualDelivery      *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	PickupCompletedAt   *time.Time
	DeliveryAttemptedAt *time.Time
	CustomsClearedAt    *time.Time
	CODCollectedAt      *time.Time
	DelayReportedAt     *time.Time
}

// Shipment is the aggregate root of the shipment lifecycle.
//
// Shipment follows these invariants:
//   - customer is set at creation and never changes
//   - every status change goes through the transition table, except OverrideStatus
//   - actualDelivery is non-nil if and only if status is DELIVERED
//   - codAmount is positive if and only if the shipment is COD
//   - failure metadata is present only while status is FAILED
//   - event timestamps are written when their event happens and never moved back
type Shipment struct {
	id         kernel.UUID
	number     string
	customerID kernel.UUID
	driverID   *kernel.UUID

	details Details
	price   Price

	status        Status
	customsStatus CustomsStatus
	codStatus     CODStatus

	failureReason FailureReason
	failureNotes  string
	delayReason   DelayReason
	delayNotes    string
	signature     string
	photoURL      string

	estimatedDelivery   time.Time
	actualDelivery      *time.Time
	createdAt           time.Time
	updatedAt           time.Time
	pickupCompletedAt   *time.Time
	deliveryAttemptedAt *time.Time
	customsClearedAt    *time.Time
	codCollectedAt      *time.Time
	delayReportedAt     *time.Time

	events []Event

	isConstructed bool
}

// NewShipment books a shipment for a customer. The shipment starts PENDING with
// no driver, its number derived from id and its estimated delivery computed from
// the cargo weight.
//
// Parameters:
//   - id: identifier of the new shipment
//   - customerID: owning customer, immutable afterwards
//   - details: booking input; addresses are required and weight must be positive
//   - price: breakdown computed by the pricing service
//   - now: creation time
//
// Returns:
//   - *Shipment: the created shipment carrying an EventCreated event
//   - error: every validation failure, joined
//
// Example:
//
//	s, err := shipment.NewShipment(kernel.NewUUID(), customerID, shipment.Details{
//	    PickupAddress:   "A",
//	    DeliveryAddress: "B",
//	    Weight:          10,
//	    Type:            shipment.Domestic,
//	}, price, time.Now())
func NewShipment(id, customerID kernel.UUID, details Details, price Price, now time.Time) (*Shipment, error) {
	s := &Shipment{
		status:        Pending,
		codStatus:     CODNotApplicable,
		customsStatus: CustomsNotRequired,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setCustomer(customerID),
		s.setDetails(details),
		s.setPrice(price),
	); err != nil {
		return nil, err
	}

	s.number = NumberFromID(id)
	if s.details.IsCOD {
		s.codStatus = CODPending
	}
	if s.details.Type == International {
		s.customsStatus = CustomsPending
	}
	s.estimatedDelivery = estimateDelivery(now, s.details.Weight)

	s.raise(EventCreated, "", "", now)
	return s, nil
}

// RestoreShipment rebuilds a shipment from persisted state and checks the
// cross-field invariants. It raises no events.
func RestoreShipment(snapshot Snapshot) (*Shipment, error) {
	s := &Shipment{
		number:              snapshot.Number,
		driverID:            snapshot.DriverID,
		status:              snapshot.Status,
		customsStatus:       snapshot.CustomsStatus,
		codStatus:           snapshot.CODStatus,
		failureReason:       snapshot.FailureReason,
		failureNotes:        snapshot.FailureNotes,
		delayReason:         snapshot.DelayReason,
		delayNotes:          snapshot.DelayNotes,
		signature:           snapshot.Signature,
		photoURL:            snapshot.PhotoURL,
		estimatedDelivery:   snapshot.EstimatedDelivery,
		actualDelivery:      snapshot.ActualDelivery,
		createdAt:           snapshot.CreatedAt,
		updatedAt:           snapshot.UpdatedAt,
		pickupCompletedAt:   snapshot.PickupCompletedAt,
		deliveryAttemptedAt: snapshot.DeliveryAttemptedAt,
		customsClearedAt:    snapshot.CustomsClearedAt,
		codCollectedAt:      snapshot.CODCollectedAt,
		delayReportedAt:     snapshot.DelayReportedAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		s.setID(snapshot.ID),
		s.setCustomer(snapshot.CustomerID),
		s.setDetails(snapshot.Details),
		s.setPrice(snapshot.Price),
		s.status.Validate(),
		s.validateNumber(),
		s.validateDeliveryInvariant(),
		s.validateFailureInvariant(),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// NumberFromID derives the human-facing number: "SHP" followed by the first
// four bytes of the identifier in upper-case hex.
func NumberFromID(id kernel.UUID) string {
	raw := id.Bytes()
	return numberPrefix + strings.ToUpper(hex.EncodeToString(raw[:4]))
}

// Validate ensures the Shipment was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Number returns the human-facing shipment number.
func (s *Shipment) Number() string {
	return s.number
}

// CustomerID returns the owning customer.
func (s *Shipment) CustomerID() kernel.UUID {
	return s.customerID
}

// DriverID returns the bound driver, or nil before assignment.
func (s *Shipment) DriverID() *kernel.UUID {
	return copyID(s.driverID)
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) Details() Details {
	return s.details
}

func (s *Shipment) Price() Price {
	return s.price
}

func (s *Shipment) CODStatus() CODStatus {
	return s.codStatus
}

func (s *Shipment) CustomsStatus() CustomsStatus {
	return s.customsStatus
}

// ActualDelivery is non-nil only while the status is DELIVERED.
func (s *Shipment) ActualDelivery() *time.Time {
	return copyTime(s.actualDelivery)
}

func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// IsAssignedTo reports whether driverID is the bound driver.
func (s *Shipment) IsAssignedTo(driverID kernel.UUID) bool {
	return s.driverID != nil && s.driverID.IsEqual(driverID)
}

// IsOwnedBy reports whether customerID booked the shipment.
func (s *Shipment) IsOwnedBy(customerID kernel.UUID) bool {
	return s.customerID.IsEqual(customerID)
}

// Snapshot returns a copy of the full state.
func (s *Shipment) Snapshot() Snapshot {
	return Snapshot{
		ID:                  s.id,
		Number:              s.number,
		CustomerID:          s.customerID,
		DriverID:            copyID(s.driverID),
		Details:             s.details,
		Price:               s.price,
		Status:              s.status,
		CustomsStatus:       s.customsStatus,
		CODStatus:           s.codStatus,
		FailureReason:       s.failureReason,
		FailureNotes:        s.failureNotes,
		DelayReason:         s.delayReason,
		DelayNotes:          s.delayNotes,
		Signature:           s.signature,
		PhotoURL:            s.photoURL,
		EstimatedDelivery:   s.estimatedDelivery,
		ActualDelivery:      copyTime(s.actualDelivery),
		CreatedAt:           s.createdAt,
		UpdatedAt:           s.updatedAt,
		PickupCompletedAt:   copyTime(s.pickupCompletedAt),
		DeliveryAttemptedAt: copyTime(s.deliveryAttemptedAt),
		CustomsClearedAt:    copyTime(s.customsClearedAt),
		CODCollectedAt:      copyTime(s.codCollectedAt),
		DelayReportedAt:     copyTime(s.delayReportedAt),
	}
}

// Events returns the events raised since the aggregate was loaded or created.
func (s *Shipment) Events() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// ClearEvents drops the raised events once they have been dispatched.
func (s *Shipment) ClearEvents() {
	s.events = nil
}

// AssignDriver binds a driver to the shipment.
//
// This method enforces the following business rules:
//   - PENDING advances to ASSIGNED
//   - ASSIGNED through OUT_FOR_DELIVERY keep their status; only the driver is swapped
//   - terminal shipments reject the action with InvalidTransitionError
//
// Whether the driver exists and is an active DRIVER account is checked by
// services.ShipmentDispatcher before this method is called.
func (s *Shipment) AssignDriver(driverID kernel.UUID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Assign()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.driverID = &driverID
	s.touch(at)
	s.raise(EventDriverAssigned, "", "", at)
	return nil
}

// MarkPickedUp moves ASSIGNED to PICKED_UP and records the pickup time.
func (s *Shipment) MarkPickedUp(notes string, at time.Time) error {
	newStatus, err := s.status.PickUp()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.pickupCompletedAt = setOnce(s.pickupCompletedAt, at)
	s.touch(at)
	s.raise(EventPickedUp, describe("Shipment picked up", notes), "", at)
	return nil
}

// ConfirmPortPickup is MarkPickedUp for cargo collected at a port, airport or
// warehouse. portLocation is free text and is kept as the ledger location name.
func (s *Shipment) ConfirmPortPickup(portLocation, notes string, at time.Time) error {
	portLocation = strings.TrimSpace(portLocation)
	if portLocation == "" {
		return errs.NewValueIsRequiredError("port location")
	}

	newStatus, err := s.status.PickUp()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.pickupCompletedAt = setOnce(s.pickupCompletedAt, at)
	s.touch(at)
	s.raise(EventPickedUp, describe("Picked up from "+portLocation, notes), portLocation, at)
	return nil
}

// MarkInTransit moves PICKED_UP to IN_TRANSIT.
func (s *Shipment) MarkInTransit(notes string, at time.Time) error {
	newStatus, err := s.status.StartTransit()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch(at)
	s.raise(EventInTransit, describe("Shipment in transit", notes), "", at)
	return nil
}

// MarkOutForDelivery moves IN_TRANSIT to OUT_FOR_DELIVERY.
func (s *Shipment) MarkOutForDelivery(notes string, at time.Time) error {
	newStatus, err := s.status.SendOutForDelivery()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch(at)
	s.raise(EventOutForDelivery, describe("Out for delivery", notes), "", at)
	return nil
}

// MarkDelivered moves IN_TRANSIT or OUT_FOR_DELIVERY to DELIVERED, stores the
// proof of delivery and sets the actual delivery time.
func (s *Shipment) MarkDelivered(proof DeliveryProof, at time.Time) error {
	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}

	delivered := at
	s.status = newStatus
	s.actualDelivery = &delivered
	s.signature = proof.Signature
	s.photoURL = proof.PhotoURL
	s.touch(at)
	s.raise(EventDelivered, describe("Delivered successfully", proof.Notes), "", at)
	return nil
}

// MarkFailed moves any non-terminal status to FAILED with a reason from the closed set.
func (s *Shipment) MarkFailed(reason FailureReason, notes string, at time.Time) error {
	if !isOneOf(reason, FailureReasons()) {
		return invalidEnumError("failure reason", string(reason), FailureReasons())
	}

	newStatus, err := s.status.Fail()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.failureReason = reason
	s.failureNotes = notes
	s.deliveryAttemptedAt = setOnce(s.deliveryAttemptedAt, at)
	s.touch(at)
	s.raise(EventFailed, describe(fmt.Sprintf("Delivery failed: %s", reason), notes), "", at)
	return nil
}

// Cancel moves PENDING to CANCELLED. Ownership is checked by the access guard.
func (s *Shipment) Cancel(at time.Time) error {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch(at)
	s.raise(EventCancelled, "Shipment cancelled", "", at)
	return nil
}

// OverrideStatus sets any known status regardless of the transition table.
// It is the administrative correction path: only enumeration membership is
// checked. The delivery and failure invariants are kept by setting or clearing
// the derived fields.
func (s *Shipment) OverrideStatus(status Status, at time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	s.status = status
	if status == Delivered {
		delivered := at
		s.actualDelivery = &delivered
	} else {
		s.actualDelivery = nil
	}
	if status != Failed {
		s.failureReason = ""
		s.failureNotes = ""
	}
	s.touch(at)
	s.raise(EventStatusOverridden, fmt.Sprintf("Status set to %s by administrator", status), "", at)
	return nil
}

// CollectCOD records cash collected by the driver. The amount must match the
// booked COD amount to the cent; a mismatch is a validation error in every
// status.
func (s *Shipment) CollectCOD(amount float64, at time.Time) error {
	if !s.details.IsCOD {
		return errs.NewValueIsInvalidErrorWithCause("cod", errors.New("shipment is not COD"))
	}
	if toCents(amount) != toCents(s.details.CODAmount) {
		return errs.NewValueIsInvalidErrorWithCause(
			"cod amount",
			fmt.Errorf("amount mismatch, expected: %.2f, got: %.2f", s.details.CODAmount, amount),
		)
	}
	if err := s.requireSideActionStatus(ActionCollectCOD); err != nil {
		return err
	}
	if s.codStatus == CODCollected {
		return errs.NewValueIsInvalidErrorWithCause("cod", errors.New("COD already collected"))
	}

	s.codStatus = CODCollected
	s.codCollectedAt = setOnce(s.codCollectedAt, at)
	s.touch(at)
	s.raise(EventCODCollected, fmt.Sprintf("COD collected: %.2f", amount), "", at)
	return nil
}

// ConfirmCustomsClearance marks an international shipment as cleared.
func (s *Shipment) ConfirmCustomsClearance(notes string, at time.Time) error {
	if s.details.Type != International {
		return errs.NewValueIsInvalidErrorWithCause("shipment type", errors.New("shipment is not international"))
	}
	if err := s.requireSideActionStatus(ActionConfirmCustoms); err != nil {
		return err
	}
	if s.customsStatus == CustomsCleared {
		return errs.NewValueIsInvalidErrorWithCause("customs status", errors.New("customs already cleared"))
	}

	s.customsStatus = CustomsCleared
	s.customsClearedAt = setOnce(s.customsClearedAt, at)
	s.touch(at)
	s.raise(EventCustomsCleared, describe("Customs cleared", notes), "", at)
	return nil
}

// ReportDelay records a delay without changing the status. The latest report
// replaces the reason, notes and report time; every report reaches the ledger.
func (s *Shipment) ReportDelay(reason DelayReason, notes string, at time.Time) error {
	if !isOneOf(reason, DelayReasons()) {
		return invalidEnumError("delay reason", string(reason), DelayReasons())
	}
	if err := s.requireSideActionStatus(ActionReportDelay); err != nil {
		return err
	}

	reported := at
	s.delayReason = reason
	s.delayNotes = notes
	s.delayReportedAt = &reported
	s.touch(at)
	s.raise(EventDelayReported, describe(fmt.Sprintf("Delay reported: %s", reason), notes), "", at)
	return nil
}

func (s *Shipment) requireSideActionStatus(action Action) error {
	if isOneOf(s.status, sideActionStatuses()[action]) {
		return nil
	}
	return errs.NewInvalidTransitionError(s.status, action)
}

func (s *Shipment) touch(at time.Time) {
	if at.After(s.updatedAt) {
		s.updatedAt = at
	}
}

func (s *Shipment) raise(kind EventKind, note, locationName string, at time.Time) {
	s.events = append(s.events, Event{
		ID:           kernel.NewUUID(),
		Kind:         kind,
		ShipmentID:   s.id,
		Number:       s.number,
		Status:       s.status,
		DriverID:     copyID(s.driverID),
		Note:         note,
		LocationName: locationName,
		OccurredAt:   at,
	})
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	s.customerID = customerID
	return nil
}

func (s *Shipment) setDetails(d Details) error {
	d.PickupAddress = strings.TrimSpace(d.PickupAddress)
	d.DeliveryAddress = strings.TrimSpace(d.DeliveryAddress)
	if d.Type == "" {
		d.Type = Domestic
	}

	var problems []error
	if d.PickupAddress == "" {
		problems = append(problems, errs.NewValueIsRequiredError("pickup address"))
	}
	if d.DeliveryAddress == "" {
		problems = append(problems, errs.NewValueIsRequiredError("delivery address"))
	}
	if d.Weight <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%.2f is not greater than 0", d.Weight)))
	}
	if !isOneOf(d.Type, Types()) {
		problems = append(problems, invalidEnumError("shipment type", string(d.Type), Types()))
	}
	if d.Type == International {
		if !isOneOf(d.TransportMode, TransportModes()) {
			problems = append(problems, invalidEnumError("transport mode", string(d.TransportMode), TransportModes()))
		}
		if d.Port != "" && !isOneOf(d.Port, Ports()) {
			problems = append(problems, invalidEnumError("port", string(d.Port), Ports()))
		}
	} else {
		d.TransportMode = ""
		d.Port = ""
	}
	if d.IsCOD && d.CODAmount <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"cod amount", fmt.Errorf("%.2f is not greater than 0 for a COD shipment", d.CODAmount)))
	}
	if !d.IsCOD && d.CODAmount != 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"cod amount", errors.New("must be empty for a non-COD shipment")))
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}

	s.details = d
	return nil
}

func (s *Shipment) setPrice(p Price) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.price = p
	return nil
}

func (s *Shipment) validateNumber() error {
	if !strings.HasPrefix(s.number, numberPrefix) {
		return errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%q has no %s prefix", s.number, numberPrefix))
	}
	return nil
}

func (s *Shipment) validateDeliveryInvariant() error {
	if s.status == Delivered && s.actualDelivery == nil {
		return errs.NewValueIsRequiredError("actual delivery")
	}
	if s.status != Delivered && s.actualDelivery != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"actual delivery", fmt.Errorf("must be empty while status is %s", s.status))
	}
	return nil
}

func (s *Shipment) validateFailureInvariant() error {
	if s.status != Failed && s.failureReason != "" {
		return errs.NewValueIsInvalidErrorWithCause(
			"failure reason", fmt.Errorf("must be empty while status is %s", s.status))
	}
	return nil
}

func estimateDelivery(now time.Time, weight float64) time.Time {
	days := standardTransitDays
	if weight > heavyCargoThresholdKg {
		days += heavyCargoExtraDays
	}
	return now.AddDate(0, 0, days)
}

func describe(text, notes string) string {
	if strings.TrimSpace(notes) == "" {
		notes = "None"
	}
	return fmt.Sprintf("%s. Notes: %s", text, notes)
}

func setOnce(current *time.Time, at time.Time) *time.Time {
	if current != nil {
		return current
	}
	return &at
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
