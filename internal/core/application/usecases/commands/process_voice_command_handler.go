package commands

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// Intents the voice flow acts on.
const (
	IntentConfirmPickup   = "confirm_pickup"
	IntentConfirmDelivery = "confirm_delivery"
	IntentUpdateStatus    = "update_status"
	IntentReportDelay     = "report_delay"
	IntentUpdateCOD       = "update_cod"
	IntentUnknown         = "unknown"
)

const voiceNotUnderstood = "I didn't understand that command. Try saying " +
	"'confirm pickup for shipment SHP1A2B3C4D' or 'mark SHP1A2B3C4D as delivered'."

var (
	ErrEmptyTranscription = errs.NewValueIsInvalidErrorWithCause("audio", errors.New("could not transcribe audio"))

	shipmentNumberPattern = regexp.MustCompile(`(?i)SHP[-_]?\w+`)
)

// ShipmentLocator resolves a spoken shipment number to its identifier.
type ShipmentLocator interface {
	ShipmentIDByNumber(ctx context.Context, number string) (kernel.UUID, error)
}

// ShipmentLocatorFunc adapts a function to ShipmentLocator.
type ShipmentLocatorFunc func(ctx context.Context, number string) (kernel.UUID, error)

func (f ShipmentLocatorFunc) ShipmentIDByNumber(ctx context.Context, number string) (kernel.UUID, error) {
	return f(ctx, number)
}

// VoiceCommandResult describes what the voice flow understood and did.
// Shipment is nil when no action was taken.
type VoiceCommandResult struct {
	Transcription string
	Intent        string
	Confidence    float64
	ActionTaken   string
	Message       string
	Shipment      *shipment.Shipment
}

// ProcessVoiceCommandHandler transcribes a driver's instruction, classifies
// it and dispatches to the same guarded handlers the HTTP routes use.
//
// Failure handling:
//   - transcription errors are returned as is
//   - classifier errors and unknown intents produce a "did not understand" reply
//   - errors of the dispatched command are returned unchanged
type ProcessVoiceCommandHandler struct {
	recognizer ports.SpeechRecognizer
	classifier ports.IntentClassifier
	locator    ShipmentLocator

	advance AdvanceShipmentCommandHandler
	deliver DeliverShipmentCommandHandler
	delay   ReportDelayCommandHandler
	cod     CollectCODCommandHandler
}

func NewProcessVoiceCommandHandler(
	recognizer ports.SpeechRecognizer,
	classifier ports.IntentClassifier,
	locator ShipmentLocator,
	uowFactory ShipmentUoWFactory,
) ProcessVoiceCommandHandler {
	return ProcessVoiceCommandHandler{
		recognizer: recognizer,
		classifier: classifier,
		locator:    locator,
		advance:    NewAdvanceShipmentCommandHandler(uowFactory),
		deliver:    NewDeliverShipmentCommandHandler(uowFactory),
		delay:      NewReportDelayCommandHandler(uowFactory),
		cod:        NewCollectCODCommandHandler(uowFactory),
	}
}

func (h ProcessVoiceCommandHandler) Handle(ctx context.Context, command ProcessVoiceCommand) (VoiceCommandResult, error) {
	if err := command.Validate(); err != nil {
		return VoiceCommandResult{}, err
	}

	text, err := h.recognizer.Transcribe(ctx, command.Audio(), command.Filename())
	if err != nil {
		return VoiceCommandResult{}, fmt.Errorf("transcribe: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return VoiceCommandResult{}, ErrEmptyTranscription
	}

	intent, err := h.classifier.Classify(ctx, text)
	if err != nil {
		intent = ports.Intent{Name: IntentUnknown}
	}

	result := VoiceCommandResult{
		Transcription: text,
		Intent:        intent.Name,
		Confidence:    intent.Confidence,
	}

	switch intent.Name {
	case IntentConfirmPickup, IntentConfirmDelivery, IntentUpdateStatus, IntentReportDelay, IntentUpdateCOD:
	default:
		result.Intent = IntentUnknown
		result.Message = voiceNotUnderstood
		return result, nil
	}

	number := shipmentNumber(intent.Entities, text)
	if number == "" {
		result.Message = "Which shipment do you mean? Please say its number, for example SHP1A2B3C4D."
		return result, nil
	}

	shipmentID, err := h.locator.ShipmentIDByNumber(ctx, number)
	if err != nil {
		return VoiceCommandResult{}, err
	}

	return h.dispatch(ctx, command, result, intent, number, shipmentID)
}

func (h ProcessVoiceCommandHandler) dispatch(
	ctx context.Context,
	command ProcessVoiceCommand,
	result VoiceCommandResult,
	intent ports.Intent,
	number string,
	shipmentID kernel.UUID,
) (VoiceCommandResult, error) {
	const voiceNote = "Confirmed by voice"
	actor := command.Actor()

	var (
		updated *shipment.Shipment
		err     error
	)

	switch intent.Name {
	case IntentConfirmPickup:
		updated, err = h.runAdvance(ctx, command, shipmentID, shipment.ActionPickUp, voiceNote)
		result.ActionTaken = "Confirmed pickup for " + number
		result.Message = fmt.Sprintf("Pickup confirmed for shipment %s!", number)

	case IntentConfirmDelivery:
		var cmd DeliverShipmentCommand
		if cmd, err = NewDeliverShipmentCommand(actor, shipmentID, shipment.DeliveryProof{Notes: voiceNote}); err == nil {
			updated, err = h.deliver.Handle(ctx, cmd)
		}
		result.ActionTaken = "Confirmed delivery for " + number
		result.Message = fmt.Sprintf("Delivery confirmed for shipment %s!", number)

	case IntentUpdateStatus:
		target := normalizeStatus(intent.Entities["status"])
		if target == shipment.Delivered {
			return h.dispatch(ctx, command, result, ports.Intent{Name: IntentConfirmDelivery}, number, shipmentID)
		}
		action, ok := advanceActionFor(target)
		if !ok {
			result.Message = "I couldn't identify the new status. Please try again."
			return result, nil
		}
		updated, err = h.runAdvance(ctx, command, shipmentID, action, voiceNote)
		result.ActionTaken = fmt.Sprintf("Updated shipment %s to %s", number, target)
		result.Message = fmt.Sprintf("Got it! Shipment %s marked as %s.", number, target)

	case IntentReportDelay:
		rawReason := strings.TrimSpace(intent.Entities["reason"])
		reason, parseErr := shipment.ParseDelayReason(strings.ReplaceAll(rawReason, " ", "_"))
		if parseErr != nil {
			reason = shipment.DelayOther
		}
		var cmd ReportDelayCommand
		if cmd, err = NewReportDelayCommand(actor, shipmentID, string(reason), rawReason); err == nil {
			updated, err = h.delay.Handle(ctx, cmd)
		}
		result.ActionTaken = fmt.Sprintf("Logged delay for %s: %s", number, reason)
		result.Message = fmt.Sprintf("Delay reported: %s. Dispatch has been notified.", reason)

	case IntentUpdateCOD:
		amount, parseErr := strconv.ParseFloat(strings.TrimSpace(intent.Entities["amount"]), 64)
		if parseErr != nil || amount <= 0 {
			result.Message = "Please specify the shipment number and the amount collected."
			return result, nil
		}
		var cmd CollectCODCommand
		if cmd, err = NewCollectCODCommand(actor, shipmentID, amount); err == nil {
			updated, err = h.cod.Handle(ctx, cmd)
		}
		result.ActionTaken = "Recorded COD for " + number
		result.Message = fmt.Sprintf("COD of %.2f recorded for shipment %s.", amount, number)
	}

	if err != nil {
		return VoiceCommandResult{}, err
	}

	result.Shipment = updated
	return result, nil
}

func (h ProcessVoiceCommandHandler) runAdvance(
	ctx context.Context,
	command ProcessVoiceCommand,
	shipmentID kernel.UUID,
	action shipment.Action,
	notes string,
) (*shipment.Shipment, error) {
	cmd, err := NewAdvanceShipmentCommand(command.Actor(), shipmentID, action, notes)
	if err != nil {
		return nil, err
	}
	return h.advance.Handle(ctx, cmd)
}

// shipmentNumber prefers the classifier's entity and falls back to scanning the
// transcription. The result is upper-case without separators.
func shipmentNumber(entities map[string]string, text string) string {
	candidate := strings.TrimSpace(entities["shipment_id"])
	if candidate == "" {
		candidate = strings.TrimSpace(entities["shipment_number"])
	}
	if candidate == "" || !shipmentNumberPattern.MatchString(candidate) {
		candidate = shipmentNumberPattern.FindString(text)
	}
	if candidate == "" {
		return ""
	}

	candidate = strings.ToUpper(candidate)
	return strings.NewReplacer("-", "", "_", "").Replace(candidate)
}

func normalizeStatus(raw string) shipment.Status {
	raw = strings.NewReplacer(" ", "_", "-", "_").Replace(strings.TrimSpace(raw))
	status, err := shipment.ParseStatus(raw)
	if err != nil {
		return shipment.Unknown
	}
	return status
}

func advanceActionFor(status shipment.Status) (shipment.Action, bool) {
	switch status {
	case shipment.PickedUp:
		return shipment.ActionPickUp, true
	case shipment.InTransit:
		return shipment.ActionStartTransit, true
	case shipment.OutForDelivery:
		return shipment.ActionOutForDelivery, true
	default:
		return "", false
	}
}
