package queries

import (
	"logistics/internal/core/application/usecases/commands"
)

// VoiceCommandResponse lists example phrasings of one intent.
type VoiceCommandResponse struct {
	Intent   string
	Examples []string
}

// ListVoiceCommandsQueryHandler returns the intents the voice flow acts on.
// The list is static; it takes no query value.
type ListVoiceCommandsQueryHandler struct{}

func NewListVoiceCommandsQueryHandler() ListVoiceCommandsQueryHandler {
	return ListVoiceCommandsQueryHandler{}
}

func (h ListVoiceCommandsQueryHandler) Handle() []VoiceCommandResponse {
	return []VoiceCommandResponse{
		{
			Intent: commands.IntentConfirmPickup,
			Examples: []string{
				"Confirm pickup for shipment SHP123",
				"I've picked up order SHP123",
				"Pickup done for SHP123",
			},
		},
		{
			Intent: commands.IntentConfirmDelivery,
			Examples: []string{
				"Delivered shipment SHP123",
				"Mark SHP123 as delivered",
				"Delivery complete for SHP123",
			},
		},
		{
			Intent: commands.IntentUpdateStatus,
			Examples: []string{
				"Update SHP123 to in transit",
				"Mark SHP123 as out for delivery",
			},
		},
		{
			Intent: commands.IntentReportDelay,
			Examples: []string{
				"Shipment SHP123 is running late due to traffic",
				"SHP123 delayed because of vehicle breakdown",
			},
		},
		{
			Intent: commands.IntentUpdateCOD,
			Examples: []string{
				"Collected 500 rupees for SHP123",
				"COD amount 1000 for shipment SHP456",
			},
		},
	}
}
