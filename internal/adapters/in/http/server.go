// Package http serves the customer, driver and admin portals over REST.
package http

import (
	"context"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/ports"
)

// Handler is the shape shared by every command and query handler.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

type shipmentCommand[C any] interface {
	Handle(ctx context.Context, command C) (*shipment.Shipment, error)
}

type accountCommand[C any] interface {
	Handle(ctx context.Context, command C) (*account.Account, error)
}

// Handlers groups the use cases the routes dispatch to.
type Handlers struct {
	Register        accountCommand[commands.RegisterAccountCommand]
	Login           Handler[commands.LoginCommand, commands.LoginResult]
	SetDriverActive accountCommand[commands.SetDriverActiveCommand]

	CreateShipment    shipmentCommand[commands.CreateShipmentCommand]
	CancelShipment    shipmentCommand[commands.CancelShipmentCommand]
	AssignDriver      shipmentCommand[commands.AssignDriverCommand]
	OverrideStatus    shipmentCommand[commands.OverrideStatusCommand]
	AdvanceShipment   shipmentCommand[commands.AdvanceShipmentCommand]
	DeliverShipment   shipmentCommand[commands.DeliverShipmentCommand]
	FailShipment      shipmentCommand[commands.FailShipmentCommand]
	CollectCOD        shipmentCommand[commands.CollectCODCommand]
	ConfirmCustoms    shipmentCommand[commands.ConfirmCustomsClearanceCommand]
	ConfirmPortPickup shipmentCommand[commands.ConfirmPortPickupCommand]
	ReportDelay       shipmentCommand[commands.ReportDelayCommand]
	RecordLocation    Handler[commands.RecordLocationCommand, *tracking.Entry]
	ProcessVoice      Handler[commands.ProcessVoiceCommand, commands.VoiceCommandResult]

	GetShipment        Handler[queries.GetShipmentQuery, shipment.Snapshot]
	ListShipments      Handler[queries.ListShipmentsQuery, []shipment.Snapshot]
	GetTrackingHistory Handler[queries.GetTrackingHistoryQuery, []queries.TrackingEntryResponse]
	GetLastPosition    Handler[queries.GetLastPositionQuery, *queries.TrackingEntryResponse]
	GetDashboard       Handler[queries.GetDriverDashboardQuery, queries.GetDriverDashboardQueryResponse]
	ListDrivers        Handler[queries.ListDriversQuery, []queries.AccountResponse]
	GetDriver          Handler[queries.GetDriverQuery, queries.AccountResponse]
	SynthesizeSpeech   Handler[queries.SynthesizeSpeechQuery, []byte]

	QuotePrice        queries.QuotePriceQueryHandler
	ListVoiceCommands queries.ListVoiceCommandsQueryHandler
}

// defaultMaxAudioBytes caps voice uploads at the transcription service limit.
const defaultMaxAudioBytes = 25 << 20

// Server adapts HTTP requests to commands and queries. Errors flow back to the
// echo error handler, which maps them to status codes.
type Server struct {
	h             Handlers
	credentials   ports.CredentialService
	accounts      AccountLoader
	newID         func() kernel.UUID
	now           func() time.Time
	maxAudioBytes int64
}

func NewServer(h Handlers, credentials ports.CredentialService, accounts AccountLoader) *Server {
	return &Server{
		h:             h,
		credentials:   credentials,
		accounts:      accounts,
		newID:         kernel.NewUUID,
		now:           time.Now,
		maxAudioBytes: defaultMaxAudioBytes,
	}
}
