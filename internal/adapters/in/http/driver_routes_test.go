package http

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverRoutes_Advance(t *testing.T) {
	var got []commands.AdvanceShipmentCommand
	target := newTestShipment(t, kernel.NewUUID())

	hs := newHarness(t, Handlers{
		AdvanceShipment: handlerFunc[commands.AdvanceShipmentCommand, *shipment.Shipment](
			func(_ context.Context, cmd commands.AdvanceShipmentCommand) (*shipment.Shipment, error) {
				got = append(got, cmd)
				if cmd.Action() == shipment.ActionOutForDelivery {
					return nil, errs.NewInvalidTransitionError(shipment.PickedUp, cmd.Action())
				}
				return target, nil
			}),
	})
	path := "/api/v1/driver/shipments/" + target.ID().String()

	t.Run("pickup", func(t *testing.T) {
		rec := hs.do(http.MethodPost, path+"/pickup", "driver-token", NotesRequest{Notes: "two cartons"})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		last := got[len(got)-1]
		assert.Equal(t, shipment.ActionPickUp, last.Action())
		assert.Equal(t, "two cartons", last.Notes())
		assert.True(t, last.ShipmentID().IsEqual(target.ID()))
		assert.True(t, last.Actor().ID().IsEqual(hs.driver.ID()))
	})

	t.Run("in_transit", func(t *testing.T) {
		rec := hs.do(http.MethodPost, path+"/in-transit", "driver-token", NotesRequest{})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, shipment.ActionStartTransit, got[len(got)-1].Action())
	})

	t.Run("illegal_transition_conflicts", func(t *testing.T) {
		rec := hs.do(http.MethodPost, path+"/out-for-delivery", "driver-token", NotesRequest{})

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "invalid transition: cannot mark out for delivery from PICKED_UP", decode[Error](t, rec).Message)
	})

	t.Run("customer_token_is_forbidden", func(t *testing.T) {
		calls := len(got)
		rec := hs.do(http.MethodPost, path+"/pickup", "customer-token", NotesRequest{})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Len(t, got, calls)
	})

	t.Run("malformed_id_is_bad_request", func(t *testing.T) {
		calls := len(got)
		rec := hs.do(http.MethodPost, "/api/v1/driver/shipments/SHP0001/pickup", "driver-token", NotesRequest{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Len(t, got, calls)
	})
}

func TestDriverRoutes_Exceptions(t *testing.T) {
	target := newTestShipment(t, kernel.NewUUID())
	var failed commands.FailShipmentCommand
	var delivered commands.DeliverShipmentCommand

	hs := newHarness(t, Handlers{
		FailShipment: handlerFunc[commands.FailShipmentCommand, *shipment.Shipment](
			func(_ context.Context, cmd commands.FailShipmentCommand) (*shipment.Shipment, error) {
				failed = cmd
				return target, nil
			}),
		DeliverShipment: handlerFunc[commands.DeliverShipmentCommand, *shipment.Shipment](
			func(_ context.Context, cmd commands.DeliverShipmentCommand) (*shipment.Shipment, error) {
				delivered = cmd
				return target, nil
			}),
	})
	path := "/api/v1/driver/shipments/" + target.ID().String()

	t.Run("fail_with_reason", func(t *testing.T) {
		rec := hs.do(http.MethodPost, path+"/fail", "driver-token", FailRequest{
			FailureReason: "recipient_not_available", Notes: "rang twice",
		})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, shipment.FailureRecipientNotAvailable, failed.Reason())
		assert.Equal(t, "rang twice", failed.Notes())
	})

	t.Run("unknown_failure_reason_is_bad_request", func(t *testing.T) {
		rec := hs.do(http.MethodPost, path+"/fail", "driver-token", FailRequest{FailureReason: "dog"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing_failure_reason_is_unprocessable", func(t *testing.T) {
		rec := hs.do(http.MethodPost, path+"/fail", "driver-token", FailRequest{})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("deliver_carries_proof", func(t *testing.T) {
		rec := hs.do(http.MethodPost, path+"/deliver", "driver-token", DeliverRequest{
			Signature: "data:image/png;base64,iVBORw0K", PhotoProof: "https://cdn.example.com/p/1.jpg",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "data:image/png;base64,iVBORw0K", delivered.Proof().Signature)
		assert.Equal(t, "https://cdn.example.com/p/1.jpg", delivered.Proof().PhotoURL)
	})
}

func TestDriverRoutes_RecordLocation(t *testing.T) {
	target := newTestShipment(t, kernel.NewUUID())
	var got commands.RecordLocationCommand

	hs := newHarness(t, Handlers{
		RecordLocation: handlerFunc[commands.RecordLocationCommand, *tracking.Entry](
			func(_ context.Context, cmd commands.RecordLocationCommand) (*tracking.Entry, error) {
				got = cmd
				return tracking.NewEntry(kernel.NewUUID(), cmd.ShipmentID(), cmd.Position(), cmd.LocationName(), cmd.Note(), testNow)
			}),
	})
	path := "/api/v1/driver/shipments/" + target.ID().String() + "/location"

	t.Run("records_position", func(t *testing.T) {
		rec := hs.do(http.MethodPost, path, "driver-token", LocationRequest{
			Latitude: 19.076, Longitude: 72.8777, LocationName: "Mumbai hub",
		})

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.InDelta(t, 19.076, got.Position().Latitude(), 1e-9)
		body := decode[TrackingEntryResponse](t, rec)
		assert.Equal(t, "Mumbai hub", body.LocationName)
		assert.Equal(t, target.ID().String(), body.ShipmentID)
	})

	t.Run("latitude_out_of_range", func(t *testing.T) {
		rec := hs.do(http.MethodPost, path, "driver-token", LocationRequest{Latitude: 91, Longitude: 10})

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "latitude", decode[Error](t, rec).Details[0].Field)
	})
}

func TestDriverRoutes_Dashboard(t *testing.T) {
	var asOf queries.GetDriverDashboardQuery
	current := newTestShipment(t, kernel.NewUUID())

	hs := newHarness(t, Handlers{
		GetDashboard: handlerFunc[queries.GetDriverDashboardQuery, queries.GetDriverDashboardQueryResponse](
			func(_ context.Context, q queries.GetDriverDashboardQuery) (queries.GetDriverDashboardQueryResponse, error) {
				asOf = q
				return queries.GetDriverDashboardQueryResponse{
					DeliveriesToday: 3,
					ActiveShipments: 2,
					CompletedCount:  2,
					FailedCount:     1,
					CurrentShipment: &queries.CurrentShipmentResponse{
						ID:              current.ID(),
						Number:          current.Number(),
						PickupAddress:   "12 MG Road, Pune",
						DeliveryAddress: "4 Park Street, Kolkata",
						Status:          "ASSIGNED",
					},
				}, nil
			}),
	})

	rec := hs.do(http.MethodGet, "/api/v1/driver/dashboard", "driver-token", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, testNow, asOf.Now())
	body := decode[DashboardResponse](t, rec)
	assert.EqualValues(t, 3, body.DeliveriesToday)
	require.NotNil(t, body.CurrentShipment)
	assert.Equal(t, current.Number(), body.CurrentShipment.ShipmentNumber)
	assert.Nil(t, body.LastKnownLocation)
}

func TestDriverRoutes_Voice(t *testing.T) {
	var got commands.ProcessVoiceCommand
	target := newTestShipment(t, kernel.NewUUID())

	hs := newHarness(t, Handlers{
		ProcessVoice: handlerFunc[commands.ProcessVoiceCommand, commands.VoiceCommandResult](
			func(_ context.Context, cmd commands.ProcessVoiceCommand) (commands.VoiceCommandResult, error) {
				got = cmd
				return commands.VoiceCommandResult{
					Transcription: "mark " + target.Number() + " as picked up",
					Intent:        "mark_picked_up",
					Confidence:    0.93,
					ActionTaken:   "mark picked up",
					Message:       "Shipment " + target.Number() + " marked as picked up",
					Shipment:      target,
				}, nil
			}),
		SynthesizeSpeech: handlerFunc[queries.SynthesizeSpeechQuery, []byte](
			func(context.Context, queries.SynthesizeSpeechQuery) ([]byte, error) {
				return []byte("ID3-mpeg-frames"), nil
			}),
		ListVoiceCommands: queries.NewListVoiceCommandsQueryHandler(),
	})

	t.Run("command_from_multipart_audio", func(t *testing.T) {
		rec := hs.upload(t, "/api/v1/driver/voice/command", "driver-token", audioFormField, "note.webm", []byte("RIFF-audio"))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, []byte("RIFF-audio"), got.Audio())
		assert.Equal(t, "note.webm", got.Filename())
		body := decode[VoiceCommandResponse](t, rec)
		assert.True(t, body.Success)
		assert.Equal(t, "mark_picked_up", body.Intent)
		require.NotNil(t, body.Shipment)
		assert.Equal(t, target.Number(), body.Shipment.ShipmentNumber)
	})

	t.Run("missing_audio_is_bad_request", func(t *testing.T) {
		rec := hs.upload(t, "/api/v1/driver/voice/command", "driver-token", "file", "note.webm", []byte("RIFF"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversized_audio_is_rejected", func(t *testing.T) {
		hs.server.maxAudioBytes = 4
		t.Cleanup(func() { hs.server.maxAudioBytes = defaultMaxAudioBytes })

		rec := hs.upload(t, "/api/v1/driver/voice/command", "driver-token", audioFormField, "note.webm", []byte("RIFF-audio"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("speech_is_mpeg", func(t *testing.T) {
		rec := hs.do(http.MethodPost, "/api/v1/driver/voice/speech", "driver-token", SpeechRequest{Text: "Delivered"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "audio/mpeg", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "ID3-mpeg-frames", rec.Body.String())
	})

	t.Run("lists_commands", func(t *testing.T) {
		rec := hs.do(http.MethodGet, "/api/v1/driver/voice/commands", "driver-token", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, decode[[]VoiceCommandHelpResponse](t, rec))
	})
}

func (hs *harness) upload(t *testing.T, path, token, field, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	rec := httptest.NewRecorder()
	hs.e.ServeHTTP(rec, req)
	return rec
}
