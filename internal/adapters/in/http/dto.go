package http

import (
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateShipmentRequest struct {
	PickupLocation   string  `json:"pickup_location" validate:"required,max=500"`
	DeliveryLocation string  `json:"delivery_location" validate:"required,max=500"`
	CargoType        string  `json:"cargo_type" validate:"max=100"`
	Weight           float64 `json:"weight" validate:"gte=0"`
	Dimensions       string  `json:"dimensions" validate:"max=100"`
	Description      string  `json:"description" validate:"max=1000"`
	IsHomePickup     bool    `json:"is_home_pickup"`
	IsHomeDelivery   *bool   `json:"is_home_delivery"`
	ShipmentType     string  `json:"shipment_type" validate:"omitempty,oneof=domestic international"`
	TransportMode    string  `json:"international_mode" validate:"omitempty,oneof=air sea truck"`
	PortOfEntry      string  `json:"port_of_entry"`
	IsCOD            bool    `json:"is_cod"`
	CODAmount        float64 `json:"cod_amount" validate:"gte=0"`
	IsExpress        bool    `json:"is_express"`
	DistanceKm       float64 `json:"distance_km" validate:"gte=0"`
}

type QuoteRequest struct {
	DistanceKm        float64 `json:"distance_km" validate:"gt=0"`
	WeightKg          float64 `json:"weight_kg" validate:"gt=0"`
	ShipmentType      string  `json:"shipment_type" validate:"required,oneof=domestic international"`
	TransportMode     string  `json:"international_mode" validate:"omitempty,oneof=air sea truck"`
	IsExpress         bool    `json:"is_express"`
	FuelPricePerLitre float64 `json:"fuel_price_per_liter" validate:"gte=0"`
}

type NotesRequest struct {
	Notes string `json:"notes" validate:"max=1000"`
}

type DeliverRequest struct {
	Signature  string `json:"signature"`
	PhotoProof string `json:"photo_proof"`
	Notes      string `json:"notes" validate:"max=1000"`
}

type FailRequest struct {
	FailureReason string `json:"failure_reason" validate:"required"`
	Notes         string `json:"notes" validate:"max=1000"`
}

type CODRequest struct {
	AmountCollected float64 `json:"amount_collected" validate:"gt=0"`
}

type CustomsClearanceRequest struct {
	ClearanceNotes string `json:"clearance_notes" validate:"max=1000"`
}

type PortPickupRequest struct {
	PortLocation string `json:"port_location" validate:"required,max=200"`
	Notes        string `json:"notes" validate:"max=1000"`
}

type DelayRequest struct {
	Reason string `json:"reason" validate:"required"`
	Notes  string `json:"notes" validate:"max=1000"`
}

type LocationRequest struct {
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	LocationName string  `json:"location_name" validate:"max=200"`
	Note         string  `json:"note" validate:"max=1000"`
}

type AssignRequest struct {
	DriverID string `json:"driver_id" validate:"required,uuid"`
}

type OverrideStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type SpeechRequest struct {
	Text  string `json:"text" validate:"required"`
	Voice string `json:"voice"`
}

type TokenResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Account     AccountResponse `json:"account"`
}

type AccountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type PriceResponse struct {
	BasePrice     float64 `json:"base_price"`
	WeightCharge  float64 `json:"weight_charge"`
	ModeSurcharge float64 `json:"mode_surcharge"`
	FuelSurcharge float64 `json:"fuel_surcharge"`
	ExpressCharge float64 `json:"express_charge"`
	TotalPrice    float64 `json:"total_price"`
}

type ShipmentResponse struct {
	ID                  string        `json:"id"`
	ShipmentNumber      string        `json:"shipment_number"`
	CustomerID          string        `json:"customer_id"`
	DriverID            *string       `json:"driver_id"`
	PickupLocation      string        `json:"pickup_location"`
	DeliveryLocation    string        `json:"delivery_location"`
	IsHomePickup        bool          `json:"is_home_pickup"`
	IsHomeDelivery      bool          `json:"is_home_delivery"`
	CargoType           string        `json:"cargo_type,omitempty"`
	Weight              float64       `json:"weight"`
	Dimensions          string        `json:"dimensions,omitempty"`
	Description         string        `json:"description,omitempty"`
	ShipmentType        string        `json:"shipment_type"`
	InternationalMode   string        `json:"international_mode,omitempty"`
	PortOfEntry         string        `json:"port_of_entry,omitempty"`
	CustomsStatus       string        `json:"customs_clearance_status,omitempty"`
	IsExpress           bool          `json:"is_express"`
	IsCOD               bool          `json:"is_cod"`
	CODAmount           float64       `json:"cod_amount"`
	CODStatus           string        `json:"cod_status"`
	Status              string        `json:"status"`
	Price               PriceResponse `json:"price"`
	FailureReason       string        `json:"failure_reason,omitempty"`
	FailureNotes        string        `json:"failure_notes,omitempty"`
	DelayReason         string        `json:"delay_reason,omitempty"`
	DelayNotes          string        `json:"delay_notes,omitempty"`
	HasSignature        bool          `json:"has_signature"`
	PhotoURL            string        `json:"photo_url,omitempty"`
	EstimatedDelivery   time.Time     `json:"estimated_delivery"`
	ActualDelivery      *time.Time    `json:"actual_delivery"`
	PickupCompletedAt   *time.Time    `json:"pickup_completed_at,omitempty"`
	DeliveryAttemptedAt *time.Time    `json:"delivery_attempted_at,omitempty"`
	CustomsClearedAt    *time.Time    `json:"customs_cleared_at,omitempty"`
	CODCollectedAt      *time.Time    `json:"cod_collected_at,omitempty"`
	DelayReportedAt     *time.Time    `json:"delay_reported_at,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

type TrackingEntryResponse struct {
	ID           string    `json:"id"`
	ShipmentID   string    `json:"shipment_id"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	LocationName string    `json:"location_name,omitempty"`
	StatusUpdate string    `json:"status_update,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type CurrentShipmentResponse struct {
	ID               string `json:"id"`
	ShipmentNumber   string `json:"shipment_number"`
	PickupLocation   string `json:"pickup_location"`
	DeliveryLocation string `json:"delivery_location"`
	Status           string `json:"status"`
}

type DashboardResponse struct {
	DeliveriesToday   int64                    `json:"total_deliveries_today"`
	ActiveShipments   int64                    `json:"active_shipments"`
	CompletedCount    int64                    `json:"completed_deliveries"`
	FailedCount       int64                    `json:"failed_deliveries"`
	CurrentShipment   *CurrentShipmentResponse `json:"current_shipment"`
	LastKnownLocation *TrackingEntryResponse   `json:"last_known_location"`
}

type VoiceCommandResponse struct {
	Success       bool              `json:"success"`
	Transcription string            `json:"transcription"`
	Intent        string            `json:"intent"`
	Confidence    float64           `json:"confidence"`
	ActionTaken   string            `json:"action_taken,omitempty"`
	Message       string            `json:"message"`
	Shipment      *ShipmentResponse `json:"shipment,omitempty"`
}

type VoiceCommandHelpResponse struct {
	Intent   string   `json:"intent"`
	Examples []string `json:"examples"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func toAccountResponse(acc *account.Account) AccountResponse {
	return AccountResponse{
		ID:        acc.ID().String(),
		Email:     acc.Email(),
		FullName:  acc.FullName(),
		Phone:     acc.Phone(),
		Role:      acc.Role().String(),
		IsActive:  acc.IsActive(),
		CreatedAt: acc.CreatedAt(),
	}
}

func fromAccountView(v queries.AccountResponse) AccountResponse {
	return AccountResponse{
		ID:        v.ID.String(),
		Email:     v.Email,
		FullName:  v.FullName,
		Phone:     v.Phone,
		Role:      v.Role.String(),
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
	}
}

func toPriceResponse(p shipment.Price) PriceResponse {
	return PriceResponse{
		BasePrice:     p.Base,
		WeightCharge:  p.WeightCharge,
		ModeSurcharge: p.ModeSurcharge,
		FuelSurcharge: p.FuelSurcharge,
		ExpressCharge: p.ExpressCharge,
		TotalPrice:    p.Total,
	}
}

// toShipmentResponse exposes whether a signature was captured, not the
// signature itself.
func toShipmentResponse(s shipment.Snapshot) ShipmentResponse {
	resp := ShipmentResponse{
		ID:                  s.ID.String(),
		ShipmentNumber:      s.Number,
		CustomerID:          s.CustomerID.String(),
		PickupLocation:      s.Details.PickupAddress,
		DeliveryLocation:    s.Details.DeliveryAddress,
		IsHomePickup:        s.Details.HomePickup,
		IsHomeDelivery:      s.Details.HomeDelivery,
		CargoType:           s.Details.PackageType,
		Weight:              s.Details.Weight,
		Dimensions:          s.Details.Dimensions,
		Description:         s.Details.Description,
		ShipmentType:        string(s.Details.Type),
		InternationalMode:   string(s.Details.TransportMode),
		PortOfEntry:         string(s.Details.Port),
		CustomsStatus:       string(s.CustomsStatus),
		IsExpress:           s.Details.Express,
		IsCOD:               s.Details.IsCOD,
		CODAmount:           s.Details.CODAmount,
		CODStatus:           string(s.CODStatus),
		Status:              s.Status.String(),
		Price:               toPriceResponse(s.Price),
		FailureReason:       string(s.FailureReason),
		FailureNotes:        s.FailureNotes,
		DelayReason:         string(s.DelayReason),
		DelayNotes:          s.DelayNotes,
		HasSignature:        s.Signature != "",
		PhotoURL:            s.PhotoURL,
		EstimatedDelivery:   s.EstimatedDelivery,
		ActualDelivery:      s.ActualDelivery,
		PickupCompletedAt:   s.PickupCompletedAt,
		DeliveryAttemptedAt: s.DeliveryAttemptedAt,
		CustomsClearedAt:    s.CustomsClearedAt,
		CODCollectedAt:      s.CODCollectedAt,
		DelayReportedAt:     s.DelayReportedAt,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
	if s.DriverID != nil {
		driverID := s.DriverID.String()
		resp.DriverID = &driverID
	}
	return resp
}

func toShipmentResponses(snaps []shipment.Snapshot) []ShipmentResponse {
	resp := make([]ShipmentResponse, len(snaps))
	for i, s := range snaps {
		resp[i] = toShipmentResponse(s)
	}
	return resp
}

func fromTrackingView(e queries.TrackingEntryResponse) TrackingEntryResponse {
	return TrackingEntryResponse{
		ID:           e.ID.String(),
		ShipmentID:   e.ShipmentID.String(),
		Latitude:     e.Latitude,
		Longitude:    e.Longitude,
		LocationName: e.LocationName,
		StatusUpdate: e.Note,
		Timestamp:    e.RecordedAt,
	}
}

func toTrackingEntryResponse(e *tracking.Entry) TrackingEntryResponse {
	return TrackingEntryResponse{
		ID:           e.ID().String(),
		ShipmentID:   e.ShipmentID().String(),
		Latitude:     e.Position().Latitude(),
		Longitude:    e.Position().Longitude(),
		LocationName: e.LocationName(),
		StatusUpdate: e.Note(),
		Timestamp:    e.RecordedAt(),
	}
}

func toDashboardResponse(d queries.GetDriverDashboardQueryResponse) DashboardResponse {
	resp := DashboardResponse{
		DeliveriesToday: d.DeliveriesToday,
		ActiveShipments: d.ActiveShipments,
		CompletedCount:  d.CompletedCount,
		FailedCount:     d.FailedCount,
	}
	if d.CurrentShipment != nil {
		resp.CurrentShipment = &CurrentShipmentResponse{
			ID:               d.CurrentShipment.ID.String(),
			ShipmentNumber:   d.CurrentShipment.Number,
			PickupLocation:   d.CurrentShipment.PickupAddress,
			DeliveryLocation: d.CurrentShipment.DeliveryAddress,
			Status:           d.CurrentShipment.Status,
		}
	}
	if d.LastKnownLocation != nil {
		last := fromTrackingView(*d.LastKnownLocation)
		resp.LastKnownLocation = &last
	}
	return resp
}

func toVoiceCommandResponse(r commands.VoiceCommandResult) VoiceCommandResponse {
	resp := VoiceCommandResponse{
		Success:       r.ActionTaken != "",
		Transcription: r.Transcription,
		Intent:        r.Intent,
		Confidence:    r.Confidence,
		ActionTaken:   r.ActionTaken,
		Message:       r.Message,
	}
	if r.Shipment != nil {
		s := toShipmentResponse(r.Shipment.Snapshot())
		resp.Shipment = &s
	}
	return resp
}
