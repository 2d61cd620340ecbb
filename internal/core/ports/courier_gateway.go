package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// RateRequest asks the courier provider for service options between two points.
type RateRequest struct {
	Origin        kernel.Location
	Destination   kernel.Location
	Couriers      []string
	WeightGrams   int
	DeclaredValue int64
}

// TrackRequest identifies a shipment either by the provider tracking id alone
// or by the courier waybill together with the courier code.
type TrackRequest struct {
	WaybillID string
	Courier   string
}

type TrackingEvent struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TrackingCourier struct {
	Company     string `json:"company"`
	DriverName  string `json:"driver_name,omitempty"`
	DriverPhone string `json:"driver_phone,omitempty"`
}

// Tracking is the shipment timeline reported by the courier provider.
type Tracking struct {
	ID        string          `json:"id"`
	WaybillID string          `json:"waybill_id"`
	Status    string          `json:"status"`
	Link      string          `json:"link,omitempty"`
	Courier   TrackingCourier `json:"courier"`
	History   []TrackingEvent `json:"history"`
}

// CourierGateway quotes and tracks third-party courier shipments.
// Implementations return errs.UpstreamGatewayError on provider failures.
type CourierGateway interface {
	QuoteRates(ctx context.Context, req RateRequest) ([]order.CourierQuote, error)
	Track(ctx context.Context, req TrackRequest) (Tracking, error)
}
