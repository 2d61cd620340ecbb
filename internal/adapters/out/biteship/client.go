// Package biteship implements ports.CourierGateway against the Biteship REST API.
package biteship

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/retryhttp"
)

const (
	Gateway = "biteship"

	DefaultCouriers      = "gojek,grab"
	DefaultWeightGrams   = 1000
	DefaultDeclaredValue = 50000
)

type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries uint64
}

type Client struct {
	baseURL string
	apiKey  string
	http    *retryhttp.Client
}

var _ ports.CourierGateway = (*Client)(nil)

func NewClient(cfg Config, observer retryhttp.Observer) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http: retryhttp.New(retryhttp.Config{
			Gateway:    Gateway,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			Observer:   observer,
		}),
	}
}

type rateItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Value       int64  `json:"value"`
	Weight      int    `json:"weight"`
	Quantity    int    `json:"quantity"`
}

type rateRequest struct {
	OriginLatitude       float64    `json:"origin_latitude"`
	OriginLongitude      float64    `json:"origin_longitude"`
	DestinationLatitude  float64    `json:"destination_latitude"`
	DestinationLongitude float64    `json:"destination_longitude"`
	Couriers             string     `json:"couriers"`
	Items                []rateItem `json:"items"`
}

type rateResponse struct {
	Success bool                 `json:"success"`
	Pricing []order.CourierQuote `json:"pricing"`
}

// QuoteRates lists the courier services able to carry a laundry bag between two points.
func (c *Client) QuoteRates(ctx context.Context, req ports.RateRequest) ([]order.CourierQuote, error) {
	couriers := DefaultCouriers
	if len(req.Couriers) > 0 {
		couriers = strings.Join(req.Couriers, ",")
	}
	weight := req.WeightGrams
	if weight <= 0 {
		weight = DefaultWeightGrams
	}
	value := req.DeclaredValue
	if value <= 0 {
		value = DefaultDeclaredValue
	}

	payload, err := json.Marshal(rateRequest{
		OriginLatitude:       req.Origin.Latitude(),
		OriginLongitude:      req.Origin.Longitude(),
		DestinationLatitude:  req.Destination.Latitude(),
		DestinationLongitude: req.Destination.Longitude(),
		Couriers:             couriers,
		Items: []rateItem{{
			Name:        "Laundry",
			Description: "Pakaian laundry",
			Value:       value,
			Weight:      weight,
			Quantity:    1,
		}},
	})
	if err != nil {
		return nil, err
	}

	const op = "quote_rates"
	resp, err := c.http.Do(ctx, op, func(ctx context.Context) (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rates/couriers", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		r.Header.Set("Content-Type", "application/json")
		c.authorize(r)
		return r, nil
	})
	if err != nil {
		return nil, errs.NewUpstreamGatewayErrorWithCause(Gateway, op, err)
	}
	if !resp.OK() {
		return nil, upstreamError(op, resp, "Gagal mendapatkan tarif kurir")
	}

	var body rateResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, errs.NewUpstreamGatewayErrorWithCause(Gateway, op, err)
	}

	quotes := make([]order.CourierQuote, 0, len(body.Pricing))
	for _, q := range body.Pricing {
		if q.ShippingFee == 0 {
			q.ShippingFee = q.Rate
		}
		if q.Currency == "" {
			q.Currency = order.DefaultCurrency
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

type trackingEvent struct {
	Status    string `json:"status"`
	Note      string `json:"note"`
	UpdatedAt string `json:"updated_at"`
}

type trackingResponse struct {
	Success   bool                  `json:"success"`
	ID        string                `json:"id"`
	WaybillID string                `json:"waybill_id"`
	Status    string                `json:"status"`
	Link      string                `json:"link"`
	Courier   ports.TrackingCourier `json:"courier"`
	History   []trackingEvent       `json:"history"`
}

// Track fetches the shipment timeline. With a courier code the waybill is the
// courier's own number; without one it is the Biteship tracking id.
func (c *Client) Track(ctx context.Context, req ports.TrackRequest) (ports.Tracking, error) {
	if strings.TrimSpace(req.WaybillID) == "" {
		return ports.Tracking{}, errs.NewValueIsRequiredError("waybill_id")
	}

	op := "track"
	path := "/trackings/" + url.PathEscape(req.WaybillID)
	if req.Courier != "" {
		op = "track_by_courier"
		path += "/couriers/" + url.PathEscape(req.Courier)
	}

	resp, err := c.http.Do(ctx, op, func(ctx context.Context) (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		c.authorize(r)
		return r, nil
	})
	if err != nil {
		return ports.Tracking{}, errs.NewUpstreamGatewayErrorWithCause(Gateway, op, err)
	}
	if !resp.OK() {
		return ports.Tracking{}, upstreamError(op, resp, "Gagal melacak pengiriman")
	}

	var body trackingResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return ports.Tracking{}, errs.NewUpstreamGatewayErrorWithCause(Gateway, op, err)
	}

	tracking := ports.Tracking{
		ID:        body.ID,
		WaybillID: body.WaybillID,
		Status:    body.Status,
		Link:      body.Link,
		Courier:   body.Courier,
		History:   make([]ports.TrackingEvent, 0, len(body.History)),
	}
	for _, e := range body.History {
		// Unparseable timestamps are kept as zero; the note still carries the event.
		at, _ := time.Parse(time.RFC3339, e.UpdatedAt)
		tracking.History = append(tracking.History, ports.TrackingEvent{Status: e.Status, Note: e.Note, UpdatedAt: at})
	}
	return tracking, nil
}

func (c *Client) authorize(r *http.Request) {
	r.Header.Set("Authorization", c.apiKey)
}

func upstreamError(op string, resp retryhttp.Response, message string) error {
	var detail any
	if err := json.Unmarshal(resp.Body, &detail); err != nil {
		detail = string(resp.Body)
	}
	if m, ok := detail.(map[string]any); ok {
		if e, ok := m["error"].(string); ok && e != "" {
			message = fmt.Sprintf("%s: %s", message, e)
		}
	}
	return errs.NewUpstreamGatewayError(Gateway, op, resp.StatusCode, message, detail)
}
