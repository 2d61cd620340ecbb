// Package fonnte delivers WhatsApp notifications through the Fonnte API.
package fonnte

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/retryhttp"
)

const (
	Gateway    = "fonnte"
	DefaultURL = "https://api.fonnte.com/send"
)

var ErrNotConfigured = errors.New("fonnte api key not configured")

type Config struct {
	URL        string
	APIKey     string
	Timeout    time.Duration
	MaxRetries uint64
}

type Notifier struct {
	url    string
	apiKey string
	http   *retryhttp.Client
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(cfg Config, observer retryhttp.Observer) *Notifier {
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}
	return &Notifier{
		url:    url,
		apiKey: cfg.APIKey,
		http: retryhttp.New(retryhttp.Config{
			Gateway:    Gateway,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			Observer:   observer,
		}),
	}
}

type sendRequest struct {
	Target      string `json:"target"`
	Message     string `json:"message"`
	CountryCode string `json:"countryCode"`
}

type sendResponse struct {
	Status bool   `json:"status"`
	Reason string `json:"reason"`
}

// Notify sends the message body to the recipient's WhatsApp number.
func (n *Notifier) Notify(ctx context.Context, message *notification.Message) error {
	if n.apiKey == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(sendRequest{
		Target:      kernel.NormalizePhone(message.Recipient()),
		Message:     message.Body(),
		CountryCode: kernel.IndonesiaCountryCode,
	})
	if err != nil {
		return err
	}

	const op = "send"
	resp, err := n.http.Do(ctx, op, func(ctx context.Context) (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Authorization", n.apiKey)
		return r, nil
	})
	if err != nil {
		return errs.NewUpstreamGatewayErrorWithCause(Gateway, op, err)
	}
	if !resp.OK() {
		return errs.NewUpstreamGatewayError(Gateway, op, resp.StatusCode, "Failed to send WhatsApp message", string(resp.Body))
	}

	// Fonnte answers 200 with status=false when the device rejects the send.
	var body sendResponse
	if err := json.Unmarshal(resp.Body, &body); err == nil && !body.Status {
		return errs.NewUpstreamGatewayError(Gateway, op, resp.StatusCode, body.Reason, string(resp.Body))
	}
	return nil
}
