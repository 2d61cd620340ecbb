// Package midtrans implements ports.PaymentGateway with the Midtrans Snap and Core APIs.
package midtrans

import (
	"bytes"
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/retryhttp"
)

const (
	Gateway = "midtrans"

	SandboxSnapURL    = "https://app.sandbox.midtrans.com"
	SandboxAPIURL     = "https://api.sandbox.midtrans.com"
	ProductionSnapURL = "https://app.midtrans.com"
	ProductionAPIURL  = "https://api.midtrans.com"

	DefaultSessionTTL = 24 * time.Hour
)

type Config struct {
	ServerKey    string
	IsProduction bool
	// SnapURL and APIURL override the environment defaults.
	SnapURL    string
	APIURL     string
	SessionTTL time.Duration
	Timeout    time.Duration
	MaxRetries uint64
}

type Client struct {
	serverKey  string
	snapURL    string
	apiURL     string
	sessionTTL time.Duration
	http       *retryhttp.Client
	now        func() time.Time
}

var _ ports.PaymentGateway = (*Client)(nil)

func NewClient(cfg Config, observer retryhttp.Observer) *Client {
	snapURL, apiURL := SandboxSnapURL, SandboxAPIURL
	if cfg.IsProduction {
		snapURL, apiURL = ProductionSnapURL, ProductionAPIURL
	}
	if cfg.SnapURL != "" {
		snapURL = cfg.SnapURL
	}
	if cfg.APIURL != "" {
		apiURL = cfg.APIURL
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &Client{
		serverKey:  cfg.ServerKey,
		snapURL:    strings.TrimRight(snapURL, "/"),
		apiURL:     strings.TrimRight(apiURL, "/"),
		sessionTTL: ttl,
		http: retryhttp.New(retryhttp.Config{
			Gateway:    Gateway,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			Observer:   observer,
		}),
		now: time.Now,
	}
}

type transactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

type customerDetails struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type itemDetail struct {
	ID       string `json:"id"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

type expiry struct {
	Unit     string `json:"unit"`
	Duration int64  `json:"duration"`
}

type snapRequest struct {
	TransactionDetails transactionDetails `json:"transaction_details"`
	CustomerDetails    customerDetails    `json:"customer_details"`
	ItemDetails        []itemDetail       `json:"item_details"`
	Expiry             expiry             `json:"expiry"`
}

type snapResponse struct {
	Token         string   `json:"token"`
	RedirectURL   string   `json:"redirect_url"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateSession opens a Snap checkout valid for the configured session TTL.
func (c *Client) CreateSession(ctx context.Context, req ports.PaymentRequest) (order.PaymentSession, error) {
	items := make([]itemDetail, 0, len(req.Lines))
	for _, l := range req.Lines {
		items = append(items, itemDetail{ID: l.ID, Price: l.Price, Quantity: l.Quantity, Name: l.Name})
	}

	issuedAt := c.now()
	payload, err := json.Marshal(snapRequest{
		TransactionDetails: transactionDetails{OrderID: req.OrderRef, GrossAmount: req.GrossAmount},
		CustomerDetails: customerDetails{
			FirstName: req.Customer.Name,
			Email:     req.Customer.Email,
			Phone:     req.Customer.Phone,
		},
		ItemDetails: items,
		Expiry:      expiry{Unit: "minutes", Duration: int64(c.sessionTTL / time.Minute)},
	})
	if err != nil {
		return order.PaymentSession{}, err
	}

	const op = "create_session"
	resp, err := c.http.Do(ctx, op, func(ctx context.Context) (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.snapURL+"/snap/v1/transactions", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		r.Header.Set("Content-Type", "application/json")
		c.authorize(r)
		return r, nil
	})
	if err != nil {
		return order.PaymentSession{}, errs.NewUpstreamGatewayErrorWithCause(Gateway, op, err)
	}

	var body snapResponse
	decodeErr := json.Unmarshal(resp.Body, &body)
	if !resp.OK() || body.Token == "" {
		message := "Failed to create snap token"
		if len(body.ErrorMessages) > 0 {
			message = strings.Join(body.ErrorMessages, "; ")
		}
		return order.PaymentSession{}, errs.NewUpstreamGatewayError(Gateway, op, resp.StatusCode, message, detailOf(resp))
	}
	if decodeErr != nil {
		return order.PaymentSession{}, errs.NewUpstreamGatewayErrorWithCause(Gateway, op, decodeErr)
	}

	return order.PaymentSession{
		Token:       body.Token,
		RedirectURL: body.RedirectURL,
		ExpiresAt:   issuedAt.Add(c.sessionTTL),
	}, nil
}

// GetStatus reads the transaction from the Core API. Midtrans reports some
// failures with HTTP 200 and a non-2xx status_code in the body.
func (c *Client) GetStatus(ctx context.Context, orderRef string) (ports.PaymentState, error) {
	const op = "get_status"
	resp, err := c.http.Do(ctx, op, func(ctx context.Context) (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/v2/"+url.PathEscape(orderRef)+"/status", nil)
		if err != nil {
			return nil, err
		}
		r.Header.Set("Accept", "application/json")
		c.authorize(r)
		return r, nil
	})
	if err != nil {
		return ports.PaymentState{}, errs.NewUpstreamGatewayErrorWithCause(Gateway, op, err)
	}
	if !resp.OK() {
		return ports.PaymentState{}, errs.NewUpstreamGatewayError(Gateway, op, resp.StatusCode, "Failed to get transaction status", detailOf(resp))
	}

	var state struct {
		ports.PaymentState
		StatusMessage string `json:"status_message"`
	}
	if err := json.Unmarshal(resp.Body, &state); err != nil {
		return ports.PaymentState{}, errs.NewUpstreamGatewayErrorWithCause(Gateway, op, err)
	}
	if code, err := strconv.Atoi(state.StatusCode); err == nil && (code < 200 || code > 299) {
		return ports.PaymentState{}, errs.NewUpstreamGatewayError(Gateway, op, code, state.StatusMessage, detailOf(resp))
	}
	return state.PaymentState, nil
}

// VerifyNotification checks signature_key = sha512(order_id + status_code + gross_amount + server_key).
func (c *Client) VerifyNotification(n ports.PaymentNotification) bool {
	expected := Signature(n.OrderRef, n.StatusCode, n.GrossAmount, c.serverKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(n.SignatureKey))) == 1
}

// Signature returns the hex signature Midtrans attaches to notifications.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func (c *Client) authorize(r *http.Request) {
	r.SetBasicAuth(c.serverKey, "")
}

func detailOf(resp retryhttp.Response) any {
	var detail any
	if err := json.Unmarshal(resp.Body, &detail); err != nil {
		return string(resp.Body)
	}
	return detail
}
