package ports

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

type PaymentCustomer struct {
	Name  string
	Email string
	Phone string
}

// PaymentLine is one item of the hosted checkout. Discounts are negative lines.
type PaymentLine struct {
	ID       string
	Name     string
	Price    int64
	Quantity int
}

// PaymentRequest creates a hosted checkout. GrossAmount equals the sum of Lines.
type PaymentRequest struct {
	OrderRef    string
	GrossAmount int64
	Customer    PaymentCustomer
	Lines       []PaymentLine
}

// PaymentState is the gateway's view of a transaction.
type PaymentState struct {
	OrderRef          string `json:"order_id"`
	TransactionID     string `json:"transaction_id,omitempty"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status,omitempty"`
	PaymentType       string `json:"payment_type,omitempty"`
	GrossAmount       string `json:"gross_amount,omitempty"`
	StatusCode        string `json:"status_code,omitempty"`
	TransactionTime   string `json:"transaction_time,omitempty"`
}

// PaymentNotification is the webhook body sent by the gateway.
type PaymentNotification struct {
	OrderRef          string
	StatusCode        string
	GrossAmount       string
	SignatureKey      string
	TransactionStatus string
	FraudStatus       string
	PaymentType       string
}

// PaymentGateway talks to the hosted payment provider. It is never called
// while a database transaction is open.
type PaymentGateway interface {
	CreateSession(ctx context.Context, req PaymentRequest) (order.PaymentSession, error)
	GetStatus(ctx context.Context, orderRef string) (PaymentState, error)

	// VerifyNotification reports whether the notification signature is valid.
	VerifyNotification(n PaymentNotification) bool
}
