package order

import (
	"fmt"
	"time"

	"laundry/internal/pkg/errs"
)

// PaymentStatus tracks settlement independently of fulfillment.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentUnpaid
	PaymentPending
	PaymentPaid
	PaymentFailed
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentUnpaid:   "unpaid",
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if status != PaymentUnknown && str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment_status", fmt.Errorf("%q is not a valid payment status", s))
}

func (s PaymentStatus) Validate() error {
	if s <= PaymentUnknown || s > PaymentRefunded {
		return errs.NewValueIsInvalidErrorWithCause("payment_status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// PaymentMethod records how the order is being settled.
type PaymentMethod int

const (
	PaymentMethodNone PaymentMethod = iota
	PaymentMethodCash
	PaymentMethodMidtrans
)

func (m PaymentMethod) String() string {
	switch m {
	case PaymentMethodCash:
		return "cash"
	case PaymentMethodMidtrans:
		return "midtrans"
	default:
		return ""
	}
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "":
		return PaymentMethodNone, nil
	case "cash":
		return PaymentMethodCash, nil
	case "midtrans":
		return PaymentMethodMidtrans, nil
	default:
		return PaymentMethodNone, errs.NewValueIsInvalidErrorWithCause("payment_method", fmt.Errorf("%q is not a valid payment method", s))
	}
}

// PaymentChoice is what the customer picks alongside the delivery method.
type PaymentChoice int

const (
	PaymentChoiceUnknown PaymentChoice = iota
	PaymentChoiceCash
	PaymentChoiceOnline
)

func ParsePaymentChoice(s string) (PaymentChoice, error) {
	switch s {
	case "cash":
		return PaymentChoiceCash, nil
	case "online":
		return PaymentChoiceOnline, nil
	default:
		return PaymentChoiceUnknown, errs.NewValueIsInvalidErrorWithCause("payment_method", fmt.Errorf("%q is not one of cash, online", s))
	}
}

func (c PaymentChoice) String() string {
	switch c {
	case PaymentChoiceCash:
		return "cash"
	case PaymentChoiceOnline:
		return "online"
	default:
		return "unknown"
	}
}

// ResolvePaymentStatus maps a gateway (transaction_status, fraud_status) pair to
// the payment status it implies. ok is false for combinations that carry no decision,
// e.g. capture with fraud_status deny or an unrecognised transaction status.
func ResolvePaymentStatus(transactionStatus, fraudStatus string) (status PaymentStatus, ok bool) {
	switch transactionStatus {
	case "capture":
		switch fraudStatus {
		case "accept":
			return PaymentPaid, true
		case "challenge":
			return PaymentPending, true
		}
		return PaymentUnknown, false
	case "settlement":
		return PaymentPaid, true
	case "pending":
		return PaymentPending, true
	case "deny", "expire", "cancel":
		return PaymentFailed, true
	case "refund", "partial_refund":
		return PaymentRefunded, true
	}
	return PaymentUnknown, false
}

// PaymentSession is a hosted checkout created with the payment gateway.
type PaymentSession struct {
	Token       string
	RedirectURL string
	ExpiresAt   time.Time
}

// IsActive reports whether the session can still be used at now.
func (s PaymentSession) IsActive(now time.Time) bool {
	return s.Token != "" && now.Before(s.ExpiresAt)
}
