package order

import (
	"errors"
	"strings"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const DefaultCurrency = "IDR"

var ErrCourierSnapshotIsNotConstructed = errors.New("CourierSnapshot must be created via NewCourierSnapshot")

// CourierQuote carries the fields of a courier rate the customer accepted.
// It is the input of NewCourierSnapshot and the plain form used for storage.
type CourierQuote struct {
	Company               string          `json:"company"`
	CourierName           string          `json:"courier_name"`
	CourierCode           string          `json:"courier_code"`
	ServiceName           string          `json:"courier_service_name"`
	ServiceCode           string          `json:"courier_service_code"`
	Currency              string          `json:"currency"`
	Description           string          `json:"description,omitempty"`
	Duration              string          `json:"duration,omitempty"`
	ShipmentDurationRange string          `json:"shipment_duration_range,omitempty"`
	ShipmentDurationUnit  string          `json:"shipment_duration_unit,omitempty"`
	ServiceType           string          `json:"service_type,omitempty"`
	ShippingType          string          `json:"shipping_type,omitempty"`
	Rate                  int64           `json:"price"`
	ShippingFee           int64           `json:"shipping_fee"`
	ShippingFeeDiscount   int64           `json:"shipping_fee_discount"`
	ShippingFeeSurcharge  int64           `json:"shipping_fee_surcharge"`
	Tracking              CourierTracking `json:"tracking"`
}

// CourierTracking references the shipment at the courier provider once booked.
type CourierTracking struct {
	ProviderOrderID string `json:"provider_order_id,omitempty"`
	WaybillID       string `json:"waybill_id,omitempty"`
	Link            string `json:"link,omitempty"`
}

// CourierSnapshot freezes a courier quote at the moment it was accepted.
// Pickup and delivery each hold their own snapshot; neither is refreshed later.
type CourierSnapshot struct {
	quote CourierQuote
	guard guard.ConstructorGuard
}

func NewCourierSnapshot(q CourierQuote) (CourierSnapshot, error) {
	if q.Currency == "" {
		q.Currency = DefaultCurrency
	}

	if err := errors.Join(
		requireText("company", q.Company),
		requireText("courier_name", q.CourierName),
		requireText("courier_code", q.CourierCode),
		requireText("courier_service_name", q.ServiceName),
		requireText("courier_service_code", q.ServiceCode),
		requireNonNegative("price", q.Rate),
		requireNonNegative("shipping_fee", q.ShippingFee),
		requireNonNegative("shipping_fee_discount", q.ShippingFeeDiscount),
		requireNonNegative("shipping_fee_surcharge", q.ShippingFeeSurcharge),
	); err != nil {
		return CourierSnapshot{}, err
	}

	return CourierSnapshot{quote: q, guard: guard.NewConstructorGuard()}, nil
}

func (c CourierSnapshot) Validate() error {
	return c.guard.Validate(ErrCourierSnapshotIsNotConstructed)
}

// Quote returns a copy of the captured quote.
func (c CourierSnapshot) Quote() CourierQuote {
	return c.quote
}

func (c CourierSnapshot) Company() string {
	return c.quote.Company
}

func (c CourierSnapshot) ShippingFee() int64 {
	return c.quote.ShippingFee
}

// matches reports whether the snapshot was quoted by the courier the method names.
func (c CourierSnapshot) matches(method string) bool {
	return strings.EqualFold(c.quote.Company, method) || strings.EqualFold(c.quote.CourierCode, method)
}

func requireText(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError(field)
	}
	return nil
}

func requireNonNegative(field string, v int64) error {
	if v < 0 {
		return errs.NewValueIsOutOfRangeError(field, v, 0, "unbounded")
	}
	return nil
}
