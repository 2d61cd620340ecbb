package http

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type lineItemRequest struct {
	ItemID       string          `json:"item_id" validate:"required,uuid"`
	ItemName     string          `json:"item_name" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit" validate:"required,oneof=kg pcs"`
	PricePerUnit int64           `json:"price_per_unit" validate:"gte=0"`
	Subtotal     int64           `json:"subtotal" validate:"gte=0"`
}

// courierQuoteRequest is the accepted rate as returned by the courier-rates
// endpoint, sent back flat in the request body. Its fields are checked by
// order.NewCourierSnapshot.
type courierQuoteRequest struct {
	Company               string `json:"company"`
	CourierName           string `json:"courier_name"`
	CourierCode           string `json:"courier_code"`
	CourierServiceName    string `json:"courier_service_name"`
	CourierServiceCode    string `json:"courier_service_code"`
	Currency              string `json:"currency"`
	Description           string `json:"description"`
	Duration              string `json:"duration"`
	ShipmentDurationRange string `json:"shipment_duration_range"`
	ShipmentDurationUnit  string `json:"shipment_duration_unit"`
	ServiceType           string `json:"service_type"`
	ShippingType          string `json:"shipping_type"`
	Price                 *int64 `json:"price"`
	ShippingFee           *int64 `json:"shipping_fee"`
	ShippingFeeDiscount   int64  `json:"shipping_fee_discount"`
	ShippingFeeSurcharge  int64  `json:"shipping_fee_surcharge"`
}

// quote returns nil when the body carries no courier at all. A courier sent
// without its price or shipping fee is rejected rather than priced at zero.
func (r courierQuoteRequest) quote() (*order.CourierQuote, error) {
	if r.Company == "" && r.CourierCode == "" && r.CourierServiceCode == "" {
		return nil, nil
	}

	var errList []error
	if r.Price == nil {
		errList = append(errList, errs.NewValueIsRequiredError("price"))
	}
	if r.ShippingFee == nil {
		errList = append(errList, errs.NewValueIsRequiredError("shipping_fee"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &order.CourierQuote{
		Company:               r.Company,
		CourierName:           r.CourierName,
		CourierCode:           r.CourierCode,
		ServiceName:           r.CourierServiceName,
		ServiceCode:           r.CourierServiceCode,
		Currency:              r.Currency,
		Description:           r.Description,
		Duration:              r.Duration,
		ShipmentDurationRange: r.ShipmentDurationRange,
		ShipmentDurationUnit:  r.ShipmentDurationUnit,
		ServiceType:           r.ServiceType,
		ShippingType:          r.ShippingType,
		Rate:                  *r.Price,
		ShippingFee:           *r.ShippingFee,
		ShippingFeeDiscount:   r.ShippingFeeDiscount,
		ShippingFeeSurcharge:  r.ShippingFeeSurcharge,
	}, nil
}

type createOrderRequest struct {
	BranchID            string            `json:"branch_id" validate:"required,uuid"`
	EstimatedWeight     int               `json:"estimated_weight" validate:"gte=0"`
	CustomerName        string            `json:"customer_name" validate:"max=100"`
	CustomerPhone       string            `json:"customer_phone" validate:"required,max=20"`
	CustomerAddress     string            `json:"customer_address" validate:"required"`
	CustomerLatitude    *float64          `json:"customer_latitude" validate:"required"`
	CustomerLongitude   *float64          `json:"customer_longitude" validate:"required"`
	PickupScheduledTime string            `json:"pickup_scheduled_time"`
	Notes               string            `json:"notes"`
	SpecialInstructions string            `json:"special_instructions"`
	ItemsDetail         []lineItemRequest `json:"items_detail" validate:"omitempty,min=1,dive"`
	PickupMethod        string            `json:"pickup_method" validate:"required,oneof=free_pickup gojek grab"`

	courierQuoteRequest
}

type chooseDeliveryPaymentRequest struct {
	DeliveryMethod string `json:"delivery_method" validate:"required,oneof=self_pickup free_delivery gojek grab"`
	PaymentMethod  string `json:"payment_method" validate:"required,oneof=cash online"`

	courierQuoteRequest
}

type updateOrderStatusRequest struct {
	OrderStatus string `json:"order_status" validate:"required"`
	Notes       string `json:"notes" validate:"max=500"`
}

type updateActualWeightRequest struct {
	ActualWeightItems []lineItemRequest `json:"actual_weight_items" validate:"required,min=1,dive"`
	ActualWeight      *decimal.Decimal  `json:"actual_weight"`
	ProofVideoURL     string            `json:"proof_video_url" validate:"omitempty,url"`
	Notes             string            `json:"notes"`
}

type courierRatesRequest struct {
	BranchID             string   `json:"branch_id" validate:"required,uuid"`
	DestinationLatitude  *float64 `json:"destination_latitude" validate:"required,latitude"`
	DestinationLongitude *float64 `json:"destination_longitude" validate:"required,longitude"`
	Type                 string   `json:"type" validate:"required,oneof=pickup delivery"`
	Weight               int      `json:"weight" validate:"omitempty,min=100"`
	Value                int64    `json:"value" validate:"gte=0"`
}

type trackOrderRequest struct {
	WaybillID        string `json:"waybill_id" validate:"required_without=CourierWaybillID"`
	CourierWaybillID string `json:"courier_waybill_id" validate:"required_without=WaybillID"`
	Courier          string `json:"courier" validate:"required_with=CourierWaybillID,omitempty,oneof=gojek grab"`
}

// paymentNotificationRequest is the gateway webhook body.
type paymentNotificationRequest struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}

type listOrdersRequest struct {
	Page    int `query:"page" validate:"gte=0"`
	PerPage int `query:"per_page" validate:"gte=0,lte=100"`
}

func lineItems(field string, reqs []lineItemRequest) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(reqs))
	var errList []error
	for i, r := range reqs {
		id, err := kernel.UUIDFromString(r.ItemID)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("%s.%d.item_id", field, i), err))
			continue
		}
		unit, err := order.ParseUnit(r.Unit)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("%s.%d.unit", field, i), err))
			continue
		}
		item, err := order.NewLineItem(id, r.ItemName, r.Quantity, unit, r.PricePerUnit, r.Subtotal)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return items, nil
}

func parseID(field, s string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return id, nil
}
