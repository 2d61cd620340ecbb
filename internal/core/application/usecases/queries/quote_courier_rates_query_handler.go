package queries

import (
	"context"
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourierCodes are the couriers offered for pickup and delivery.
var CourierCodes = []string{"gojek", "grab"}

// QuoteCourierRatesQueryHandler orients the trip by leg and proxies the quote
// to the courier provider. Nothing is stored.
type QuoteCourierRatesQueryHandler struct {
	db      *gorm.DB
	courier ports.CourierGateway
}

func NewQuoteCourierRatesQueryHandler(db *gorm.DB, courier ports.CourierGateway) QuoteCourierRatesQueryHandler {
	return QuoteCourierRatesQueryHandler{db: db, courier: courier}
}

func (h QuoteCourierRatesQueryHandler) Handle(ctx context.Context, query QuoteCourierRatesQuery) (CourierRates, error) {
	if err := query.Validate(); err != nil {
		return CourierRates{}, err
	}

	var row struct {
		ID            uuid.UUID
		Name          string
		Phone         string
		DetailAddress string
		Latitude      *float64
		Longitude     *float64
	}
	err := h.db.WithContext(ctx).Table("branches").
		Select("id, name, phone, detail_address, latitude, longitude").
		Where("id = ?", query.BranchID().Bytes()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return CourierRates{}, errs.NewObjectNotFoundError("branch", query.BranchID().String())
	}
	if err != nil {
		return CourierRates{}, err
	}
	if row.Latitude == nil || row.Longitude == nil {
		return CourierRates{}, errs.NewValueIsInvalidErrorWithCause("branch_id",
			fmt.Errorf("branch %s has no coordinates", row.Name))
	}
	branchLoc, err := kernel.NewLocation(*row.Latitude, *row.Longitude)
	if err != nil {
		return CourierRates{}, err
	}

	origin, destination := query.Customer(), branchLoc
	if query.Leg() == LegDelivery {
		origin, destination = branchLoc, query.Customer()
	}

	rates, err := h.courier.QuoteRates(ctx, ports.RateRequest{
		Origin:        origin,
		Destination:   destination,
		Couriers:      CourierCodes,
		WeightGrams:   query.WeightGrams(),
		DeclaredValue: query.DeclaredValue(),
	})
	if err != nil {
		return CourierRates{}, err
	}

	return CourierRates{
		Branch: BranchView{
			ID:        row.ID.String(),
			Name:      row.Name,
			Phone:     row.Phone,
			Address:   row.DetailAddress,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		},
		Type:            query.Leg(),
		TypeDescription: query.Leg().Description(),
		Origin:          Point{Latitude: origin.Latitude(), Longitude: origin.Longitude()},
		Destination:     Point{Latitude: destination.Latitude(), Longitude: destination.Longitude()},
		Rates:           rates,
	}, nil
}
