package queries

import (
	"errors"
	"strings"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery looks a shipment up by the provider waybill id or, failing
// that, by the courier's own waybill id together with the courier code.
type TrackShipmentQuery struct {
	waybillID string
	courier   string
	guard     guard.ConstructorGuard
}

func NewTrackShipmentQuery(waybillID, courierWaybillID, courier string) (TrackShipmentQuery, error) {
	waybillID = strings.TrimSpace(waybillID)
	courierWaybillID = strings.TrimSpace(courierWaybillID)
	courier = strings.TrimSpace(courier)

	switch {
	case waybillID != "":
		return TrackShipmentQuery{waybillID: waybillID, guard: guard.NewConstructorGuard()}, nil
	case courierWaybillID != "" && courier != "":
		return TrackShipmentQuery{waybillID: courierWaybillID, courier: courier, guard: guard.NewConstructorGuard()}, nil
	}
	return TrackShipmentQuery{}, errs.NewValueIsRequiredErrorWithCause("waybill_id",
		errors.New("waybill_id or courier_waybill_id with courier is required"))
}

func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

func (q TrackShipmentQuery) WaybillID() string {
	return q.waybillID
}

// Courier is empty when tracking by the provider waybill id.
func (q TrackShipmentQuery) Courier() string {
	return q.courier
}
