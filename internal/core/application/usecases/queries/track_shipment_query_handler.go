package queries

import (
	"context"

	"laundry/internal/core/ports"
)

type TrackShipmentQueryHandler struct {
	courier ports.CourierGateway
}

func NewTrackShipmentQueryHandler(courier ports.CourierGateway) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{courier: courier}
}

func (h TrackShipmentQueryHandler) Handle(ctx context.Context, query TrackShipmentQuery) (ports.Tracking, error) {
	if err := query.Validate(); err != nil {
		return ports.Tracking{}, err
	}
	return h.courier.Track(ctx, ports.TrackRequest{WaybillID: query.WaybillID(), Courier: query.Courier()})
}
