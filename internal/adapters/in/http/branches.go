package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CourierRates godoc
//
//	@Summary	Quote gojek and grab rates between a branch and the customer
//	@Tags		branches
//	@Accept		json
//	@Produce	json
//	@Param		body	body		courierRatesRequest	true	"Quote request"
//	@Success	200		{object}	Envelope{data=queries.CourierRates}
//	@Failure	422		{object}	Envelope
//	@Router		/api/branches/courier-rates [post]
func (s *Server) CourierRates(c echo.Context) error {
	var req courierRatesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	branchID, err := parseID("branch_id", req.BranchID)
	if err != nil {
		return err
	}
	leg, err := queries.ParseLeg(req.Type)
	if err != nil {
		return err
	}
	customer, err := kernel.NewLocation(*req.DestinationLatitude, *req.DestinationLongitude)
	if err != nil {
		return err
	}
	query, err := queries.NewQuoteCourierRatesQuery(branchID, leg, customer, req.Weight, req.Value)
	if err != nil {
		return err
	}

	rates, err := s.h.QuoteCourierRates.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Tarif kurir berhasil didapatkan", rates)
}

type availableCouriersView struct {
	Couriers []queries.CourierOption `json:"couriers"`
}

// AvailableCouriers godoc
//
//	@Summary	Couriers that can be quoted
//	@Tags		branches
//	@Produce	json
//	@Success	200	{object}	Envelope{data=availableCouriersView}
//	@Router		/api/branches/available-couriers [get]
func (s *Server) AvailableCouriers(c echo.Context) error {
	return respond(c, http.StatusOK, "", availableCouriersView{Couriers: queries.AvailableCouriers()})
}

// TrackOrder godoc
//
//	@Summary	Track a courier shipment
//	@Tags		branches
//	@Accept		json
//	@Produce	json
//	@Param		body	body		trackOrderRequest	true	"Waybill"
//	@Success	200		{object}	Envelope{data=ports.Tracking}
//	@Failure	500		{object}	Envelope
//	@Router		/api/orders/track [post]
func (s *Server) TrackOrder(c echo.Context) error {
	var req trackOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	query, err := queries.NewTrackShipmentQuery(req.WaybillID, req.CourierWaybillID, req.Courier)
	if err != nil {
		return err
	}
	tracking, err := s.h.TrackShipment.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Tracking berhasil didapatkan", tracking)
}
