package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder godoc
//
//	@Summary	Place an order at a branch
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		createOrderRequest	true	"Order"
//	@Success	201		{object}	Envelope{data=queries.OrderView}
//	@Failure	422		{object}	Envelope
//	@Router		/api/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req createOrderRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	branchID, err := parseID("branch_id", req.BranchID)
	if err != nil {
		return err
	}
	location, err := kernel.NewLocation(*req.CustomerLatitude, *req.CustomerLongitude)
	if err != nil {
		return err
	}
	contact, err := order.NewContact(req.CustomerName, req.CustomerPhone, req.CustomerAddress, location)
	if err != nil {
		return err
	}
	items, err := lineItems("items_detail", req.ItemsDetail)
	if err != nil {
		return err
	}
	pickup, err := order.ParsePickupMethod(req.PickupMethod)
	if err != nil {
		return err
	}
	var courier *order.CourierQuote
	if pickup.IsCourier() {
		if courier, err = req.quote(); err != nil {
			return err
		}
	}

	cmd, err := commands.NewCreateOrderCommand(commands.CreateOrderInput{
		CustomerID:          actor.ID,
		BranchID:            branchID,
		Contact:             contact,
		Items:               items,
		EstimatedWeight:     req.EstimatedWeight,
		PickupMethod:        pickup,
		PickupCourier:       courier,
		PickupScheduledTime: req.PickupScheduledTime,
		Notes:               req.Notes,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		return err
	}

	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.presentOrder(c, http.StatusCreated, "Order berhasil dibuat", o)
}

// ListOrders godoc
//
//	@Summary	List the caller's orders, newest first
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page		query		int	false	"Page, from 1"
//	@Param		per_page	query		int	false	"Page size, at most 100"
//	@Success	200			{object}	Envelope{data=queries.OrderPage}
//	@Router		/api/orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req listOrdersRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	query, err := queries.NewListCustomerOrdersQuery(actor.ID, req.Page, req.PerPage)
	if err != nil {
		return err
	}
	page, err := s.h.ListCustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", page)
}

// OrderStats godoc
//
//	@Summary	Order counters of the caller
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	Envelope{data=queries.CustomerOrderStats}
//	@Router		/api/orders/stats [get]
func (s *Server) OrderStats(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetCustomerOrderStatsQuery(actor.ID)
	if err != nil {
		return err
	}
	stats, err := s.h.CustomerOrderStats.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", stats)
}

// GetOrder godoc
//
//	@Summary	Order detail for its customer
//	@Tags		orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		order	path		string	true	"Order id"
//	@Success	200		{object}	Envelope{data=queries.OrderView}
//	@Failure	403		{object}	Envelope
//	@Failure	404		{object}	Envelope
//	@Router		/api/orders/{order} [get]
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(actor.ID, orderID)
	if err != nil {
		return err
	}
	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", view)
}

// ChooseDeliveryPayment godoc
//
//	@Summary	Choose how a ready order comes back and how it is paid
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		order	path		string							true	"Order id"
//	@Param		body	body		chooseDeliveryPaymentRequest	true	"Choice"
//	@Success	200		{object}	Envelope{data=queries.OrderView}
//	@Failure	400		{object}	Envelope
//	@Router		/api/orders/{order}/choose-delivery-payment [post]
func (s *Server) ChooseDeliveryPayment(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}
	var req chooseDeliveryPaymentRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	delivery, err := order.ParseDeliveryMethod(req.DeliveryMethod)
	if err != nil {
		return err
	}
	payment, err := order.ParsePaymentChoice(req.PaymentMethod)
	if err != nil {
		return err
	}
	var courier *order.CourierQuote
	if delivery.IsCourier() {
		if courier, err = req.quote(); err != nil {
			return err
		}
	}
	cmd, err := commands.NewChooseDeliveryPaymentCommand(actor.ID, orderID, delivery, payment, courier)
	if err != nil {
		return err
	}

	o, err := s.h.ChooseDeliveryPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.presentOrder(c, http.StatusOK, "Pilihan berhasil disimpan", o)
}

// UpdateOrderStatus godoc
//
//	@Summary	Move an order of the caller's branch to another status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		order	path		string						true	"Order id"
//	@Param		body	body		updateOrderStatusRequest	true	"Status"
//	@Success	200		{object}	Envelope{data=queries.OrderView}
//	@Failure	400		{object}	Envelope
//	@Failure	403		{object}	Envelope
//	@Router		/api/orders/{order}/update-status [post]
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}
	var req updateOrderStatusRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	status, err := order.ParseStatus(req.OrderStatus)
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateOrderStatusCommand(actor.ID, orderID, status, req.Notes)
	if err != nil {
		return err
	}

	o, err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.presentOrder(c, http.StatusOK, "Status order berhasil diupdate", o)
}

// UpdateActualWeight godoc
//
//	@Summary	Record the weighed items of an order of the caller's branch
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		order	path		string						true	"Order id"
//	@Param		body	body		updateActualWeightRequest	true	"Weighing"
//	@Success	200		{object}	Envelope{data=queries.OrderView}
//	@Failure	403		{object}	Envelope
//	@Router		/api/orders/{order}/update-actual-weight [post]
func (s *Server) UpdateActualWeight(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}
	var req updateActualWeightRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	items, err := lineItems("actual_weight_items", req.ActualWeightItems)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRecordActualWeightCommand(actor.ID, orderID, items, req.ActualWeight, req.ProofVideoURL, req.Notes)
	if err != nil {
		return err
	}

	o, err := s.h.RecordActualWeight.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.presentOrder(c, http.StatusOK, "Berat actual berhasil diperbarui", o)
}

// BranchStats godoc
//
//	@Summary	Dashboard of the caller's branch
//	@Tags		branches
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	Envelope{data=queries.BranchStats}
//	@Failure	403	{object}	Envelope
//	@Router		/api/branches/stats [get]
func (s *Server) BranchStats(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetBranchStatsQuery(actor.ID, s.now().In(s.location))
	if err != nil {
		return err
	}
	stats, err := s.h.BranchStats.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", stats)
}
