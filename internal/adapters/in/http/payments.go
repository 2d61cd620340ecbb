package http

import (
	"errors"
	"net/http"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PaymentSessionView is returned by the pay endpoint.
type PaymentSessionView struct {
	SnapToken   string    `json:"snaptoken"`
	RedirectURL string    `json:"redirect_url"`
	ExpiresAt   time.Time `json:"expires_at"`
	OrderNumber string    `json:"order_number"`
	TotalAmount int64     `json:"total_amount"`
	Reused      bool      `json:"reused"`
}

// Pay godoc
//
//	@Summary	Open (or reuse) a hosted payment session for an order
//	@Tags		payments
//	@Produce	json
//	@Security	BearerAuth
//	@Param		order	path		string	true	"Order id"
//	@Success	200		{object}	Envelope{data=PaymentSessionView}
//	@Failure	400		{object}	Envelope
//	@Failure	500		{object}	Envelope
//	@Router		/api/payments/pay/{order} [post]
func (s *Server) Pay(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewInitiatePaymentCommand(actor.ID, actor.Email, orderID)
	if err != nil {
		return err
	}

	result, err := s.h.InitiatePayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Snap token berhasil dibuat", PaymentSessionView{
		SnapToken:   result.Session.Token,
		RedirectURL: result.Session.RedirectURL,
		ExpiresAt:   result.Session.ExpiresAt,
		OrderNumber: result.Order.Number().String(),
		TotalAmount: result.Order.AmountDue(),
		Reused:      result.Reused,
	})
}

// PaymentStatus godoc
//
//	@Summary	Local and provider payment state of an order
//	@Tags		payments
//	@Produce	json
//	@Security	BearerAuth
//	@Param		order	path		string	true	"Order id"
//	@Success	200		{object}	Envelope{data=queries.PaymentStatusView}
//	@Router		/api/payments/status/{order} [get]
func (s *Server) PaymentStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := orderIDParam(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetPaymentStatusQuery(actor.ID, orderID)
	if err != nil {
		return err
	}

	view, err := s.h.PaymentStatus.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Status transaksi berhasil didapatkan", view)
}

// PaymentNotification godoc
//
//	@Summary	Payment gateway webhook
//	@Tags		payments
//	@Accept		json
//	@Produce	json
//	@Param		body	body		paymentNotificationRequest	true	"Notification"
//	@Success	200		{object}	Envelope
//	@Failure	403		{object}	Envelope
//	@Router		/api/payments/notification [post]
func (s *Server) PaymentNotification(c echo.Context) error {
	var req paymentNotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewApplyPaymentNotificationCommand(ports.PaymentNotification{
		OrderRef:          req.OrderID,
		StatusCode:        req.StatusCode,
		GrossAmount:       req.GrossAmount,
		SignatureKey:      req.SignatureKey,
		TransactionStatus: req.TransactionStatus,
		FraudStatus:       req.FraudStatus,
		PaymentType:       req.PaymentType,
	})
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	changed, err := s.h.ApplyPaymentNotification.Handle(ctx, cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		// The gateway retries anything but 2xx; an order it knows and we don't will never appear.
		logging.FromContext(ctx).Warn("payment notification for unknown order", zap.String("order_number", req.OrderID))
		return respond(c, http.StatusOK, "Order not found, notification ignored", nil)
	}
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Info("payment notification applied",
		zap.String("order_number", req.OrderID),
		zap.String("transaction_status", req.TransactionStatus),
		zap.Bool("changed", changed))
	return respond(c, http.StatusOK, "Notification handled successfully", nil)
}
