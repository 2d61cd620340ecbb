// Package http is the REST adapter of the order service.
//
//	@title						Laundry Order API
//	@version					1.0
//	@description				Order lifecycle of the laundry marketplace: creation, fulfillment, delivery and payment.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package http

import (
	"context"
	"net/http"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "laundry/internal/adapters/in/http/docs" // registers the API document
)

// Handler is the shape shared by every command and query handler.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

type orderViewReader interface {
	ByID(ctx context.Context, id kernel.UUID) (queries.OrderView, error)
}

// Handlers lists the use cases the HTTP adapter exposes.
type Handlers struct {
	CreateOrder              Handler[commands.CreateOrderCommand, *order.Order]
	UpdateOrderStatus        Handler[commands.UpdateOrderStatusCommand, *order.Order]
	ChooseDeliveryPayment    Handler[commands.ChooseDeliveryPaymentCommand, *order.Order]
	RecordActualWeight       Handler[commands.RecordActualWeightCommand, *order.Order]
	InitiatePayment          Handler[commands.InitiatePaymentCommand, commands.InitiatePaymentResult]
	ApplyPaymentNotification Handler[commands.ApplyPaymentNotificationCommand, bool]

	GetOrder           Handler[queries.GetOrderQuery, queries.OrderView]
	ListCustomerOrders Handler[queries.ListCustomerOrdersQuery, queries.OrderPage]
	CustomerOrderStats Handler[queries.GetCustomerOrderStatsQuery, queries.CustomerOrderStats]
	BranchStats        Handler[queries.GetBranchStatsQuery, queries.BranchStats]
	PaymentStatus      Handler[queries.GetPaymentStatusQuery, queries.PaymentStatusView]
	QuoteCourierRates  Handler[queries.QuoteCourierRatesQuery, queries.CourierRates]
	TrackShipment      Handler[queries.TrackShipmentQuery, ports.Tracking]

	OrderViews orderViewReader
}

type Config struct {
	JWTSecret []byte
	// Location is the business timezone used for the branch dashboard calendar.
	Location *time.Location
	Gatherer prometheus.Gatherer
}

// Server implements the REST endpoints on top of the command and query handlers.
type Server struct {
	h        Handlers
	location *time.Location
	now      func() time.Time
}

func NewServer(h Handlers, cfg Config) *Server {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	return &Server{h: h, location: location, now: time.Now}
}

// NewEcho builds the echo instance with middleware and every route registered.
func NewEcho(s *Server, cfg Config, recorder *metrics.Recorder, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler
	e.Use(observe(logger, recorder))

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.POST("/branches/courier-rates", s.CourierRates)
	api.GET("/branches/available-couriers", s.AvailableCouriers)
	api.POST("/orders/track", s.TrackOrder)
	api.POST("/payments/notification", s.PaymentNotification)

	auth := api.Group("", Authenticate(cfg.JWTSecret))
	auth.GET("/branches/stats", s.BranchStats)
	auth.GET("/orders", s.ListOrders)
	auth.POST("/orders", s.CreateOrder)
	auth.GET("/orders/stats", s.OrderStats)
	auth.GET("/orders/:order", s.GetOrder)
	auth.POST("/orders/:order/choose-delivery-payment", s.ChooseDeliveryPayment)
	auth.POST("/orders/:order/update-status", s.UpdateOrderStatus)
	auth.POST("/orders/:order/update-actual-weight", s.UpdateActualWeight)
	auth.POST("/payments/pay/:order", s.Pay)
	auth.GET("/payments/status/:order", s.PaymentStatus)

	return e
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	Envelope
//	@Router		/health [get]
func (s *Server) Health(c echo.Context) error {
	return respond(c, http.StatusOK, "Healthy", nil)
}

// presentOrder reloads the stored view of an order a command just changed.
func (s *Server) presentOrder(c echo.Context, status int, message string, o *order.Order) error {
	view, err := s.h.OrderViews.ByID(c.Request().Context(), o.ID())
	if err != nil {
		return err
	}
	return respond(c, status, message, view)
}
