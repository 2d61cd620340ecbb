package cmd

import (
	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/biteship"
	"laundry/internal/adapters/out/fonnte"
	"laundry/internal/adapters/out/midtrans"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/telegram"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"
	"laundry/internal/pkg/logging"
	"laundry/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	recorder   *metrics.Recorder
	logger     *zap.Logger

	courier  ports.CourierGateway
	payments ports.PaymentGateway
	notifier ports.Notifier
	mirrors  []ports.Notifier
}

// NewCompositionRoot builds the gateway clients once; handlers created from
// the root share them. Metrics are registered on reg.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, reg prometheus.Registerer, logger *zap.Logger) (*CompositionRoot, error) {
	recorder := metrics.NewRecorder(reg)

	root := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		recorder:   recorder,
		logger:     logger,
		courier: biteship.NewClient(biteship.Config{
			BaseURL:    cfg.Biteship.URL,
			APIKey:     cfg.Biteship.APIKey,
			Timeout:    cfg.Biteship.Timeout,
			MaxRetries: cfg.Biteship.MaxRetries,
		}, recorder),
		payments: midtrans.NewClient(midtrans.Config{
			ServerKey:    cfg.Midtrans.ServerKey,
			IsProduction: cfg.Midtrans.IsProduction,
			SnapURL:      cfg.Midtrans.SnapURL,
			APIURL:       cfg.Midtrans.APIURL,
			SessionTTL:   cfg.Midtrans.SessionTTL,
			Timeout:      cfg.Midtrans.Timeout,
			MaxRetries:   cfg.Midtrans.MaxRetries,
		}, recorder),
		notifier: fonnte.NewNotifier(fonnte.Config{
			URL:        cfg.Fonnte.URL,
			APIKey:     cfg.Fonnte.APIKey,
			Timeout:    cfg.Fonnte.Timeout,
			MaxRetries: cfg.Fonnte.MaxRetries,
		}, recorder),
	}

	if cfg.Fonnte.APIKey == "" {
		logger.Warn("fonnte api key not set, customer and branch notifications will fail")
	}
	if cfg.Telegram.Enabled() {
		ops, err := telegram.NewNotifier(telegram.Config{Token: cfg.Telegram.Token, ChatID: cfg.Telegram.ChatID})
		if err != nil {
			return nil, err
		}
		root.mirrors = append(root.mirrors, ops)
	}
	return root, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateOrderCommandHandler(f, services.NewPricingCalculator())
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	h := commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChooseDeliveryPaymentCommandHandler() *commands.ChooseDeliveryPaymentCommandHandler {
	h := commands.NewChooseDeliveryPaymentCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateRecordActualWeightCommandHandler() *commands.RecordActualWeightCommandHandler {
	h := commands.NewRecordActualWeightCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateInitiatePaymentCommandHandler() *commands.InitiatePaymentCommandHandler {
	h := commands.NewInitiatePaymentCommandHandler(c.orderUoWFactory(), c.payments)
	return &h
}

func (c *CompositionRoot) CreateApplyPaymentNotificationCommandHandler() *commands.ApplyPaymentNotificationCommandHandler {
	h := commands.NewApplyPaymentNotificationCommandHandler(c.orderUoWFactory(), c.payments)
	return &h
}

func (c *CompositionRoot) CreateReconcilePaymentsCommandHandler() *commands.ReconcilePaymentsCommandHandler {
	h := commands.NewReconcilePaymentsCommandHandler(c.orderUoWFactory(), c.payments)
	return &h
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() *commands.DispatchNotificationsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewDispatchNotificationsCommandHandler(f, c.notifier, c.mirrors...)
	return &h
}

// HTTPHandlers binds every use case the REST adapter serves.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:              c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:        c.CreateUpdateOrderStatusCommandHandler(),
		ChooseDeliveryPayment:    c.CreateChooseDeliveryPaymentCommandHandler(),
		RecordActualWeight:       c.CreateRecordActualWeightCommandHandler(),
		InitiatePayment:          c.CreateInitiatePaymentCommandHandler(),
		ApplyPaymentNotification: c.CreateApplyPaymentNotificationCommandHandler(),

		GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB),
		ListCustomerOrders: queries.NewListCustomerOrdersQueryHandler(c.gormDB),
		CustomerOrderStats: queries.NewGetCustomerOrderStatsQueryHandler(c.gormDB),
		BranchStats:        queries.NewGetBranchStatsQueryHandler(c.gormDB),
		PaymentStatus:      queries.NewGetPaymentStatusQueryHandler(c.gormDB, c.payments),
		QuoteCourierRates:  queries.NewQuoteCourierRatesQueryHandler(c.gormDB, c.courier),
		TrackShipment:      queries.NewTrackShipmentQueryHandler(c.courier),

		OrderViews: queries.NewOrderViewReader(c.gormDB),
	}
}

// Echo returns the configured web server; gatherer backs /metrics.
func (c *CompositionRoot) Echo(gatherer prometheus.Gatherer) *echo.Echo {
	cfg := httpin.Config{
		JWTSecret: []byte(c.cfg.Auth.JWTSecret),
		Location:  c.cfg.App.Location,
		Gatherer:  gatherer,
	}
	return httpin.NewEcho(httpin.NewServer(c.HTTPHandlers(), cfg), cfg, c.recorder, logging.Component(c.logger, "http"))
}

func (c *CompositionRoot) JobManager() (*jobs.JobManager, error) {
	dispatch, err := jobs.NewNotificationDispatchJob(
		c.CreateDispatchNotificationsCommandHandler(),
		c.cfg.Jobs.DispatchSchedule,
		c.cfg.Jobs.DispatchBatchSize,
		c.recorder,
		c.logger,
	)
	if err != nil {
		return nil, err
	}

	reconcile, err := jobs.NewPaymentReconciliationJob(
		c.CreateReconcilePaymentsCommandHandler(),
		jobs.PaymentReconciliationConfig{
			Schedule:  c.cfg.Jobs.ReconcileSchedule,
			OlderThan: c.cfg.Jobs.ReconcileOlderThan,
			BatchSize: c.cfg.Jobs.ReconcileBatchSize,
			Timeout:   c.cfg.Jobs.ReconcileTimeout,
		},
		c.recorder,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(dispatch, reconcile), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
