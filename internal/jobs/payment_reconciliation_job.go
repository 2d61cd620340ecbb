package jobs

import (
	"context"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/pkg/logging"
	"laundry/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const paymentReconciliationJobName = "reconcile_payments"

type paymentReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcilePaymentsCommand) (commands.ReconcilePaymentsResult, error)
}

// PaymentReconciliationJob refreshes online payments whose webhook never
// arrived by asking the gateway for their status.
type PaymentReconciliationJob struct {
	handler  paymentReconciler
	cmd      commands.ReconcilePaymentsCommand
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	metrics  *metrics.Recorder
	logger   *zap.Logger
}

type PaymentReconciliationConfig struct {
	Schedule  string
	OlderThan time.Duration
	BatchSize int
	// Timeout bounds one run; zero means no bound.
	Timeout time.Duration
}

func NewPaymentReconciliationJob(
	handler paymentReconciler,
	cfg PaymentReconciliationConfig,
	recorder *metrics.Recorder,
	logger *zap.Logger,
) (*PaymentReconciliationJob, error) {
	cmd, err := commands.NewReconcilePaymentsCommand(cfg.OlderThan, cfg.BatchSize)
	if err != nil {
		return nil, err
	}
	logger = logging.Component(logger, "payment_reconciliation_job")
	return &PaymentReconciliationJob{
		handler:  handler,
		cmd:      cmd,
		schedule: cfg.Schedule,
		timeout:  cfg.Timeout,
		cron:     newCron(logger),
		metrics:  recorder,
		logger:   logger,
	}, nil
}

func (j *PaymentReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("payment reconciliation job started",
		zap.String("schedule", j.schedule), zap.Duration("older_than", j.cmd.OlderThan()))
	return nil
}

func (j *PaymentReconciliationJob) Run(ctx context.Context) {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	result, err := j.handler.Handle(ctx, j.cmd)
	j.metrics.PaymentsReconciled(result.Checked, result.Updated, result.Failed)
	j.metrics.JobRun(paymentReconciliationJobName, err)

	fields := []zap.Field{
		zap.Int("checked", result.Checked),
		zap.Int("updated", result.Updated),
		zap.Int("failed", result.Failed),
	}
	if err != nil {
		j.logger.Warn("payment reconciliation finished with errors", append(fields, zap.Error(err))...)
		return
	}
	if result.Checked > 0 {
		j.logger.Info("payments reconciled", fields...)
	}
}

func (j *PaymentReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("payment reconciliation job stopped")
}
