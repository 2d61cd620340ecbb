package jobs

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/pkg/logging"
	"laundry/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const notificationDispatchJobName = "dispatch_notifications"

type notificationDispatcher interface {
	Handle(ctx context.Context, cmd commands.DispatchNotificationsCommand) (commands.DispatchNotificationsResult, error)
}

// NotificationDispatchJob drains the notification outbox on a schedule.
type NotificationDispatchJob struct {
	handler  notificationDispatcher
	cmd      commands.DispatchNotificationsCommand
	schedule string
	cron     *cron.Cron
	metrics  *metrics.Recorder
	logger   *zap.Logger
}

func NewNotificationDispatchJob(
	handler notificationDispatcher,
	schedule string,
	batchSize int,
	recorder *metrics.Recorder,
	logger *zap.Logger,
) (*NotificationDispatchJob, error) {
	cmd, err := commands.NewDispatchNotificationsCommand(batchSize)
	if err != nil {
		return nil, err
	}
	logger = logging.Component(logger, "notification_dispatch_job")
	return &NotificationDispatchJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron:     newCron(logger),
		metrics:  recorder,
		logger:   logger,
	}, nil
}

func (j *NotificationDispatchJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("notification dispatch job started", zap.String("schedule", j.schedule))
	return nil
}

// Run dispatches one batch. Send failures are already recorded on the
// messages, so they are logged here and never returned.
func (j *NotificationDispatchJob) Run(ctx context.Context) {
	result, err := j.handler.Handle(ctx, j.cmd)
	j.metrics.NotificationsDispatched(result.Sent, result.Failed)
	j.metrics.JobRun(notificationDispatchJobName, err)

	if err != nil {
		j.logger.Error("notification dispatch finished with errors",
			zap.Int("sent", result.Sent), zap.Int("failed", result.Failed), zap.Error(err))
		return
	}
	if result.Sent > 0 {
		j.logger.Info("notifications dispatched", zap.Int("sent", result.Sent))
	}
}

func (j *NotificationDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("notification dispatch job stopped")
}
