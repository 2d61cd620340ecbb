package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// JobManager starts and stops every scheduled job of the service.
type JobManager struct {
	notificationDispatchJob  *NotificationDispatchJob
	paymentReconciliationJob *PaymentReconciliationJob
}

func NewJobManager(dispatch *NotificationDispatchJob, reconcile *PaymentReconciliationJob) *JobManager {
	return &JobManager{
		notificationDispatchJob:  dispatch,
		paymentReconciliationJob: reconcile,
	}
}

// StartAll starts the jobs in order. If one fails, the ones already running are stopped.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification dispatch job: %w", err)
	}

	if err := jm.paymentReconciliationJob.Start(); err != nil {
		jm.notificationDispatchJob.Stop()
		return fmt.Errorf("failed to start payment reconciliation job: %w", err)
	}

	return nil
}

// StopAll waits for in-flight runs to finish.
func (jm *JobManager) StopAll() {
	jm.paymentReconciliationJob.Stop()
	jm.notificationDispatchJob.Stop()
}

// newCron skips a tick while the previous run of the same job is still busy.
func newCron(logger *zap.Logger) *cron.Cron {
	cronLogger := cron.PrintfLogger(zap.NewStdLog(logger))
	return cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
}
