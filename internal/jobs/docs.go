// Package jobs runs the service's background work on robfig/cron schedules.
//
// # Available Jobs
//
//  1. NotificationDispatchJob claims a batch of pending outbox messages and
//     sends them through the WhatsApp notifier (default "@every 5s").
//  2. PaymentReconciliationJob polls the payment gateway for online payments
//     that stayed pending longer than a threshold and applies the webhook rules
//     (default "@every 5m").
//
// # Usage
//
//	dispatch, _ := jobs.NewNotificationDispatchJob(dispatchHandler, "@every 5s", 50, recorder, logger)
//	reconcile, _ := jobs.NewPaymentReconciliationJob(reconcileHandler, cfg, recorder, logger)
//	jobManager := jobs.NewJobManager(dispatch, reconcile)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A run never panics the scheduler and never overlaps itself. Errors are
// logged and counted in laundry_jobs_runs_total.
package jobs
