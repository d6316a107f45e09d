// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PaymentStatusJob - sweeps OPEN orders every minute and refreshes their
// payment status, catching orders whose balance was settled by ledger
// imports that bypassed the payment endpoint.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(openOrdersHandler, refreshHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal().Err(err).Msg("failed to start jobs")
//	}
//
//	defer jobManager.StopAll()
//
// The sweep is idempotent: refreshing an order whose status already reflects
// its ledger is a no-op, so overlapping runs are harmless.
package jobs
