package jobs

import (
	"context"

	"dealersales/internal/core/application/usecases/commands"
	"dealersales/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// PaymentStatusJob periodically reconciles OPEN orders with their payment
// ledger. Orders whose remaining balance reached zero outside the payment
// endpoint get marked PAID on the next sweep.
type PaymentStatusJob struct {
	openOrdersHandler queries.GetOpenOrdersQueryHandler
	refreshHandler    commands.RefreshPaymentStatusCommandHandler
	cron              *cron.Cron
	logger            zerolog.Logger
}

// NewPaymentStatusJob creates a job sweeping open orders once a minute.
func NewPaymentStatusJob(
	openOrdersHandler queries.GetOpenOrdersQueryHandler,
	refreshHandler commands.RefreshPaymentStatusCommandHandler,
	logger zerolog.Logger,
) *PaymentStatusJob {
	return &PaymentStatusJob{
		openOrdersHandler: openOrdersHandler,
		refreshHandler:    refreshHandler,
		cron:              cron.New(cron.WithSeconds()),
		logger:            logger.With().Str("component", "payment_status_job").Logger(),
	}
}

// Start begins the payment status sweep, running at the top of every minute.
func (j *PaymentStatusJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Msg("payment status job started (running every minute)")
	return nil
}

// Stop stops the payment status sweep.
func (j *PaymentStatusJob) Stop() {
	j.cron.Stop()
	j.logger.Info().Msg("payment status job stopped")
}

func (j *PaymentStatusJob) sweep() {
	ctx := context.Background()

	orders, err := j.openOrdersHandler.Handle(ctx, queries.NewGetOpenOrdersQuery())
	if err != nil {
		j.logger.Error().Err(err).Msg("failed to list open orders")
		return
	}

	for _, order := range orders {
		cmd, cmdErr := commands.NewRefreshPaymentStatusCommand(order.ID)
		if cmdErr != nil {
			j.logger.Error().Err(cmdErr).Str("order_id", order.ID.String()).
				Msg("failed to build refresh command")
			continue
		}

		if handleErr := j.refreshHandler.Handle(ctx, cmd); handleErr != nil {
			j.logger.Error().Err(handleErr).Str("order_id", order.ID.String()).
				Msg("failed to refresh payment status")
		}
	}
}
