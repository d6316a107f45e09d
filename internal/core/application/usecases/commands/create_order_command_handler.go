package commands

import (
	"context"

	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/services"
	"dealersales/internal/core/ports"
)

// CreateOrderCommandHandler handles order creation. Like quote creation, each
// line snapshots the MSRP active for its vehicle and the commanding dealer.
type CreateOrderCommandHandler struct {
	uowFactory QuoteUoWFactory
	resolver   services.PriceResolver
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory QuoteUoWFactory,
	resolver services.PriceResolver,
	clock ports.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		clock:      clock,
	}
}

// Handle processes the order creation command. Fails with
// services.ErrNoActivePolicy when any requested vehicle has no active price.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lines, err := resolveLines(ctx, uow.PricePolicyRepository(), h.resolver, cmd.DealerID(), cmd.Lines(), now)
	if err != nil {
		return err
	}

	order, err := document.NewOrder(
		cmd.DocumentID(),
		cmd.DealerID(),
		cmd.CustomerID(),
		cmd.ActorID(),
		cmd.PromotionID(),
		lines,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.DocumentRepository().Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
