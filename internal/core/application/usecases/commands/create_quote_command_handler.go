package commands

import (
	"context"
	"fmt"
	"time"

	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/pricing"
	"dealersales/internal/core/domain/services"
	"dealersales/internal/core/ports"
)

// CreateQuoteCommandHandler handles quote creation. Each line snapshots the
// MSRP of the price policy active for its vehicle and the commanding dealer
// at handling time.
type CreateQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	resolver   services.PriceResolver
	clock      ports.Clock
}

// NewCreateQuoteCommandHandler creates a handler for quote creation.
func NewCreateQuoteCommandHandler(
	uowFactory QuoteUoWFactory,
	resolver services.PriceResolver,
	clock ports.Clock,
) CreateQuoteCommandHandler {
	return CreateQuoteCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		clock:      clock,
	}
}

// Handle processes the quote creation command. Fails with
// services.ErrNoActivePolicy when any requested vehicle has no active price.
func (h CreateQuoteCommandHandler) Handle(ctx context.Context, cmd CreateQuoteCommand) error {
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

	quote, err := document.NewQuote(
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

	if err = uow.DocumentRepository().Add(ctx, quote); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveLines turns line requests into document lines by resolving each
// vehicle's active price for the dealer and snapshotting the MSRP.
func resolveLines(
	ctx context.Context,
	policyRepo ports.PricePolicyRepository,
	resolver services.PriceResolver,
	dealerID kernel.UUID,
	requests []LineRequest,
	asOf time.Time,
) ([]document.Line, error) {
	scope, err := pricing.DealerScope(dealerID)
	if err != nil {
		return nil, err
	}

	lines := make([]document.Line, 0, len(requests))
	for _, request := range requests {
		candidates, err := policyRepo.GetActiveForVehicle(ctx, request.VehicleID(), asOf)
		if err != nil {
			return nil, err
		}

		policy, err := resolver.Resolve(candidates, scope, asOf)
		if err != nil {
			return nil, fmt.Errorf("vehicle %s: %w", request.VehicleID(), err)
		}

		line, err := document.NewLine(
			kernel.NewUUID(),
			request.VehicleID(),
			request.ColorCode(),
			request.Qty(),
			policy.MSRP(),
			request.DiscountValue(),
		)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}
