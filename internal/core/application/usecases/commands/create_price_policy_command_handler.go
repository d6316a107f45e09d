package commands

import (
	"context"

	"dealersales/internal/core/domain/model/pricing"
	"dealersales/internal/core/ports"
)

// CreatePricePolicyCommandHandler handles catalog price policy registration.
type CreatePricePolicyCommandHandler struct {
	uowFactory PricePolicyUoWFactory
	clock      ports.Clock
}

// NewCreatePricePolicyCommandHandler creates a handler for price policy
// registration. Requires a PricePolicyUoWFactory for transactional
// persistence and a clock for the creation stamp.
func NewCreatePricePolicyCommandHandler(
	uowFactory PricePolicyUoWFactory,
	clock ports.Clock,
) CreatePricePolicyCommandHandler {
	return CreatePricePolicyCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the price policy registration command.
func (h CreatePricePolicyCommandHandler) Handle(ctx context.Context, cmd CreatePricePolicyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	policy, err := pricing.NewPolicy(
		cmd.PolicyID(),
		cmd.VehicleID(),
		cmd.Scope(),
		cmd.MSRP(),
		cmd.Wholesale(),
		cmd.ValidFrom(),
		cmd.ValidTo(),
		cmd.ActorID(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PricePolicyRepository().Add(ctx, policy); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
