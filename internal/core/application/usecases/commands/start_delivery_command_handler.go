package commands

import (
	"context"

	"dealersales/internal/core/domain/services"
	"dealersales/internal/core/ports"
)

// StartDeliveryCommandHandler moves a delivery from SCHEDULED to IN_TRANSIT
// and the owning order to IN_DELIVERY, in one transaction. The delivery row
// is locked so two concurrent starts cannot both succeed from the same
// SCHEDULED read.
type StartDeliveryCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	coordinator services.StatusCoordinator
	clock       ports.Clock
}

// NewStartDeliveryCommandHandler creates a handler for starting deliveries.
func NewStartDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	coordinator services.StatusCoordinator,
	clock ports.Clock,
) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
		clock:       clock,
	}
}

// Handle processes the start command.
func (h StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	handover, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = handover.Start(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, handover); err != nil {
		return err
	}

	documentRepo := uow.DocumentRepository()
	order, err := documentRepo.GetForUpdate(ctx, handover.DocumentID())
	if err != nil {
		return err
	}

	if err = h.coordinator.DeliveryStarted(order, now); err != nil {
		return err
	}

	if err = documentRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
