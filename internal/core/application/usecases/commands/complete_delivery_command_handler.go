package commands

import (
	"context"

	"dealersales/internal/core/domain/services"
	"dealersales/internal/core/ports"
)

// CompleteDeliveryCommandHandler moves a confirmed delivery to DELIVERED and
// the owning order to its final DELIVERED status, in one transaction.
type CompleteDeliveryCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	coordinator services.StatusCoordinator
	clock       ports.Clock
}

// NewCompleteDeliveryCommandHandler creates a handler for completing
// deliveries.
func NewCompleteDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	coordinator services.StatusCoordinator,
	clock ports.Clock,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
		clock:       clock,
	}
}

// Handle processes the completion command. Fails with an
// InvalidStateTransitionError when the customer has not confirmed receipt.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	if err = handover.Complete(cmd.DeliveredDate(), cmd.HandoverNote()); err != nil {
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

	if err = h.coordinator.DeliveryCompleted(order, now); err != nil {
		return err
	}

	if err = documentRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
