package commands

import (
	"context"
)

// SetDeliveryStatusCommandHandler applies administrative delivery status
// overrides.
type SetDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewSetDeliveryStatusCommandHandler creates a handler for status overrides.
func NewSetDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) SetDeliveryStatusCommandHandler {
	return SetDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override command.
func (h SetDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd SetDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

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

	if err = handover.ForceStatus(cmd.Status()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, handover); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
