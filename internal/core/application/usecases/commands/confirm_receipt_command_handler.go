package commands

import (
	"context"

	"dealersales/internal/core/ports"
)

// ConfirmReceiptCommandHandler records the customer confirmation on a
// delivery in transit. The owning document is not touched.
type ConfirmReceiptCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      ports.Clock
}

// NewConfirmReceiptCommandHandler creates a handler for receipt
// confirmations.
func NewConfirmReceiptCommandHandler(
	uowFactory DeliveryUoWFactory,
	clock ports.Clock,
) ConfirmReceiptCommandHandler {
	return ConfirmReceiptCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the confirmation command.
func (h ConfirmReceiptCommandHandler) Handle(ctx context.Context, cmd ConfirmReceiptCommand) error {
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

	if err = handover.ConfirmReceipt(h.clock.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, handover); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
