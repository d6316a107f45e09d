package commands

import (
	"context"
	"errors"

	"dealersales/internal/core/domain/model/delivery"
	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/services"
	"dealersales/internal/core/ports"
	"dealersales/internal/pkg/errs"
)

// ScheduleDeliveryCommandHandler creates or reschedules the delivery of an
// order. The first call creates the delivery in SCHEDULED state; later calls
// update the same record while it has not left SCHEDULED. The owning order
// moves to DELIVERY_SCHEDULED unless it already progressed past that stage.
type ScheduleDeliveryCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	coordinator services.StatusCoordinator
	clock       ports.Clock
}

// NewScheduleDeliveryCommandHandler creates a handler for delivery
// scheduling.
func NewScheduleDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	coordinator services.StatusCoordinator,
	clock ports.Clock,
) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
		clock:       clock,
	}
}

// Handle processes the scheduling command.
func (h ScheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd ScheduleDeliveryCommand) error {
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

	documentRepo := uow.DocumentRepository()
	order, err := documentRepo.GetForUpdate(ctx, cmd.DocumentID())
	if err != nil {
		return err
	}

	if order.Kind() != document.KindOrder {
		return errs.NewWrongDocumentKindError("schedule delivery", order.Kind().String())
	}

	deliveryRepo := uow.DeliveryRepository()
	handover, err := deliveryRepo.GetByDocument(ctx, order.ID())
	switch {
	case err == nil:
		if err = handover.Reschedule(cmd.ScheduledDate(), cmd.HandoverNote()); err != nil {
			return err
		}
		if err = deliveryRepo.Update(ctx, handover); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		handover, err = delivery.NewDelivery(
			kernel.NewUUID(), order.ID(), cmd.ScheduledDate(), cmd.HandoverNote(), now,
		)
		if err != nil {
			return err
		}
		if err = deliveryRepo.Add(ctx, handover); err != nil {
			return err
		}
	default:
		return err
	}

	if err = h.coordinator.DeliveryScheduled(order, now); err != nil {
		return err
	}

	if err = documentRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
