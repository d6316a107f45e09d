package commands

import (
	"context"

	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/services"
	"dealersales/internal/core/ports"
	"dealersales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RefreshPaymentStatusCommandHandler recomputes an order's remaining balance
// from the ledger and lets the coordinator apply the PAID transition when it
// reached zero. Orders that already progressed past OPEN are left alone.
type RefreshPaymentStatusCommandHandler struct {
	uowFactory  PaymentUoWFactory
	coordinator services.StatusCoordinator
	clock       ports.Clock
}

// NewRefreshPaymentStatusCommandHandler creates a handler for payment status
// refreshes.
func NewRefreshPaymentStatusCommandHandler(
	uowFactory PaymentUoWFactory,
	coordinator services.StatusCoordinator,
	clock ports.Clock,
) RefreshPaymentStatusCommandHandler {
	return RefreshPaymentStatusCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
		clock:       clock,
	}
}

// Handle processes the refresh command.
func (h RefreshPaymentStatusCommandHandler) Handle(ctx context.Context, cmd RefreshPaymentStatusCommand) error {
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

	documentRepo := uow.DocumentRepository()
	order, err := documentRepo.GetForUpdate(ctx, cmd.DocumentID())
	if err != nil {
		return err
	}

	if order.Kind() != document.KindOrder {
		return errs.NewWrongDocumentKindError("refresh payment status", order.Kind().String())
	}

	paid, err := uow.PaymentRepository().TotalForDocument(ctx, order.ID())
	if err != nil {
		return err
	}

	remaining := order.TotalValue().Sub(paid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	if err = h.coordinator.PaymentApplied(order, remaining, h.clock.Now()); err != nil {
		return err
	}

	if err = documentRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
