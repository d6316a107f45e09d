package commands

import (
	"context"
	"errors"

	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/model/payment"
	"dealersales/internal/core/domain/services"
	"dealersales/internal/core/ports"
	"dealersales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPaymentExceedsBalance is returned when a payment would overdraw the
// order's remaining balance. Any positive amount against a fully paid order
// fails the same way.
var ErrPaymentExceedsBalance = errors.New("payment exceeds remaining balance")

// RecordPaymentCommandHandler appends payments to the ledger. The balance
// check and the insert run in one transaction with the document row locked,
// so two concurrent payments cannot both read the same remaining balance and
// together overdraw it.
type RecordPaymentCommandHandler struct {
	uowFactory  PaymentUoWFactory
	coordinator services.StatusCoordinator
	clock       ports.Clock
}

// NewRecordPaymentCommandHandler creates a handler for recording payments.
func NewRecordPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	coordinator services.StatusCoordinator,
	clock ports.Clock,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
		clock:       clock,
	}
}

// Handle processes the payment command. Fails with a WrongDocumentKindError
// for non-ORDER documents and with ErrPaymentExceedsBalance for amounts
// above the remaining balance. When the balance reaches zero the owning
// order advances to PAID in the same transaction.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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
		return errs.NewWrongDocumentKindError("record payment", order.Kind().String())
	}

	paymentRepo := uow.PaymentRepository()
	paid, err := paymentRepo.TotalForDocument(ctx, order.ID())
	if err != nil {
		return err
	}

	remaining := order.TotalValue().Sub(paid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	if cmd.Amount().GreaterThan(remaining) {
		return ErrPaymentExceedsBalance
	}

	entry, err := payment.NewPayment(
		cmd.PaymentID(),
		order.ID(),
		cmd.Method(),
		cmd.Amount(),
		cmd.Metadata(),
		now,
	)
	if err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, entry); err != nil {
		return err
	}

	remaining = remaining.Sub(cmd.Amount())
	if err = h.coordinator.PaymentApplied(order, remaining, now); err != nil {
		return err
	}

	if err = documentRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
