package commands

import (
	"context"

	"dealersales/internal/core/domain/services"
	"dealersales/internal/core/ports"
)

// RejectQuoteCommandHandler handles the SENT to REJECTED quote transition.
type RejectQuoteCommandHandler struct {
	uowFactory  DocumentUoWFactory
	coordinator services.StatusCoordinator
	clock       ports.Clock
}

// NewRejectQuoteCommandHandler creates a handler for rejecting quotes.
func NewRejectQuoteCommandHandler(
	uowFactory DocumentUoWFactory,
	coordinator services.StatusCoordinator,
	clock ports.Clock,
) RejectQuoteCommandHandler {
	return RejectQuoteCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
		clock:       clock,
	}
}

// Handle processes the reject command.
func (h RejectQuoteCommandHandler) Handle(ctx context.Context, cmd RejectQuoteCommand) error {
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
	quote, err := documentRepo.GetForUpdate(ctx, cmd.DocumentID())
	if err != nil {
		return err
	}

	if err = h.coordinator.QuoteRejected(quote, h.clock.Now()); err != nil {
		return err
	}

	if err = documentRepo.Update(ctx, quote); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
