package commands

import (
	"context"

	"dealersales/internal/core/domain/services"
	"dealersales/internal/core/ports"
)

// SendQuoteCommandHandler handles the DRAFT to SENT quote transition.
type SendQuoteCommandHandler struct {
	uowFactory  DocumentUoWFactory
	coordinator services.StatusCoordinator
	clock       ports.Clock
}

// NewSendQuoteCommandHandler creates a handler for sending quotes.
func NewSendQuoteCommandHandler(
	uowFactory DocumentUoWFactory,
	coordinator services.StatusCoordinator,
	clock ports.Clock,
) SendQuoteCommandHandler {
	return SendQuoteCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
		clock:       clock,
	}
}

// Handle processes the send command. The quote row stays locked from the
// guarded read to the status write.
func (h SendQuoteCommandHandler) Handle(ctx context.Context, cmd SendQuoteCommand) error {
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

	if err = h.coordinator.QuoteSent(quote, h.clock.Now()); err != nil {
		return err
	}

	if err = documentRepo.Update(ctx, quote); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
