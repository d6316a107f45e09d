package commands

import (
	"context"

	"dealersales/internal/core/domain/services"
	"dealersales/internal/core/ports"
)

// AcceptQuoteCommandHandler handles the SENT to ACCEPTED quote transition.
type AcceptQuoteCommandHandler struct {
	uowFactory  DocumentUoWFactory
	coordinator services.StatusCoordinator
	clock       ports.Clock
}

// NewAcceptQuoteCommandHandler creates a handler for accepting quotes.
func NewAcceptQuoteCommandHandler(
	uowFactory DocumentUoWFactory,
	coordinator services.StatusCoordinator,
	clock ports.Clock,
) AcceptQuoteCommandHandler {
	return AcceptQuoteCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
		clock:       clock,
	}
}

// Handle processes the accept command.
func (h AcceptQuoteCommandHandler) Handle(ctx context.Context, cmd AcceptQuoteCommand) error {
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

	if err = h.coordinator.QuoteAccepted(quote, h.clock.Now()); err != nil {
		return err
	}

	if err = documentRepo.Update(ctx, quote); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
