package commands

import (
	"errors"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/guard"
)

var ErrSendQuoteCommandIsNotConstructed = errors.New(
	"SendQuoteCommand must be created via NewSendQuoteCommand constructor",
)

// SendQuoteCommand represents a request to send a DRAFT quote to its
// customer.
type SendQuoteCommand struct { //nolint:recvcheck //using for validation
	documentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendQuoteCommand creates a command to send a quote.
func NewSendQuoteCommand(documentID, actorID kernel.UUID) (SendQuoteCommand, error) {
	if err := errors.Join(documentID.Validate(), actorID.Validate()); err != nil {
		return SendQuoteCommand{}, err
	}

	return SendQuoteCommand{
		documentID: documentID,
		actorID:    actorID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendQuoteCommand) Validate() error {
	return c.guard.Validate(ErrSendQuoteCommandIsNotConstructed)
}

// DocumentID returns the quote to send.
func (c SendQuoteCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// ActorID returns the acting user.
func (c SendQuoteCommand) ActorID() kernel.UUID {
	return c.actorID
}
