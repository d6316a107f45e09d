package commands

import (
	"errors"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/guard"
)

var ErrRejectQuoteCommandIsNotConstructed = errors.New(
	"RejectQuoteCommand must be created via NewRejectQuoteCommand constructor",
)

// RejectQuoteCommand represents a customer declining a SENT quote.
type RejectQuoteCommand struct { //nolint:recvcheck //using for validation
	documentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectQuoteCommand creates a command to reject a quote.
func NewRejectQuoteCommand(documentID, actorID kernel.UUID) (RejectQuoteCommand, error) {
	if err := errors.Join(documentID.Validate(), actorID.Validate()); err != nil {
		return RejectQuoteCommand{}, err
	}

	return RejectQuoteCommand{
		documentID: documentID,
		actorID:    actorID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectQuoteCommand) Validate() error {
	return c.guard.Validate(ErrRejectQuoteCommandIsNotConstructed)
}

// DocumentID returns the quote to reject.
func (c RejectQuoteCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// ActorID returns the acting user.
func (c RejectQuoteCommand) ActorID() kernel.UUID {
	return c.actorID
}
