package commands

import (
	"errors"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/guard"
)

var ErrAcceptQuoteCommandIsNotConstructed = errors.New(
	"AcceptQuoteCommand must be created via NewAcceptQuoteCommand constructor",
)

// AcceptQuoteCommand represents a customer accepting a SENT quote.
type AcceptQuoteCommand struct { //nolint:recvcheck //using for validation
	documentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptQuoteCommand creates a command to accept a quote.
func NewAcceptQuoteCommand(documentID, actorID kernel.UUID) (AcceptQuoteCommand, error) {
	if err := errors.Join(documentID.Validate(), actorID.Validate()); err != nil {
		return AcceptQuoteCommand{}, err
	}

	return AcceptQuoteCommand{
		documentID: documentID,
		actorID:    actorID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptQuoteCommand) Validate() error {
	return c.guard.Validate(ErrAcceptQuoteCommandIsNotConstructed)
}

// DocumentID returns the quote to accept.
func (c AcceptQuoteCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// ActorID returns the acting user.
func (c AcceptQuoteCommand) ActorID() kernel.UUID {
	return c.actorID
}
