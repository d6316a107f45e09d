package commands

import (
	"errors"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"
	"dealersales/internal/pkg/guard"
)

var ErrCreateQuoteCommandIsNotConstructed = errors.New(
	"CreateQuoteCommand must be created via NewCreateQuoteCommand constructor",
)

// CreateQuoteCommand represents a request to create a QUOTE document in DRAFT
// status. Line prices are resolved from the active price policies at handling
// time; a vehicle without an active policy rejects the whole command.
type CreateQuoteCommand struct { //nolint:recvcheck //using for validation
	documentID  kernel.UUID
	dealerID    kernel.UUID
	customerID  kernel.UUID
	promotionID *kernel.UUID
	lines       []LineRequest
	actorID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateQuoteCommand creates a command to build a quote. At least one line
// is required; every line must come from NewLineRequest. actorID is the
// acting user recorded as the document's creator.
func NewCreateQuoteCommand(
	documentID kernel.UUID,
	dealerID kernel.UUID,
	customerID kernel.UUID,
	promotionID *kernel.UUID,
	lines []LineRequest,
	actorID kernel.UUID,
) (CreateQuoteCommand, error) {
	if err := errors.Join(
		documentID.Validate(),
		dealerID.Validate(),
		customerID.Validate(),
		actorID.Validate(),
	); err != nil {
		return CreateQuoteCommand{}, err
	}

	if promotionID != nil {
		if err := promotionID.Validate(); err != nil {
			return CreateQuoteCommand{}, err
		}
	}

	if len(lines) == 0 {
		return CreateQuoteCommand{}, errs.NewValueIsRequiredError("lines")
	}
	if err := validateLineRequests(lines); err != nil {
		return CreateQuoteCommand{}, err
	}

	return CreateQuoteCommand{
		documentID:  documentID,
		dealerID:    dealerID,
		customerID:  customerID,
		promotionID: promotionID,
		lines:       lines,
		actorID:     actorID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateQuoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateQuoteCommandIsNotConstructed)
}

// DocumentID returns the identifier for the new quote.
func (c CreateQuoteCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// DealerID returns the dealer reference.
func (c CreateQuoteCommand) DealerID() kernel.UUID {
	return c.dealerID
}

// CustomerID returns the customer reference.
func (c CreateQuoteCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PromotionID returns the optional promotion reference, nil when absent.
func (c CreateQuoteCommand) PromotionID() *kernel.UUID {
	return c.promotionID
}

// Lines returns the requested lines.
func (c CreateQuoteCommand) Lines() []LineRequest {
	return c.lines
}

// ActorID returns the acting user.
func (c CreateQuoteCommand) ActorID() kernel.UUID {
	return c.actorID
}
