package commands

import (
	"errors"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"
	"dealersales/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create an ORDER document in OPEN
// status, ready to take payments and a delivery.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	documentID  kernel.UUID
	dealerID    kernel.UUID
	customerID  kernel.UUID
	promotionID *kernel.UUID
	lines       []LineRequest
	actorID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to build an order. At least one
// line is required; every line must come from NewLineRequest.
func NewCreateOrderCommand(
	documentID kernel.UUID,
	dealerID kernel.UUID,
	customerID kernel.UUID,
	promotionID *kernel.UUID,
	lines []LineRequest,
	actorID kernel.UUID,
) (CreateOrderCommand, error) {
	if err := errors.Join(
		documentID.Validate(),
		dealerID.Validate(),
		customerID.Validate(),
		actorID.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if promotionID != nil {
		if err := promotionID.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	if len(lines) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("lines")
	}
	if err := validateLineRequests(lines); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
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
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// DocumentID returns the identifier for the new order.
func (c CreateOrderCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// DealerID returns the dealer reference.
func (c CreateOrderCommand) DealerID() kernel.UUID {
	return c.dealerID
}

// CustomerID returns the customer reference.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PromotionID returns the optional promotion reference, nil when absent.
func (c CreateOrderCommand) PromotionID() *kernel.UUID {
	return c.promotionID
}

// Lines returns the requested lines.
func (c CreateOrderCommand) Lines() []LineRequest {
	return c.lines
}

// ActorID returns the acting user.
func (c CreateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}
