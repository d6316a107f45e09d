package commands

import (
	"errors"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/guard"
)

var ErrConfirmReceiptCommandIsNotConstructed = errors.New(
	"ConfirmReceiptCommand must be created via NewConfirmReceiptCommand constructor",
)

// ConfirmReceiptCommand represents the customer confirming receipt of a
// delivery in transit. Confirmation gates completion; it does not itself
// change the delivery status.
type ConfirmReceiptCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmReceiptCommand creates a command to confirm receipt.
func NewConfirmReceiptCommand(deliveryID, actorID kernel.UUID) (ConfirmReceiptCommand, error) {
	if err := errors.Join(deliveryID.Validate(), actorID.Validate()); err != nil {
		return ConfirmReceiptCommand{}, err
	}

	return ConfirmReceiptCommand{
		deliveryID: deliveryID,
		actorID:    actorID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReceiptCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReceiptCommandIsNotConstructed)
}

// DeliveryID returns the delivery being confirmed.
func (c ConfirmReceiptCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ActorID returns the acting user.
func (c ConfirmReceiptCommand) ActorID() kernel.UUID {
	return c.actorID
}
