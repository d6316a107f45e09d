package commands

import (
	"errors"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents a request to put a scheduled delivery in
// transit.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to start a delivery.
func NewStartDeliveryCommand(deliveryID, actorID kernel.UUID) (StartDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), actorID.Validate()); err != nil {
		return StartDeliveryCommand{}, err
	}

	return StartDeliveryCommand{
		deliveryID: deliveryID,
		actorID:    actorID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to start.
func (c StartDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ActorID returns the acting user.
func (c StartDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}
