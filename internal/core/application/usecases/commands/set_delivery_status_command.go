package commands

import (
	"errors"

	"dealersales/internal/core/domain/model/delivery"
	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/guard"
)

var ErrSetDeliveryStatusCommandIsNotConstructed = errors.New(
	"SetDeliveryStatusCommand must be created via NewSetDeliveryStatusCommand constructor",
)

// SetDeliveryStatusCommand represents an administrative status override on a
// delivery, typically forcing CANCELLED. It bypasses the lifecycle ordering
// guards and never touches the owning document.
type SetDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	status     delivery.Status
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetDeliveryStatusCommand creates a command to override a delivery
// status. Unknown status tags are rejected here, before any storage access.
func NewSetDeliveryStatusCommand(
	deliveryID kernel.UUID,
	status delivery.Status,
	actorID kernel.UUID,
) (SetDeliveryStatusCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		status.Validate(),
		actorID.Validate(),
	); err != nil {
		return SetDeliveryStatusCommand{}, err
	}

	return SetDeliveryStatusCommand{
		deliveryID: deliveryID,
		status:     status,
		actorID:    actorID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the delivery to override.
func (c SetDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Status returns the status to force.
func (c SetDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

// ActorID returns the acting user.
func (c SetDeliveryStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}
