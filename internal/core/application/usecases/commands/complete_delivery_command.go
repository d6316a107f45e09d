package commands

import (
	"errors"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"
	"dealersales/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a request to finish a delivery in
// transit whose customer has confirmed receipt.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	deliveredDate time.Time
	handoverNote  *string
	actorID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
func NewCompleteDeliveryCommand(
	deliveryID kernel.UUID,
	deliveredDate time.Time,
	handoverNote *string,
	actorID kernel.UUID,
) (CompleteDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), actorID.Validate()); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	if deliveredDate.IsZero() {
		return CompleteDeliveryCommand{}, errs.NewValueIsRequiredError("deliveredDate")
	}

	return CompleteDeliveryCommand{
		deliveryID:    deliveryID,
		deliveredDate: deliveredDate,
		handoverNote:  handoverNote,
		actorID:       actorID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to complete.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DeliveredDate returns the actual handover date.
func (c CompleteDeliveryCommand) DeliveredDate() time.Time {
	return c.deliveredDate
}

// HandoverNote returns the optional closing note, nil to keep the existing
// one.
func (c CompleteDeliveryCommand) HandoverNote() *string {
	return c.handoverNote
}

// ActorID returns the acting user.
func (c CompleteDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}
