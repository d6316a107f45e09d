package commands

import (
	"errors"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"
	"dealersales/internal/pkg/guard"
)

var ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
	"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
)

// ScheduleDeliveryCommand represents a request to schedule the handover of
// an order, or to move the date of an existing scheduled handover. The same
// command covers both: a document has at most one delivery.
type ScheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	documentID    kernel.UUID
	scheduledDate time.Time
	handoverNote  *string
	actorID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewScheduleDeliveryCommand creates a command to schedule or reschedule a
// delivery.
func NewScheduleDeliveryCommand(
	documentID kernel.UUID,
	scheduledDate time.Time,
	handoverNote *string,
	actorID kernel.UUID,
) (ScheduleDeliveryCommand, error) {
	if err := errors.Join(documentID.Validate(), actorID.Validate()); err != nil {
		return ScheduleDeliveryCommand{}, err
	}

	if scheduledDate.IsZero() {
		return ScheduleDeliveryCommand{}, errs.NewValueIsRequiredError("scheduledDate")
	}

	return ScheduleDeliveryCommand{
		documentID:    documentID,
		scheduledDate: scheduledDate,
		handoverNote:  handoverNote,
		actorID:       actorID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

// DocumentID returns the order whose delivery is being scheduled.
func (c ScheduleDeliveryCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// ScheduledDate returns the planned handover date.
func (c ScheduleDeliveryCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

// HandoverNote returns the optional note, nil when absent.
func (c ScheduleDeliveryCommand) HandoverNote() *string {
	return c.handoverNote
}

// ActorID returns the acting user.
func (c ScheduleDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}
