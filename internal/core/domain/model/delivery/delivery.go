// Package delivery contains the Delivery aggregate: the physical handover
// process tied one-to-one to an ORDER sales document.
//
// A delivery is created in SCHEDULED state by the first scheduling call;
// later scheduling calls for the same document reschedule the existing record
// (upsert semantics) while it is still SCHEDULED. Completion is gated on an
// explicit customer confirmation recorded while the delivery is IN_TRANSIT.
package delivery

import (
	"errors"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the handover aggregate root. Guarded operations (Reschedule,
// Start, ConfirmReceipt, Complete, Cancel) enforce the lifecycle; ForceStatus
// bypasses the ordering guards for administrative corrections and validates
// only that the requested tag is known.
type Delivery struct {
	id                  kernel.UUID
	documentID          kernel.UUID
	scheduledDate       time.Time
	deliveredDate       *time.Time
	status              Status
	handoverNote        *string
	customerConfirmed   bool
	customerConfirmedAt *time.Time
	createdAt           time.Time

	isConstructed bool
}

// NewDelivery creates a delivery in SCHEDULED state for the given document.
func NewDelivery(
	id kernel.UUID,
	documentID kernel.UUID,
	scheduledDate time.Time,
	handoverNote *string,
	createdAt time.Time,
) (*Delivery, error) {
	if err := errors.Join(id.Validate(), documentID.Validate()); err != nil {
		return nil, err
	}

	if scheduledDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("scheduledDate")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Delivery{
		id:            id,
		documentID:    documentID,
		scheduledDate: scheduledDate,
		status:        StatusScheduled,
		handoverNote:  handoverNote,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence. The stored status
// is validated against the vocabulary but no lifecycle guard runs.
func RestoreDelivery(
	id kernel.UUID,
	documentID kernel.UUID,
	scheduledDate time.Time,
	deliveredDate *time.Time,
	status Status,
	handoverNote *string,
	customerConfirmed bool,
	customerConfirmedAt *time.Time,
	createdAt time.Time,
) (*Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDelivery(id, documentID, scheduledDate, handoverNote, createdAt)
	if err != nil {
		return nil, err
	}

	d.deliveredDate = deliveredDate
	d.status = status
	d.customerConfirmed = customerConfirmed
	d.customerConfirmedAt = customerConfirmedAt
	return d, nil
}

// Validate ensures the delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// DocumentID returns the owning sales document.
func (d *Delivery) DocumentID() kernel.UUID {
	return d.documentID
}

// ScheduledDate returns the booked handover date.
func (d *Delivery) ScheduledDate() time.Time {
	return d.scheduledDate
}

// DeliveredDate returns the actual handover date, nil until completed.
func (d *Delivery) DeliveredDate() *time.Time {
	return d.deliveredDate
}

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// HandoverNote returns the optional handover note.
func (d *Delivery) HandoverNote() *string {
	return d.handoverNote
}

// CustomerConfirmed reports whether the customer confirmed receipt.
func (d *Delivery) CustomerConfirmed() bool {
	return d.customerConfirmed
}

// CustomerConfirmedAt returns the confirmation timestamp, nil if unconfirmed.
func (d *Delivery) CustomerConfirmedAt() *time.Time {
	return d.customerConfirmedAt
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// Reschedule updates the scheduled date and note. Only allowed while the
// delivery is still SCHEDULED: once the vehicle moves, the booking is fixed.
func (d *Delivery) Reschedule(scheduledDate time.Time, handoverNote *string) error {
	if d.status != StatusScheduled {
		return errs.NewInvalidStateTransitionError("delivery", d.status.String(), StatusScheduled.String())
	}

	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}

	d.scheduledDate = scheduledDate
	if handoverNote != nil {
		d.handoverNote = handoverNote
	}
	return nil
}

// Start moves the delivery from SCHEDULED to IN_TRANSIT.
func (d *Delivery) Start() error {
	newStatus, err := d.status.Start()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// ConfirmReceipt records the customer's confirmation while the delivery is
// IN_TRANSIT. The delivery state itself does not change.
func (d *Delivery) ConfirmReceipt(now time.Time) error {
	if d.status != StatusInTransit {
		return errs.NewInvalidStateTransitionError("delivery", d.status.String(), StatusInTransit.String())
	}

	d.customerConfirmed = true
	d.customerConfirmedAt = &now
	return nil
}

// Complete moves the delivery from IN_TRANSIT to DELIVERED, stamping the
// delivered date. Requires a prior customer confirmation. A nil note keeps
// the existing handover note.
func (d *Delivery) Complete(deliveredDate time.Time, handoverNote *string) error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	if !d.customerConfirmed {
		return errs.NewInvalidStateTransitionErrorWithCause(
			"delivery", d.status.String(), StatusDelivered.String(), ErrCustomerNotConfirmed)
	}

	if deliveredDate.IsZero() {
		return errs.NewValueIsRequiredError("deliveredDate")
	}

	d.status = newStatus
	d.deliveredDate = &deliveredDate
	if handoverNote != nil {
		d.handoverNote = handoverNote
	}
	return nil
}

// Cancel moves the delivery to CANCELLED from SCHEDULED or IN_TRANSIT.
func (d *Delivery) Cancel() error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// ForceStatus sets the status directly, validating only that the tag is
// known. Reserved for administrative corrections; the ordering guarantees of
// the guarded operations do not apply.
func (d *Delivery) ForceStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	d.status = status
	return nil
}
