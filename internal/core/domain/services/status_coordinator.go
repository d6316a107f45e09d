package services

import (
	"time"

	"dealersales/internal/core/domain/model/document"

	"github.com/shopspring/decimal"
)

// StatusCoordinator is the domain service that owns the sales document status
// field. Payment and delivery operations never touch the status themselves;
// after mutating their own aggregate they report the event here, inside the
// same unit of work, and the coordinator decides whether the document
// advances.
//
// Order transitions are one-directional. Events that arrive after the
// document already progressed past the stage they would set are absorbed as
// no-ops rather than errors, because the event itself was legitimate; only
// transitions that the state machine forbids for the triggering operation
// surface an error.
type StatusCoordinator struct{}

// NewStatusCoordinator creates a new StatusCoordinator instance.
func NewStatusCoordinator() StatusCoordinator {
	return StatusCoordinator{}
}

// QuoteSent moves a quote to SENT.
func (c StatusCoordinator) QuoteSent(doc *document.Document, now time.Time) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	return doc.Send(now)
}

// QuoteAccepted moves a quote to ACCEPTED.
func (c StatusCoordinator) QuoteAccepted(doc *document.Document, now time.Time) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	return doc.Accept(now)
}

// QuoteRejected moves a quote to REJECTED.
func (c StatusCoordinator) QuoteRejected(doc *document.Document, now time.Time) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	return doc.Reject(now)
}

// PaymentApplied reacts to a change of the order's remaining balance. The
// order moves to PAID only when the balance reached zero while the order was
// still OPEN. A zero balance on an order that already progressed to delivery
// stages changes nothing, and a positive balance never moves the status.
func (c StatusCoordinator) PaymentApplied(
	doc *document.Document,
	remaining decimal.Decimal,
	now time.Time,
) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if !remaining.IsZero() {
		return nil
	}
	if doc.Status() != document.StatusOpen {
		return nil
	}

	return doc.MarkPaid(now)
}

// DeliveryScheduled reacts to a delivery being scheduled or rescheduled for
// the order. The document moves to DELIVERY_SCHEDULED unless it already
// progressed to that stage or beyond.
func (c StatusCoordinator) DeliveryScheduled(doc *document.Document, now time.Time) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.Status().AtOrBeyond(document.StatusDeliveryScheduled) {
		return nil
	}

	return doc.MarkDeliveryScheduled(now)
}

// DeliveryStarted moves the order to IN_DELIVERY.
func (c StatusCoordinator) DeliveryStarted(doc *document.Document, now time.Time) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	return doc.MarkInDelivery(now)
}

// DeliveryCompleted moves the order to its final DELIVERED status.
func (c StatusCoordinator) DeliveryCompleted(doc *document.Document, now time.Time) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	return doc.MarkDelivered(now)
}
