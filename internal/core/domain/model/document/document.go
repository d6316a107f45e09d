package document

import (
	"errors"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrDocumentIsNotConstructed is returned when a Document instance was not
// created through NewQuote, NewOrder, or RestoreDocument.
var ErrDocumentIsNotConstructed = errors.New("Document must be created via NewQuote, NewOrder, or RestoreDocument")

// Document is the SalesDocument aggregate root. It identifies one sales
// transaction between a dealer and a customer and owns its lines. Payments
// and the delivery reference the document but are separate aggregates with
// their own repositories; the document's status is the single source of truth
// for what stage the transaction is at.
//
// Status mutation methods (Send, Accept, Reject, MarkPaid,
// MarkDeliveryScheduled, MarkInDelivery, MarkDelivered) are reserved for the
// StatusCoordinator domain service.
type Document struct {
	id          kernel.UUID
	kind        Kind
	dealerID    kernel.UUID
	customerID  kernel.UUID
	status      Status
	promotionID *kernel.UUID
	lines       []Line
	createdBy   kernel.UUID
	createdAt   time.Time
	updatedAt   *time.Time

	isConstructed bool
}

// NewQuote creates a QUOTE document in DRAFT status. createdBy is the acting
// user recorded for audit; promotionID is optional.
func NewQuote(
	id kernel.UUID,
	dealerID kernel.UUID,
	customerID kernel.UUID,
	createdBy kernel.UUID,
	promotionID *kernel.UUID,
	lines []Line,
	createdAt time.Time,
) (*Document, error) {
	return newDocument(id, KindQuote, StatusDraft, dealerID, customerID, createdBy, promotionID, lines, createdAt)
}

// NewOrder creates an ORDER document in OPEN status. createdBy is the acting
// user recorded for audit; promotionID is optional.
func NewOrder(
	id kernel.UUID,
	dealerID kernel.UUID,
	customerID kernel.UUID,
	createdBy kernel.UUID,
	promotionID *kernel.UUID,
	lines []Line,
	createdAt time.Time,
) (*Document, error) {
	return newDocument(id, KindOrder, StatusOpen, dealerID, customerID, createdBy, promotionID, lines, createdAt)
}

func newDocument(
	id kernel.UUID,
	kind Kind,
	status Status,
	dealerID kernel.UUID,
	customerID kernel.UUID,
	createdBy kernel.UUID,
	promotionID *kernel.UUID,
	lines []Line,
	createdAt time.Time,
) (*Document, error) {
	if err := errors.Join(
		id.Validate(),
		dealerID.Validate(),
		customerID.Validate(),
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}

	if promotionID != nil {
		if err := promotionID.Validate(); err != nil {
			return nil, err
		}
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Document{
		id:            id,
		kind:          kind,
		dealerID:      dealerID,
		customerID:    customerID,
		status:        status,
		promotionID:   promotionID,
		lines:         lines,
		createdBy:     createdBy,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreDocument reconstructs a document from persistence. The status is
// validated against the known vocabulary but no lifecycle guard runs; the
// stored state is trusted.
func RestoreDocument(
	id kernel.UUID,
	kind Kind,
	status Status,
	dealerID kernel.UUID,
	customerID kernel.UUID,
	createdBy kernel.UUID,
	promotionID *kernel.UUID,
	lines []Line,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Document, error) {
	if err := errors.Join(kind.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	doc, err := newDocument(id, kind, status, dealerID, customerID, createdBy, promotionID, lines, createdAt)
	if err != nil {
		return nil, err
	}

	doc.updatedAt = updatedAt
	return doc, nil
}

// Validate ensures the document was created through a constructor.
func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}
	return nil
}

// ID returns the document's unique identifier.
func (d *Document) ID() kernel.UUID {
	return d.id
}

// Kind returns the document kind.
func (d *Document) Kind() Kind {
	return d.kind
}

// DealerID returns the dealer reference.
func (d *Document) DealerID() kernel.UUID {
	return d.dealerID
}

// CustomerID returns the customer reference.
func (d *Document) CustomerID() kernel.UUID {
	return d.customerID
}

// Status returns the current lifecycle status.
func (d *Document) Status() Status {
	return d.status
}

// PromotionID returns the optional promotion reference, nil when absent.
func (d *Document) PromotionID() *kernel.UUID {
	return d.promotionID
}

// Lines returns the document's line items.
func (d *Document) Lines() []Line {
	return d.lines
}

// CreatedBy returns the acting user who created the document.
func (d *Document) CreatedBy() kernel.UUID {
	return d.createdBy
}

// CreatedAt returns the creation timestamp.
func (d *Document) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the last mutation timestamp, nil if never updated.
func (d *Document) UpdatedAt() *time.Time {
	return d.updatedAt
}

// TotalValue returns the document's total value: the sum over lines of
// unitPrice * qty - discountValue. Each term is non-negative by the line
// invariants, so the total never goes below zero.
func (d *Document) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, line := range d.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Send moves a quote from DRAFT to SENT.
func (d *Document) Send(now time.Time) error {
	if err := d.requireKind(KindQuote, "send"); err != nil {
		return err
	}

	newStatus, err := d.status.Send()
	if err != nil {
		return err
	}

	d.applyStatus(newStatus, now)
	return nil
}

// Accept moves a quote from SENT to ACCEPTED.
func (d *Document) Accept(now time.Time) error {
	if err := d.requireKind(KindQuote, "accept"); err != nil {
		return err
	}

	newStatus, err := d.status.Accept()
	if err != nil {
		return err
	}

	d.applyStatus(newStatus, now)
	return nil
}

// Reject moves a quote from SENT to REJECTED.
func (d *Document) Reject(now time.Time) error {
	if err := d.requireKind(KindQuote, "reject"); err != nil {
		return err
	}

	newStatus, err := d.status.Reject()
	if err != nil {
		return err
	}

	d.applyStatus(newStatus, now)
	return nil
}

// MarkPaid advances an order to PAID. Only valid from OPEN: once the order has
// progressed to delivery stages, a zero balance no longer changes the status.
func (d *Document) MarkPaid(now time.Time) error {
	return d.advance(StatusPaid, now)
}

// MarkDeliveryScheduled advances an order to DELIVERY_SCHEDULED. Valid from
// OPEN or PAID; scheduling may happen before the order is fully paid.
func (d *Document) MarkDeliveryScheduled(now time.Time) error {
	return d.advance(StatusDeliveryScheduled, now)
}

// MarkInDelivery advances an order to IN_DELIVERY.
func (d *Document) MarkInDelivery(now time.Time) error {
	return d.advance(StatusInDelivery, now)
}

// MarkDelivered advances an order to its final DELIVERED status.
func (d *Document) MarkDelivered(now time.Time) error {
	return d.advance(StatusDelivered, now)
}

func (d *Document) advance(requested Status, now time.Time) error {
	if err := d.requireKind(KindOrder, "advance status"); err != nil {
		return err
	}

	newStatus, err := d.status.Advance(requested)
	if err != nil {
		return err
	}

	d.applyStatus(newStatus, now)
	return nil
}

func (d *Document) requireKind(kind Kind, operation string) error {
	if d.kind != kind {
		return errs.NewWrongDocumentKindError(operation, d.kind.String())
	}
	return nil
}

func (d *Document) applyStatus(status Status, now time.Time) {
	d.status = status
	d.updatedAt = &now
}
