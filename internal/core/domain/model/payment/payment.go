// Package payment contains the Payment entity: an append-only ledger row
// recording money received against an ORDER sales document.
//
// Payments are never updated or deleted. The ledger total and the remaining
// balance are always derived by summing the rows, so the invariant
// "TotalPaid = sum of recorded amounts" holds by construction.
package payment

import (
	"errors"
	"fmt"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment is one ledger entry against a sales document. Metadata carries
// free-form gateway context (transaction id, provider, note) and is stored
// as JSON alongside the row.
type Payment struct {
	id         kernel.UUID
	documentID kernel.UUID
	method     Method
	amount     decimal.Decimal
	metadata   map[string]string
	paidAt     time.Time

	isConstructed bool
}

// NewPayment creates a validated payment. The amount must be strictly
// positive; whether it fits within the document's remaining balance is the
// ledger's concern, checked under the document lock.
func NewPayment(
	id kernel.UUID,
	documentID kernel.UUID,
	method Method,
	amount decimal.Decimal,
	metadata map[string]string,
	paidAt time.Time,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		documentID.Validate(),
		method.Validate(),
	); err != nil {
		return nil, err
	}

	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	if paidAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("paidAt")
	}

	return &Payment{
		id:            id,
		documentID:    documentID,
		method:        method,
		amount:        amount,
		metadata:      metadata,
		paidAt:        paidAt,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id kernel.UUID,
	documentID kernel.UUID,
	method Method,
	amount decimal.Decimal,
	metadata map[string]string,
	paidAt time.Time,
) (*Payment, error) {
	return NewPayment(id, documentID, method, amount, metadata, paidAt)
}

// Validate ensures the payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// DocumentID returns the sales document this payment settles against.
func (p *Payment) DocumentID() kernel.UUID {
	return p.documentID
}

// Method returns the payment method tag.
func (p *Payment) Method() Method {
	return p.method
}

// Amount returns the paid amount, always positive.
func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

// Metadata returns the free-form gateway metadata, nil when absent.
func (p *Payment) Metadata() map[string]string {
	return p.metadata
}

// PaidAt returns the timestamp the payment was recorded with.
func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}
