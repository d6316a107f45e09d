package queries

import (
	"errors"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPaymentSummaryQueryIsNotConstructed = errors.New(
	"GetPaymentSummaryQuery must be created via NewGetPaymentSummaryQuery constructor",
)

// GetPaymentSummaryQuery asks for a document's ledger state: total value,
// total paid, remaining balance, and the individual entries.
type GetPaymentSummaryQuery struct {
	documentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentSummaryQuery creates a ledger summary query.
func NewGetPaymentSummaryQuery(documentID kernel.UUID) (GetPaymentSummaryQuery, error) {
	if err := documentID.Validate(); err != nil {
		return GetPaymentSummaryQuery{}, err
	}

	return GetPaymentSummaryQuery{
		documentID: documentID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentSummaryQueryIsNotConstructed)
}

// DocumentID returns the document being summarized.
func (q GetPaymentSummaryQuery) DocumentID() kernel.UUID {
	return q.documentID
}

// PaymentEntry is one ledger row in a summary.
type PaymentEntry struct {
	PaymentID kernel.UUID     `json:"payment_id"`
	Method    string          `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    time.Time       `json:"paid_at"`
}

// GetPaymentSummaryQueryResponse carries the ledger totals. The remaining
// balance is clamped at zero.
type GetPaymentSummaryQueryResponse struct {
	DocumentID       kernel.UUID     `json:"document_id"`
	TotalValue       decimal.Decimal `json:"total_value"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Payments         []PaymentEntry  `json:"payments"`
}
