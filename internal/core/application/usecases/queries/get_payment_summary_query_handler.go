package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPaymentSummaryQueryHandler computes a document's ledger summary. The
// totals come from aggregate SQL, not from loading the aggregates, so large
// ledgers stay cheap to summarize.
type GetPaymentSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentSummaryQueryHandler creates a handler for ledger summaries.
func NewGetPaymentSummaryQueryHandler(db *gorm.DB) GetPaymentSummaryQueryHandler {
	return GetPaymentSummaryQueryHandler{db: db}
}

// Handle executes the summary. Returns errs.ObjectNotFoundError when the
// document does not exist.
func (h GetPaymentSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentSummaryQuery,
) (GetPaymentSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentSummaryQueryResponse{}, err
	}

	response := GetPaymentSummaryQueryResponse{DocumentID: query.DocumentID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE((
				SELECT SUM(l.unit_price * l.qty - l.discount_value)
				FROM document_lines l
				WHERE l.document_id = d.id
			), 0) AS total_value,
			COALESCE((
				SELECT SUM(p.amount)
				FROM payments p
				WHERE p.document_id = d.id
			), 0) AS total_paid
		FROM documents d
		WHERE d.id = ?
	`, query.DocumentID().String()).Row()

	if err := row.Scan(&response.TotalValue, &response.TotalPaid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetPaymentSummaryQueryResponse{},
				errs.NewObjectNotFoundError("documentID", query.DocumentID())
		}
		return GetPaymentSummaryQueryResponse{}, err
	}

	response.RemainingBalance = response.TotalValue.Sub(response.TotalPaid)
	if response.RemainingBalance.IsNegative() {
		response.RemainingBalance = decimal.Zero
	}

	entries, err := h.loadEntries(ctx, query.DocumentID())
	if err != nil {
		return GetPaymentSummaryQueryResponse{}, err
	}
	response.Payments = entries

	return response, nil
}

func (h GetPaymentSummaryQueryHandler) loadEntries(ctx context.Context, documentID kernel.UUID) ([]PaymentEntry, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			method,
			amount,
			paid_at
		FROM payments
		WHERE document_id = ?
		ORDER BY paid_at, id
	`, documentID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]PaymentEntry, 0)
	for rows.Next() {
		var (
			id     uuid.UUID
			method string
			amount decimal.Decimal
			paidAt time.Time
		)

		if err = rows.Scan(&id, &method, &amount, &paidAt); err != nil {
			return nil, err
		}

		paymentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		entries = append(entries, PaymentEntry{
			PaymentID: paymentID,
			Method:    method,
			Amount:    amount,
			PaidAt:    paidAt,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
