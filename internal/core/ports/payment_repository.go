package ports

import (
	"context"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
)

// PaymentRepository defines the persistence contract for the append-only
// payment ledger. Payments are never updated or deleted.
type PaymentRepository interface {
	// Add appends a payment to the ledger.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetAllForDocument retrieves every payment recorded against the
	// document, oldest first.
	GetAllForDocument(ctx context.Context, documentID kernel.UUID) ([]*payment.Payment, error)

	// TotalForDocument sums the payment amounts recorded against the
	// document. Returns zero when none exist.
	TotalForDocument(ctx context.Context, documentID kernel.UUID) (decimal.Decimal, error)
}
