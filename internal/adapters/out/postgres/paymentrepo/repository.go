package paymentrepo

import (
	"context"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM. The ledger
// is append-only, there are no update or delete operations.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a payment to the ledger.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllForDocument retrieves every payment recorded against the document,
// oldest first.
func (r *GormPaymentRepository) GetAllForDocument(ctx context.Context, documentID kernel.UUID) ([]*payment.Payment, error) {
	if err := documentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Order("paid_at, id").
		Find(&dtos, "document_id = ?", documentID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, nil
}

// TotalForDocument sums the payment amounts recorded against the document.
// Returns zero when none exist.
func (r *GormPaymentRepository) TotalForDocument(ctx context.Context, documentID kernel.UUID) (decimal.Decimal, error) {
	if err := documentID.Validate(); err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("document_id = ?", documentID.Bytes()).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}
