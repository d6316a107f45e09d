package deliveryrepo

import (
	"context"
	"errors"

	"dealersales/internal/core/domain/model/delivery"
	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery to the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"scheduled_date":        dto.ScheduledDate,
			"delivered_date":        dto.DeliveredDate,
			"status":                dto.Status,
			"handover_note":         dto.HandoverNote,
			"customer_confirmed":    dto.CustomerConfirmed,
			"customer_confirmed_at": dto.CustomerConfirmedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, false, "id = ?", id.Bytes(), "delivery", id.String())
}

// GetForUpdate retrieves a delivery and locks its row for the rest of the
// transaction.
func (r *GormDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, true, "id = ?", id.Bytes(), "delivery", id.String())
}

// GetByDocument retrieves the delivery owned by the document, locked for
// update.
func (r *GormDeliveryRepository) GetByDocument(ctx context.Context, documentID kernel.UUID) (*delivery.Delivery, error) {
	if err := documentID.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, true, "document_id = ?", documentID.Bytes(), "delivery for document", documentID.String())
}

func (r *GormDeliveryRepository) first(
	ctx context.Context,
	forUpdate bool,
	condition string,
	value any,
	paramName string,
	id string,
) (*delivery.Delivery, error) {
	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto DeliveryDTO
	if err := query.First(&dto, condition, value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(paramName, id)
		}
		return nil, err
	}

	return toDomain(dto)
}
