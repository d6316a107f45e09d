package documentrepo

import (
	"context"
	"errors"

	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDocumentRepository implements DocumentRepository using GORM.
type GormDocumentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDocumentRepository creates a new GORM document repository.
func NewGormDocumentRepository(db *gorm.DB, tracker aggregateTracker) *GormDocumentRepository {
	return &GormDocumentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new document together with its lines.
func (r *GormDocumentRepository) Add(ctx context.Context, aggregate *document.Document) error {
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

// Update saves changes to an existing document. Lines are immutable after
// creation, only the document row is written.
func (r *GormDocumentRepository) Update(ctx context.Context, aggregate *document.Document) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DocumentDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":       dto.Status,
			"promotion_id": dto.PromotionID,
			"updated_at":   dto.UpdatedAt,
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

// Get retrieves a document by ID.
func (r *GormDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a document and locks its row for the rest of the
// transaction.
func (r *GormDocumentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	return r.get(ctx, id, true)
}

func (r *GormDocumentRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*document.Document, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto DocumentDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("document", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
