package pricerepo

import (
	"context"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/pricing"

	"gorm.io/gorm"
)

// GormPricePolicyRepository implements PricePolicyRepository using GORM.
// Policies are append-only, corrections are issued as new policies with a
// later valid_from.
type GormPricePolicyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPricePolicyRepository creates a new GORM price policy repository.
func NewGormPricePolicyRepository(db *gorm.DB, tracker aggregateTracker) *GormPricePolicyRepository {
	return &GormPricePolicyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new price policy to the database.
func (r *GormPricePolicyRepository) Add(ctx context.Context, aggregate *pricing.Policy) error {
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

// GetActiveForVehicle retrieves every policy for the vehicle whose validity
// window covers asOf, regardless of scope.
func (r *GormPricePolicyRepository) GetActiveForVehicle(
	ctx context.Context,
	vehicleID kernel.UUID,
	asOf time.Time,
) ([]*pricing.Policy, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PolicyDTO
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID.Bytes()).
		Where("valid_from <= ?", asOf).
		Where("valid_to IS NULL OR valid_to >= ?", asOf).
		Order("valid_from DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActive retrieves every policy active at asOf across all vehicles.
func (r *GormPricePolicyRepository) GetAllActive(ctx context.Context, asOf time.Time) ([]*pricing.Policy, error) {
	var dtos []PolicyDTO
	err := r.db.WithContext(ctx).
		Where("valid_from <= ?", asOf).
		Where("valid_to IS NULL OR valid_to >= ?", asOf).
		Order("valid_from DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []PolicyDTO) ([]*pricing.Policy, error) {
	policies := make([]*pricing.Policy, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}

	return policies, nil
}
