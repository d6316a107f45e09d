// Package pricerepo provides data transfer objects and mapping functions for
// price policy persistence. A NULL dealer_id marks a global policy.
package pricerepo

import (
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PolicyDTO represents the database structure for persisting price policies.
type PolicyDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID       `gorm:"type:uuid;index:idx_price_policies_vehicle"`
	DealerID  *uuid.UUID      `gorm:"type:uuid;index"`
	MSRP      decimal.Decimal `gorm:"column:msrp;type:numeric(14,2)"`
	Wholesale decimal.Decimal `gorm:"type:numeric(14,2)"`
	ValidFrom time.Time       `gorm:"index:idx_price_policies_vehicle"`
	ValidTo   *time.Time
	CreatedBy uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName specifies the database table name for price policy entities.
func (PolicyDTO) TableName() string {
	return "price_policies"
}

// fromDomain converts a policy aggregate to its database representation.
func fromDomain(p *pricing.Policy) PolicyDTO {
	var dealerID *uuid.UUID
	if id, ok := p.Scope().DealerID(); ok {
		raw := id.Bytes()
		dealerID = &raw
	}

	return PolicyDTO{
		ID:        p.ID().Bytes(),
		VehicleID: p.VehicleID().Bytes(),
		DealerID:  dealerID,
		MSRP:      p.MSRP(),
		Wholesale: p.Wholesale(),
		ValidFrom: p.ValidFrom(),
		ValidTo:   p.ValidTo(),
		CreatedBy: p.CreatedBy().Bytes(),
		CreatedAt: p.CreatedAt(),
	}
}

// toDomain converts a database DTO to a policy aggregate using
// RestorePolicy.
func toDomain(dto PolicyDTO) (*pricing.Policy, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var dealerID *kernel.UUID
	if dto.DealerID != nil {
		dID, dealerErr := kernel.UUIDFromBytes((*dto.DealerID)[:])
		if dealerErr != nil {
			return nil, dealerErr
		}

		dealerID = &dID
	}

	scope, err := pricing.RestoreScope(dealerID)
	if err != nil {
		return nil, err
	}

	return pricing.RestorePolicy(
		id,
		vehicleID,
		scope,
		dto.MSRP,
		dto.Wholesale,
		dto.ValidFrom,
		dto.ValidTo,
		createdBy,
		dto.CreatedAt,
	)
}
