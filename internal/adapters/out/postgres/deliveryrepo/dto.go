// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. A document owns at most one delivery, enforced
// by the unique index on document_id.
package deliveryrepo

import (
	"time"

	"dealersales/internal/core/domain/model/delivery"
	"dealersales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting deliveries.
type DeliveryDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocumentID          uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ScheduledDate       time.Time
	DeliveredDate       *time.Time
	Status              string  `gorm:"type:varchar(16);index"`
	HandoverNote        *string `gorm:"type:text"`
	CustomerConfirmed   bool
	CustomerConfirmedAt *time.Time
	CreatedAt           time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:                  d.ID().Bytes(),
		DocumentID:          d.DocumentID().Bytes(),
		ScheduledDate:       d.ScheduledDate(),
		DeliveredDate:       d.DeliveredDate(),
		Status:              string(d.Status()),
		HandoverNote:        d.HandoverNote(),
		CustomerConfirmed:   d.CustomerConfirmed(),
		CustomerConfirmedAt: d.CustomerConfirmedAt(),
		CreatedAt:           d.CreatedAt(),
	}
}

// toDomain converts a database DTO to a delivery aggregate using
// RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	documentID, err := kernel.UUIDFromBytes(dto.DocumentID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		documentID,
		dto.ScheduledDate,
		dto.DeliveredDate,
		delivery.Status(dto.Status),
		dto.HandoverNote,
		dto.CustomerConfirmed,
		dto.CustomerConfirmedAt,
		dto.CreatedAt,
	)
}
