// Package paymentrepo provides data transfer objects and mapping functions
// for the append-only payment ledger.
package paymentrepo

import (
	"encoding/json"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payments.
// Gateway callback details live in the metadata jsonb column.
type PaymentDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DocumentID uuid.UUID       `gorm:"type:uuid;index"`
	Method     string          `gorm:"type:varchar(32)"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2)"`
	Metadata   []byte          `gorm:"type:jsonb"`
	PaidAt     time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment aggregate to its database representation.
func fromDomain(p *payment.Payment) (PaymentDTO, error) {
	var metadata []byte
	if m := p.Metadata(); len(m) > 0 {
		raw, err := json.Marshal(m)
		if err != nil {
			return PaymentDTO{}, err
		}
		metadata = raw
	}

	return PaymentDTO{
		ID:         p.ID().Bytes(),
		DocumentID: p.DocumentID().Bytes(),
		Method:     string(p.Method()),
		Amount:     p.Amount(),
		Metadata:   metadata,
		PaidAt:     p.PaidAt(),
	}, nil
}

// toDomain converts a database DTO to a payment aggregate using
// RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	documentID, err := kernel.UUIDFromBytes(dto.DocumentID[:])
	if err != nil {
		return nil, err
	}

	var metadata map[string]string
	if len(dto.Metadata) > 0 {
		if err := json.Unmarshal(dto.Metadata, &metadata); err != nil {
			return nil, err
		}
	}

	return payment.RestorePayment(id, documentID, payment.Method(dto.Method), dto.Amount, metadata, dto.PaidAt)
}
