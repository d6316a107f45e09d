// Package documentrepo provides data transfer objects and mapping functions
// for sales document persistence. Lines are written once with the document
// and never mutated afterwards.
package documentrepo

import (
	"time"

	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentDTO represents the database structure for persisting document
// aggregates. Indexed by kind and status for the open-order sweeps.
type DocumentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind        string     `gorm:"type:varchar(16);index:idx_documents_kind_status"`
	Status      string     `gorm:"type:varchar(32);index:idx_documents_kind_status"`
	DealerID    uuid.UUID  `gorm:"type:uuid;index"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;index"`
	PromotionID *uuid.UUID `gorm:"type:uuid"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	Lines       []LineDTO `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for document entities.
func (DocumentDTO) TableName() string {
	return "documents"
}

// LineDTO represents one document line. The unit price is the snapshot taken
// from the resolved price policy at creation time.
type LineDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocumentID    uuid.UUID `gorm:"type:uuid;index"`
	VehicleID     uuid.UUID `gorm:"type:uuid"`
	ColorCode     string    `gorm:"type:varchar(32)"`
	Qty           int
	UnitPrice     decimal.Decimal `gorm:"type:numeric(14,2)"`
	DiscountValue decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for document lines.
func (LineDTO) TableName() string {
	return "document_lines"
}

// fromDomain converts a document aggregate to its database representation.
func fromDomain(doc *document.Document) DocumentDTO {
	var promotionID *uuid.UUID
	if id := doc.PromotionID(); id != nil {
		raw := id.Bytes()
		promotionID = &raw
	}

	lines := doc.Lines()
	lineDTOs := make([]LineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, LineDTO{
			ID:            line.ID().Bytes(),
			DocumentID:    doc.ID().Bytes(),
			VehicleID:     line.VehicleID().Bytes(),
			ColorCode:     line.ColorCode(),
			Qty:           line.Qty(),
			UnitPrice:     line.UnitPrice(),
			DiscountValue: line.DiscountValue(),
		})
	}

	return DocumentDTO{
		ID:          doc.ID().Bytes(),
		Kind:        string(doc.Kind()),
		Status:      string(doc.Status()),
		DealerID:    doc.DealerID().Bytes(),
		CustomerID:  doc.CustomerID().Bytes(),
		PromotionID: promotionID,
		CreatedBy:   doc.CreatedBy().Bytes(),
		CreatedAt:   doc.CreatedAt(),
		UpdatedAt:   doc.UpdatedAt(),
		Lines:       lineDTOs,
	}
}

// toDomain converts a database DTO to a document aggregate using
// RestoreDocument.
func toDomain(dto DocumentDTO) (*document.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	dealerID, err := kernel.UUIDFromBytes(dto.DealerID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var promotionID *kernel.UUID
	if dto.PromotionID != nil {
		pID, promoErr := kernel.UUIDFromBytes((*dto.PromotionID)[:])
		if promoErr != nil {
			return nil, promoErr
		}

		promotionID = &pID
	}

	lines := make([]document.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return document.RestoreDocument(
		id,
		document.Kind(dto.Kind),
		document.Status(dto.Status),
		dealerID,
		customerID,
		createdBy,
		promotionID,
		lines,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func lineToDomain(dto LineDTO) (document.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return document.Line{}, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return document.Line{}, err
	}

	return document.NewLine(id, vehicleID, dto.ColorCode, dto.Qty, dto.UnitPrice, dto.DiscountValue)
}
