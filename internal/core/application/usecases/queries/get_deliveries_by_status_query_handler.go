package queries

import (
	"context"
	"time"

	"dealersales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveriesByStatusQueryHandler lists deliveries in one state from the
// store.
type GetDeliveriesByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesByStatusQueryHandler creates a handler for delivery
// listings.
func NewGetDeliveriesByStatusQueryHandler(db *gorm.DB) GetDeliveriesByStatusQueryHandler {
	return GetDeliveriesByStatusQueryHandler{db: db}
}

// Handle executes the listing, earliest scheduled date first.
func (h GetDeliveriesByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesByStatusQuery,
) ([]GetDeliveriesByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			document_id,
			scheduled_date,
			delivered_date,
			customer_confirmed,
			handover_note
		FROM deliveries
		WHERE status = ?
		ORDER BY scheduled_date, id
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]GetDeliveriesByStatusQueryResponse, 0)
	for rows.Next() {
		var (
			id, documentID uuid.UUID
			scheduledDate  time.Time
			deliveredDate  *time.Time
			confirmed      bool
			note           *string
		)

		if err = rows.Scan(&id, &documentID, &scheduledDate, &deliveredDate, &confirmed, &note); err != nil {
			return nil, err
		}

		response := GetDeliveriesByStatusQueryResponse{
			ScheduledDate:     scheduledDate,
			DeliveredDate:     deliveredDate,
			CustomerConfirmed: confirmed,
			HandoverNote:      note,
		}
		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.DocumentID, err = kernel.UUIDFromBytes(documentID[:]); err != nil {
			return nil, err
		}

		deliveries = append(deliveries, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
