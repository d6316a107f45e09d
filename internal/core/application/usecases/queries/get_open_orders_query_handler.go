package queries

import (
	"context"
	"time"

	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler lists orders awaiting payment from the store.
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for open order listings.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle executes the listing, oldest order first.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			dealer_id,
			customer_id,
			created_at
		FROM documents
		WHERE kind = ?
		  AND status = ?
		ORDER BY created_at, id
	`, document.KindOrder.String(), document.StatusOpen.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOpenOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id, dealer, customer uuid.UUID
			createdAt            time.Time
		)

		if err = rows.Scan(&id, &dealer, &customer, &createdAt); err != nil {
			return nil, err
		}

		var response GetOpenOrdersQueryResponse
		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.DealerID, err = kernel.UUIDFromBytes(dealer[:]); err != nil {
			return nil, err
		}
		if response.CustomerID, err = kernel.UUIDFromBytes(customer[:]); err != nil {
			return nil, err
		}
		response.CreatedAt = createdAt

		orders = append(orders, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
