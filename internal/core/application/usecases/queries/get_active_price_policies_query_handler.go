package queries

import (
	"context"
	"time"

	"dealersales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActivePricePoliciesQueryHandler lists the policies active at an instant
// straight from the store.
type GetActivePricePoliciesQueryHandler struct {
	db *gorm.DB
}

// NewGetActivePricePoliciesQueryHandler creates a handler for catalog
// listings.
func NewGetActivePricePoliciesQueryHandler(db *gorm.DB) GetActivePricePoliciesQueryHandler {
	return GetActivePricePoliciesQueryHandler{db: db}
}

// Handle executes the listing. The result is ordered newest window first.
func (h GetActivePricePoliciesQueryHandler) Handle(
	ctx context.Context,
	query GetActivePricePoliciesQuery,
) ([]GetActivePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			vehicle_id,
			dealer_id,
			msrp,
			wholesale,
			valid_from,
			valid_to
		FROM price_policies
		WHERE valid_from <= ?
		  AND (valid_to IS NULL OR valid_to >= ?)
	`
	args := []any{query.AsOf(), query.AsOf()}
	if query.DealerID() != nil {
		sql += ` AND (dealer_id IS NULL OR dealer_id = ?)`
		args = append(args, query.DealerID().String())
	} else {
		sql += ` AND dealer_id IS NULL`
	}
	sql += ` ORDER BY valid_from DESC, id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	policies := make([]GetActivePriceQueryResponse, 0)
	for rows.Next() {
		var (
			id, vehicle     uuid.UUID
			dealer          *uuid.UUID
			msrp, wholesale decimal.Decimal
			validFrom       time.Time
			validTo         *time.Time
		)

		if err = rows.Scan(&id, &vehicle, &dealer, &msrp, &wholesale, &validFrom, &validTo); err != nil {
			return nil, err
		}

		response := GetActivePriceQueryResponse{
			MSRP:      msrp,
			Wholesale: wholesale,
			ValidFrom: validFrom,
			ValidTo:   validTo,
		}
		if response.PolicyID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.VehicleID, err = kernel.UUIDFromBytes(vehicle[:]); err != nil {
			return nil, err
		}
		if dealer != nil {
			dealerID, idErr := kernel.UUIDFromBytes((*dealer)[:])
			if idErr != nil {
				return nil, idErr
			}
			response.DealerID = &dealerID
		}

		policies = append(policies, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return policies, nil
}
