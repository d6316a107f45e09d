package queries

import (
	"context"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/pricing"
	"dealersales/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActivePriceQueryHandler resolves the applicable price for one vehicle.
// The rows active at the pricing instant are loaded with raw SQL and the
// scope selection runs through the domain price resolver, so lookup and
// line-creation agree on which policy wins.
type GetActivePriceQueryHandler struct {
	db       *gorm.DB
	resolver services.PriceResolver
}

// NewGetActivePriceQueryHandler creates a handler for price lookups.
func NewGetActivePriceQueryHandler(db *gorm.DB, resolver services.PriceResolver) GetActivePriceQueryHandler {
	return GetActivePriceQueryHandler{db: db, resolver: resolver}
}

// Handle executes the lookup. Returns services.ErrNoActivePolicy when no
// policy covers the vehicle for the requested scope and instant.
func (h GetActivePriceQueryHandler) Handle(
	ctx context.Context,
	query GetActivePriceQuery,
) (GetActivePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActivePriceQueryResponse{}, err
	}

	candidates, err := h.loadActive(ctx, query.VehicleID(), query.AsOf())
	if err != nil {
		return GetActivePriceQueryResponse{}, err
	}

	scope := pricing.GlobalScope()
	if query.DealerID() != nil {
		scope, err = pricing.DealerScope(*query.DealerID())
		if err != nil {
			return GetActivePriceQueryResponse{}, err
		}
	}

	policy, err := h.resolver.Resolve(candidates, scope, query.AsOf())
	if err != nil {
		return GetActivePriceQueryResponse{}, err
	}

	response := GetActivePriceQueryResponse{
		PolicyID:  policy.ID(),
		VehicleID: policy.VehicleID(),
		MSRP:      policy.MSRP(),
		Wholesale: policy.Wholesale(),
		ValidFrom: policy.ValidFrom(),
		ValidTo:   policy.ValidTo(),
	}
	if dealerID, ok := policy.Scope().DealerID(); ok {
		response.DealerID = &dealerID
	}
	return response, nil
}

func (h GetActivePriceQueryHandler) loadActive(
	ctx context.Context,
	vehicleID kernel.UUID,
	asOf time.Time,
) ([]*pricing.Policy, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_id,
			dealer_id,
			msrp,
			wholesale,
			valid_from,
			valid_to,
			created_by,
			created_at
		FROM price_policies
		WHERE vehicle_id = ?
		  AND valid_from <= ?
		  AND (valid_to IS NULL OR valid_to >= ?)
		ORDER BY valid_from DESC
	`, vehicleID.String(), asOf, asOf).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	policies := make([]*pricing.Policy, 0)
	for rows.Next() {
		var (
			id, vehicle, createdBy uuid.UUID
			dealer                 *uuid.UUID
			msrp, wholesale        decimal.Decimal
			validFrom, createdAt   time.Time
			validTo                *time.Time
		)

		if err = rows.Scan(&id, &vehicle, &dealer, &msrp, &wholesale, &validFrom, &validTo, &createdBy, &createdAt); err != nil {
			return nil, err
		}

		policy, err := restorePolicyRow(id, vehicle, dealer, msrp, wholesale, validFrom, validTo, createdBy, createdAt)
		if err != nil {
			return nil, err
		}
		policies = append(policies, policy)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return policies, nil
}

func restorePolicyRow(
	id, vehicle uuid.UUID,
	dealer *uuid.UUID,
	msrp, wholesale decimal.Decimal,
	validFrom time.Time,
	validTo *time.Time,
	createdBy uuid.UUID,
	createdAt time.Time,
) (*pricing.Policy, error) {
	policyID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(vehicle[:])
	if err != nil {
		return nil, err
	}
	creatorID, err := kernel.UUIDFromBytes(createdBy[:])
	if err != nil {
		return nil, err
	}

	var scopeDealer *kernel.UUID
	if dealer != nil {
		dealerID, err := kernel.UUIDFromBytes(dealer[:])
		if err != nil {
			return nil, err
		}
		scopeDealer = &dealerID
	}
	scope, err := pricing.RestoreScope(scopeDealer)
	if err != nil {
		return nil, err
	}

	return pricing.RestorePolicy(
		policyID, vehicleID, scope, msrp, wholesale, validFrom, validTo, creatorID, createdAt,
	)
}
