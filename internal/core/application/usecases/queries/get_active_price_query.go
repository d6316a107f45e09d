// Package queries contains read-only operations against the store.
// Query handlers bypass the repositories and read with raw SQL; responses are
// plain structs shaped for the caller, not domain aggregates.
package queries

import (
	"errors"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"
	"dealersales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetActivePriceQueryIsNotConstructed = errors.New(
	"GetActivePriceQuery must be created via NewGetActivePriceQuery constructor",
)

// GetActivePriceQuery asks for the single price policy that applies to a
// vehicle as of an instant, optionally scoped to a dealer. A nil dealerID
// restricts the lookup to global policies.
type GetActivePriceQuery struct {
	vehicleID kernel.UUID
	dealerID  *kernel.UUID
	asOf      time.Time

	guard guard.ConstructorGuard
}

// NewGetActivePriceQuery creates a price lookup query.
func NewGetActivePriceQuery(vehicleID kernel.UUID, dealerID *kernel.UUID, asOf time.Time) (GetActivePriceQuery, error) {
	if err := vehicleID.Validate(); err != nil {
		return GetActivePriceQuery{}, err
	}
	if dealerID != nil {
		if err := dealerID.Validate(); err != nil {
			return GetActivePriceQuery{}, err
		}
	}
	if asOf.IsZero() {
		return GetActivePriceQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return GetActivePriceQuery{
		vehicleID: vehicleID,
		dealerID:  dealerID,
		asOf:      asOf,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActivePriceQuery) Validate() error {
	return q.guard.Validate(ErrGetActivePriceQueryIsNotConstructed)
}

// VehicleID returns the vehicle being priced.
func (q GetActivePriceQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}

// DealerID returns the optional dealer scope, nil for a global lookup.
func (q GetActivePriceQuery) DealerID() *kernel.UUID {
	return q.dealerID
}

// AsOf returns the pricing instant.
func (q GetActivePriceQuery) AsOf() time.Time {
	return q.asOf
}

// GetActivePriceQueryResponse carries the resolved policy. Callers needing
// wholesale semantics and callers needing retail semantics read the same
// record and pick the relevant field.
type GetActivePriceQueryResponse struct {
	PolicyID  kernel.UUID     `json:"policy_id"`
	VehicleID kernel.UUID     `json:"vehicle_id"`
	DealerID  *kernel.UUID    `json:"dealer_id"`
	MSRP      decimal.Decimal `json:"msrp"`
	Wholesale decimal.Decimal `json:"wholesale"`
	ValidFrom time.Time       `json:"valid_from"`
	ValidTo   *time.Time      `json:"valid_to"`
}
