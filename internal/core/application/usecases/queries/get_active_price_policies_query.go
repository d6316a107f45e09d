package queries

import (
	"errors"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/errs"
	"dealersales/internal/pkg/guard"
)

var ErrGetActivePricePoliciesQueryIsNotConstructed = errors.New(
	"GetActivePricePoliciesQuery must be created via NewGetActivePricePoliciesQuery constructor",
)

// GetActivePricePoliciesQuery asks for the full set of policies active at an
// instant, for bulk catalog display. With a dealer, the set contains global
// policies plus that dealer's; without one, global policies only.
type GetActivePricePoliciesQuery struct {
	dealerID *kernel.UUID
	asOf     time.Time

	guard guard.ConstructorGuard
}

// NewGetActivePricePoliciesQuery creates a catalog listing query.
func NewGetActivePricePoliciesQuery(dealerID *kernel.UUID, asOf time.Time) (GetActivePricePoliciesQuery, error) {
	if dealerID != nil {
		if err := dealerID.Validate(); err != nil {
			return GetActivePricePoliciesQuery{}, err
		}
	}
	if asOf.IsZero() {
		return GetActivePricePoliciesQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return GetActivePricePoliciesQuery{
		dealerID: dealerID,
		asOf:     asOf,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActivePricePoliciesQuery) Validate() error {
	return q.guard.Validate(ErrGetActivePricePoliciesQueryIsNotConstructed)
}

// DealerID returns the optional dealer scope, nil for global-only.
func (q GetActivePricePoliciesQuery) DealerID() *kernel.UUID {
	return q.dealerID
}

// AsOf returns the listing instant.
func (q GetActivePricePoliciesQuery) AsOf() time.Time {
	return q.asOf
}
