package services

import (
	"errors"
	"time"

	"dealersales/internal/core/domain/model/pricing"
)

// ErrNoActivePolicy is returned when no price policy covers the requested
// vehicle, scope, and instant. It is an expected outcome, not a fault:
// callers decide whether to reject the operation or fall back.
var ErrNoActivePolicy = errors.New("no active price policy")

// PriceResolver is a domain service that picks the single applicable price
// policy out of a set of candidates for one vehicle.
//
// Selection rules:
//   - Only policies whose validity window covers asOf are considered.
//   - A dealer-scoped lookup prefers policies scoped to that dealer; when
//     none is active it falls back to global policies. An active
//     dealer-specific policy always beats a global one regardless of which
//     window opened more recently.
//   - A global lookup considers global policies only.
//   - Within the winning group, the policy with the latest validFrom wins.
type PriceResolver struct{}

// NewPriceResolver creates a new PriceResolver instance.
func NewPriceResolver() PriceResolver {
	return PriceResolver{}
}

// Resolve picks the applicable policy from candidates, all of which must
// belong to the same vehicle. Returns ErrNoActivePolicy when nothing applies.
func (r PriceResolver) Resolve(
	candidates []*pricing.Policy,
	scope pricing.Scope,
	asOf time.Time,
) (*pricing.Policy, error) {
	var dealerBest, globalBest *pricing.Policy

	for _, policy := range candidates {
		if err := policy.Validate(); err != nil {
			return nil, err
		}
		if !policy.ActiveAt(asOf) {
			continue
		}

		if policy.Scope().IsGlobal() {
			globalBest = newerOf(globalBest, policy)
			continue
		}

		if dealerID, ok := scope.DealerID(); ok && policy.Scope().AppliesTo(dealerID) {
			dealerBest = newerOf(dealerBest, policy)
		}
	}

	if dealerBest != nil {
		return dealerBest, nil
	}
	if globalBest != nil {
		return globalBest, nil
	}
	return nil, ErrNoActivePolicy
}

// newerOf keeps the policy with the later validFrom. The first candidate wins
// a tie.
func newerOf(current, candidate *pricing.Policy) *pricing.Policy {
	if current == nil {
		return candidate
	}
	if candidate.ValidFrom().After(current.ValidFrom()) {
		return candidate
	}
	return current
}
