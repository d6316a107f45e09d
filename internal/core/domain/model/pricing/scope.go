package pricing

import (
	"dealersales/internal/core/domain/model/kernel"
)

// Scope says which dealers a price policy applies to. A global scope applies
// to every dealer; a dealer scope applies to exactly one.
type Scope struct {
	dealerID *kernel.UUID
}

// GlobalScope creates the scope that applies to every dealer.
func GlobalScope() Scope {
	return Scope{}
}

// DealerScope creates a scope restricted to a single dealer.
func DealerScope(dealerID kernel.UUID) (Scope, error) {
	if err := dealerID.Validate(); err != nil {
		return Scope{}, err
	}
	return Scope{dealerID: &dealerID}, nil
}

// RestoreScope rebuilds a scope from storage, where a missing dealer
// reference means global.
func RestoreScope(dealerID *kernel.UUID) (Scope, error) {
	if dealerID == nil {
		return GlobalScope(), nil
	}
	return DealerScope(*dealerID)
}

// IsGlobal reports whether the scope applies to every dealer.
func (s Scope) IsGlobal() bool {
	return s.dealerID == nil
}

// DealerID returns the scoping dealer. The second result is false for a
// global scope.
func (s Scope) DealerID() (kernel.UUID, bool) {
	if s.dealerID == nil {
		return kernel.UUID{}, false
	}
	return *s.dealerID, true
}

// AppliesTo reports whether the scope covers the given dealer. A global
// scope covers everyone.
func (s Scope) AppliesTo(dealerID kernel.UUID) bool {
	if s.dealerID == nil {
		return true
	}
	return s.dealerID.IsEqual(dealerID)
}
