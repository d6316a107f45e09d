package ports

import (
	"context"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/core/domain/model/pricing"
)

// PricePolicyRepository defines the persistence contract for price policies.
// Policies are written by the catalog flow and read at line-creation time.
type PricePolicyRepository interface {
	// Add persists a new price policy.
	Add(ctx context.Context, aggregate *pricing.Policy) error

	// GetActiveForVehicle retrieves every policy for the vehicle whose
	// validity window covers asOf, regardless of scope. Scope selection is
	// the price resolver's job.
	GetActiveForVehicle(ctx context.Context, vehicleID kernel.UUID, asOf time.Time) ([]*pricing.Policy, error)

	// GetAllActive retrieves every policy active at asOf across all
	// vehicles, used for bulk catalog display.
	GetAllActive(ctx context.Context, asOf time.Time) ([]*pricing.Policy, error)
}
