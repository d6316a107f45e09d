package ports

import (
	"context"

	"dealersales/internal/core/domain/model/delivery"
	"dealersales/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates. A document has at most one delivery.
type DeliveryRepository interface {
	// Add persists a new delivery.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such delivery exists.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate retrieves a delivery and locks its row for the rest of
	// the transaction, serializing concurrent lifecycle operations on the
	// same delivery.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByDocument retrieves the delivery owned by the document, locked
	// for update. Returns errs.ObjectNotFoundError when the document has no
	// delivery yet.
	GetByDocument(ctx context.Context, documentID kernel.UUID) (*delivery.Delivery, error)
}
