package queries

import (
	"errors"
	"time"

	"dealersales/internal/core/domain/model/delivery"
	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/guard"
)

var ErrGetDeliveriesByStatusQueryIsNotConstructed = errors.New(
	"GetDeliveriesByStatusQuery must be created via NewGetDeliveriesByStatusQuery constructor",
)

// GetDeliveriesByStatusQuery retrieves all deliveries in one lifecycle state,
// for dispatch boards and handover planning.
type GetDeliveriesByStatusQuery struct {
	status delivery.Status

	guard guard.ConstructorGuard
}

// NewGetDeliveriesByStatusQuery creates a delivery listing query. Unknown
// status tags are rejected.
func NewGetDeliveriesByStatusQuery(status delivery.Status) (GetDeliveriesByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetDeliveriesByStatusQuery{}, err
	}

	return GetDeliveriesByStatusQuery{
		status: status,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle state being listed.
func (q GetDeliveriesByStatusQuery) Status() delivery.Status {
	return q.status
}

// GetDeliveriesByStatusQueryResponse describes one delivery in a listing.
type GetDeliveriesByStatusQueryResponse struct {
	ID                kernel.UUID `json:"id"`
	DocumentID        kernel.UUID `json:"document_id"`
	ScheduledDate     time.Time   `json:"scheduled_date"`
	DeliveredDate     *time.Time  `json:"delivered_date"`
	CustomerConfirmed bool        `json:"customer_confirmed"`
	HandoverNote      *string     `json:"handover_note"`
}
