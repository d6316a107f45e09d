package queries

import (
	"errors"
	"time"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/guard"
)

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery retrieves all ORDER documents still in OPEN status,
// meaning their remaining balance has not reached zero. The payment sweep
// feeds these through the refresh command.
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query for orders awaiting payment.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// GetOpenOrdersQueryResponse identifies one open order.
type GetOpenOrdersQueryResponse struct {
	ID         kernel.UUID `json:"id"`
	DealerID   kernel.UUID `json:"dealer_id"`
	CustomerID kernel.UUID `json:"customer_id"`
	CreatedAt  time.Time   `json:"created_at"`
}
