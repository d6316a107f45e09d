package commands

import (
	"errors"

	"dealersales/internal/core/domain/model/kernel"
	"dealersales/internal/pkg/guard"
)

var ErrRefreshPaymentStatusCommandIsNotConstructed = errors.New(
	"RefreshPaymentStatusCommand must be created via NewRefreshPaymentStatusCommand constructor",
)

// RefreshPaymentStatusCommand represents a request to recompute an order's
// remaining balance and apply the PAID transition if it reached zero. Used
// by the periodic sweep to pick up ledger entries whose status side effect
// was lost, for example after a crash between gateway callback and commit.
type RefreshPaymentStatusCommand struct { //nolint:recvcheck //using for validation
	documentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRefreshPaymentStatusCommand creates a command to refresh an order's
// payment status.
func NewRefreshPaymentStatusCommand(documentID kernel.UUID) (RefreshPaymentStatusCommand, error) {
	if err := documentID.Validate(); err != nil {
		return RefreshPaymentStatusCommand{}, err
	}

	return RefreshPaymentStatusCommand{
		documentID: documentID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshPaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrRefreshPaymentStatusCommandIsNotConstructed)
}

// DocumentID returns the order to refresh.
func (c RefreshPaymentStatusCommand) DocumentID() kernel.UUID {
	return c.documentID
}
