package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and hands out repositories bound to the transaction.
// Client code must explicitly manage the transaction lifecycle.
//
// Every mutating operation runs its guard checks and writes inside one unit
// of work, so that concurrent operations against the same document serialize
// on the row locks taken by the GetForUpdate repository methods.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// DocumentRepository returns a DocumentRepository bound to the current transaction.
	DocumentRepository() DocumentRepository

	// PaymentRepository returns a PaymentRepository bound to the current transaction.
	PaymentRepository() PaymentRepository

	// DeliveryRepository returns a DeliveryRepository bound to the current transaction.
	DeliveryRepository() DeliveryRepository

	// PricePolicyRepository returns a PricePolicyRepository bound to the current transaction.
	PricePolicyRepository() PricePolicyRepository
}
