// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dealersales/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest factory that covers the repositories
// it touches, so tests mock exactly what the handler uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DocumentRepoFactory provides access to the document repository within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// PricePolicyRepoFactory provides access to the price policy repository within a transaction.
	PricePolicyRepoFactory interface {
		PricePolicyRepository() ports.PricePolicyRepository
	}

	// DocumentUoW manages transactions for document-only operations
	// (quote lifecycle moves and order creation from accepted quotes).
	DocumentUoW interface {
		TxManager
		DocumentRepoFactory
	}

	// DocumentUoWFactory creates new document unit of work instances.
	DocumentUoWFactory interface {
		Create() DocumentUoW
	}

	// QuoteUoW manages transactions for document creation, which reads the
	// price catalog to snapshot line prices.
	QuoteUoW interface {
		TxManager
		DocumentRepoFactory
		PricePolicyRepoFactory
	}

	// QuoteUoWFactory creates new quote unit of work instances.
	QuoteUoWFactory interface {
		Create() QuoteUoW
	}

	// PaymentUoW manages transactions that touch the ledger together with
	// the owning document.
	PaymentUoW interface {
		TxManager
		DocumentRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// DeliveryUoW manages transactions that touch a delivery together with
	// the owning document.
	DeliveryUoW interface {
		TxManager
		DocumentRepoFactory
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// PricePolicyUoW manages transactions for catalog writes.
	PricePolicyUoW interface {
		TxManager
		PricePolicyRepoFactory
	}

	// PricePolicyUoWFactory creates new price policy unit of work instances.
	PricePolicyUoWFactory interface {
		Create() PricePolicyUoW
	}
)
