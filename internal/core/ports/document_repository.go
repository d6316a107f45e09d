package ports

import (
	"context"

	"dealersales/internal/core/domain/model/document"
	"dealersales/internal/core/domain/model/kernel"
)

// DocumentRepository defines the persistence contract for sales document
// aggregates, lines included.
type DocumentRepository interface {
	// Add persists a new document together with its lines.
	Add(ctx context.Context, aggregate *document.Document) error

	// Update persists changes to an existing document.
	Update(ctx context.Context, aggregate *document.Document) error

	// Get retrieves a document by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such document exists.
	Get(ctx context.Context, id kernel.UUID) (*document.Document, error)

	// GetForUpdate retrieves a document and locks its row for the rest of
	// the transaction. Guard checks that precede a write to the document or
	// its payments must load through this method so that concurrent
	// operations on the same document serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*document.Document, error)
}
