package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

import (
	"context"

	"portfolioapi/internal/model"
)

// DocumentRepository defines data access for document records using SQL queries only.
// No business logic here, strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListOrdered returns all documents ordered by display order, then ID.
	ListOrdered(ctx context.Context) ([]model.Document, error)

	// ListVisibleOrdered returns only visible documents in the same order.
	ListVisibleOrdered(ctx context.Context) ([]model.Document, error)

	// Update persists the mutable metadata of an existing record.
	Update(ctx context.Context, doc *model.Document) (*model.Document, error)

	// Delete removes a document by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error

	// DeleteBatch removes all records whose IDs are listed. Missing rows are not an error.
	DeleteBatch(ctx context.Context, ids []string) error
}
