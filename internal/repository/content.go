package repository

import (
	"context"

	"portfolioapi/internal/model"
)

// ContentRepository persists the singleton site content record that holds
// the resume/cv file slots.
type ContentRepository interface {
	// Get returns the singleton record, creating the default row when none exists.
	Get(ctx context.Context) (*model.SiteContent, error)

	// Save persists the record and returns the stored row.
	Save(ctx context.Context, content *model.SiteContent) (*model.SiteContent, error)
}
