package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// ContentPostgres is a PostgreSQL implementation of repository.ContentRepository.
// The site_content table holds a single row created lazily on first read.
type ContentPostgres struct {
	db *sql.DB
}

// NewContentPostgres creates a new ContentPostgres repository.
func NewContentPostgres(db *sql.DB) *ContentPostgres {
	return &ContentPostgres{db: db}
}

var _ repository.ContentRepository = (*ContentPostgres)(nil)

const contentColumns = `id,
	resume_original_name, resume_stored_name, resume_visible, resume_download_enabled,
	cv_original_name, cv_stored_name, cv_visible, cv_download_enabled`

func scanContent(row interface{ Scan(...any) error }) (*model.SiteContent, error) {
	var c model.SiteContent
	if err := row.Scan(
		&c.ID,
		&c.Resume.OriginalName,
		&c.Resume.StoredName,
		&c.Resume.Visible,
		&c.Resume.DownloadEnabled,
		&c.CV.OriginalName,
		&c.CV.StoredName,
		&c.CV.Visible,
		&c.CV.DownloadEnabled,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// Get returns the singleton content row, inserting the default row when the
// table is empty.
func (r *ContentPostgres) Get(ctx context.Context) (*model.SiteContent, error) {
	q := `SELECT ` + contentColumns + ` FROM site_content ORDER BY id ASC LIMIT 1`
	c, err := scanContent(r.db.QueryRowContext(ctx, q))
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	ins := `
		INSERT INTO site_content (id)
		VALUES ($1)
		RETURNING ` + contentColumns
	return scanContent(r.db.QueryRowContext(ctx, ins, uuid.NewString()))
}

// Save persists the record and returns the stored row.
func (r *ContentPostgres) Save(ctx context.Context, content *model.SiteContent) (*model.SiteContent, error) {
	q := `
		UPDATE site_content
		SET resume_original_name = $2, resume_stored_name = $3, resume_visible = $4, resume_download_enabled = $5,
		    cv_original_name = $6, cv_stored_name = $7, cv_visible = $8, cv_download_enabled = $9
		WHERE id = $1
		RETURNING ` + contentColumns
	row := r.db.QueryRowContext(ctx, q,
		content.ID,
		content.Resume.OriginalName,
		content.Resume.StoredName,
		content.Resume.Visible,
		content.Resume.DownloadEnabled,
		content.CV.OriginalName,
		content.CV.StoredName,
		content.CV.Visible,
		content.CV.DownloadEnabled,
	)
	return scanContent(row)
}
