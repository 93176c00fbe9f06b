package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, title, original_name, stored_name, visible, download_enabled, display_order, created_at, updated_at`

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.Title,
		&d.OriginalName,
		&d.StoredName,
		&d.Visible,
		&d.DownloadEnabled,
		&d.DisplayOrder,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	q := `
		INSERT INTO documents (id, title, original_name, stored_name, visible, download_enabled, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Title,
		doc.OriginalName,
		doc.StoredName,
		doc.Visible,
		doc.DownloadEnabled,
		doc.DisplayOrder,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

func (r *DocumentPostgres) list(ctx context.Context, q string, args ...any) ([]model.Document, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListOrdered returns every document ordered by display_order, then id.
func (r *DocumentPostgres) ListOrdered(ctx context.Context) ([]model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents ORDER BY display_order ASC, id ASC`
	return r.list(ctx, q)
}

// ListVisibleOrdered returns visible documents in display order.
func (r *DocumentPostgres) ListVisibleOrdered(ctx context.Context) ([]model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents WHERE visible = TRUE ORDER BY display_order ASC, id ASC`
	return r.list(ctx, q)
}

// Update persists mutable metadata and returns the stored record.
func (r *DocumentPostgres) Update(ctx context.Context, doc *model.Document) (*model.Document, error) {
	q := `
		UPDATE documents
		SET title = $2, original_name = $3, stored_name = $4, visible = $5,
		    download_enabled = $6, display_order = $7, updated_at = $8
		WHERE id = $1
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Title,
		doc.OriginalName,
		doc.StoredName,
		doc.Visible,
		doc.DownloadEnabled,
		doc.DisplayOrder,
		doc.UpdatedAt,
	)
	return scanDocument(row)
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// DeleteBatch removes all rows whose IDs are listed.
func (r *DocumentPostgres) DeleteBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	q := `DELETE FROM documents WHERE id IN (` + strings.Join(placeholders, ", ") + `)`
	_, err := r.db.ExecContext(ctx, q, args...)
	return err
}
