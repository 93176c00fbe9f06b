package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
	"portfolioapi/internal/storage"
)

// CreateDocumentInput is the payload for publishing a new document.
// Title is optional; when blank it is derived from the upload's filename.
type CreateDocumentInput struct {
	Title           string
	File            io.Reader
	FileName        string
	Visible         bool
	DownloadEnabled bool
	DisplayOrder    int
}

// UpdateDocumentInput carries the mutable metadata of an existing document.
// The backing file is never touched by an update; re-upload means a new document.
type UpdateDocumentInput struct {
	Title           string
	Visible         bool
	DownloadEnabled bool
	DisplayOrder    int
}

// DocumentService defines the use cases around published documents.
type DocumentService interface {
	// Create stores the uploaded file and persists a new document record.
	Create(ctx context.Context, in CreateDocumentInput) (*model.Document, error)

	// ListAdmin returns every document in display order, after removing
	// records whose backing file has disappeared.
	ListAdmin(ctx context.Context) ([]model.Document, error)

	// ListPublic returns visible documents in display order.
	ListPublic(ctx context.Context) ([]model.Document, error)

	// Update changes a document's metadata.
	Update(ctx context.Context, id string, in UpdateDocumentInput) (*model.Document, error)

	// Delete removes the record, then best-effort deletes the backing file.
	Delete(ctx context.Context, id string) error

	// ServeFile resolves the document, enforces visibility and download
	// permission, and returns the file ready to stream.
	ServeFile(ctx context.Context, id string, download bool) (*FileResponse, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	files storage.FileStore
	repo  repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(files storage.FileStore, repo repository.DocumentRepository) DocumentService {
	return &documentService{files: files, repo: repo}
}

func (s *documentService) Create(ctx context.Context, in CreateDocumentInput) (*model.Document, error) {
	sf, err := s.files.Store(ctx, in.File, in.FileName)
	if err != nil {
		return nil, mapUploadErr(err)
	}

	title, err := resolveTitle(in.Title, sf.OriginalName)
	if err != nil {
		// The file is already on disk; clean it up so a rejected create
		// leaves nothing behind.
		_, _ = s.files.Remove(ctx, sf.StoredName)
		return nil, err
	}

	now := time.Now().UTC()
	doc := &model.Document{
		ID:              uuid.NewString(),
		Title:           title,
		OriginalName:    sf.OriginalName,
		StoredName:      sf.StoredName,
		Visible:         in.Visible,
		DownloadEnabled: in.DownloadEnabled,
		DisplayOrder:    clampOrder(in.DisplayOrder),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the stored file so the failed create does not leak it.
		if _, delErr := s.files.Remove(ctx, sf.StoredName); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

// ListAdmin reconciles records against the file inventory: records whose
// file is gone are deleted as a batch and only the surviving records are
// returned. A record can therefore silently disappear from the admin view
// if its file was removed out-of-band; that is the intended self-healing.
func (s *documentService) ListAdmin(ctx context.Context) ([]model.Document, error) {
	docs, err := s.repo.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]model.Document, 0, len(docs))
	var missing []string
	for _, doc := range docs {
		ok, err := s.files.Exists(ctx, doc.StoredName)
		if err != nil {
			// Uncertain inventory must not delete records; keep it listed.
			available = append(available, doc)
			continue
		}
		if ok {
			available = append(available, doc)
		} else {
			missing = append(missing, doc.ID)
		}
	}

	if len(missing) > 0 {
		if err := s.repo.DeleteBatch(ctx, missing); err != nil {
			return nil, err
		}
	}
	return available, nil
}

func (s *documentService) ListPublic(ctx context.Context) ([]model.Document, error) {
	return s.repo.ListVisibleOrdered(ctx)
}

func (s *documentService) Update(ctx context.Context, id string, in UpdateDocumentInput) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalidInput("title is required")
	}
	if len(title) > model.MaxTitleLen {
		return nil, invalidInput("title must be at most 140 characters")
	}

	doc.Title = title
	doc.Visible = in.Visible
	doc.DownloadEnabled = in.DownloadEnabled
	doc.DisplayOrder = clampOrder(in.DisplayOrder)
	doc.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the record first, then best-effort deletes the file. A
// failed physical delete is swallowed so the metadata deletion stands; the
// worst case is a leaked file, never a dangling record.
func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_, _ = s.files.Remove(ctx, doc.StoredName)
	return nil
}

func (s *documentService) ServeFile(ctx context.Context, id string, download bool) (*FileResponse, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// A hidden document must be indistinguishable from a nonexistent one.
	if !doc.Visible {
		return nil, ErrNotFound
	}
	if download && !doc.DownloadEnabled {
		return nil, ErrDownloadDisabled
	}

	content, err := s.files.Open(ctx, doc.StoredName)
	if err != nil {
		return nil, mapServeErr(err)
	}

	safeName := doc.OriginalName
	if strings.TrimSpace(safeName) == "" {
		safeName = "document.pdf"
	}
	return newFileResponse(content, safeName, download), nil
}

// resolveTitle picks the document title: the explicit value, else the
// filename without its extension, else the literal "Document".
func resolveTitle(title, originalName string) (string, error) {
	candidate := strings.TrimSpace(title)
	if candidate == "" {
		candidate = strings.TrimSpace(fileNameWithoutExtension(originalName))
	}
	if candidate == "" {
		candidate = "Document"
	}
	if len(candidate) > model.MaxTitleLen {
		return "", invalidInput("title must be at most 140 characters")
	}
	return candidate, nil
}

func fileNameWithoutExtension(fileName string) string {
	idx := strings.LastIndex(fileName, ".")
	if idx <= 0 {
		return fileName
	}
	return fileName[:idx]
}

func clampOrder(order int) int {
	if order < 0 {
		return 0
	}
	return order
}
