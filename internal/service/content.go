package service

import (
	"context"
	"io"
	"strings"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
	"portfolioapi/internal/storage"
)

// SlotUploadResult is returned after a successful slot upload or replace.
type SlotUploadResult struct {
	Type        string `json:"type"`
	FileName    string `json:"fileName"`
	DownloadURL string `json:"downloadUrl"`
}

// UpdateContentFlagsInput toggles the per-slot visibility and download flags.
type UpdateContentFlagsInput struct {
	ResumeVisible         bool
	ResumeDownloadEnabled bool
	CVVisible             bool
	CVDownloadEnabled     bool
}

// ContentService defines the use cases around the singleton site content
// record and its fixed file slots (resume, cv).
type ContentService interface {
	// Get returns the singleton content record, creating it on first access.
	Get(ctx context.Context) (*model.SiteContent, error)

	// UpdateFlags persists the slot visibility/download toggles.
	UpdateFlags(ctx context.Context, in UpdateContentFlagsInput) (*model.SiteContent, error)

	// UploadSlot stores a new file into the slot, replacing (and best-effort
	// deleting) whatever the slot previously pointed at.
	UploadSlot(ctx context.Context, slotType string, file io.Reader, fileName string) (*SlotUploadResult, error)

	// DeleteSlot removes the slot's file and clears the slot.
	DeleteSlot(ctx context.Context, slotType string) (string, error)

	// ServeSlot resolves the slot's file, enforces the download permission,
	// and returns it ready to stream.
	ServeSlot(ctx context.Context, slotType string, download bool) (*FileResponse, error)
}

// contentService is a concrete implementation of ContentService.
type contentService struct {
	files storage.FileStore
	repo  repository.ContentRepository
}

// NewContentService constructs a new ContentService.
func NewContentService(files storage.FileStore, repo repository.ContentRepository) ContentService {
	return &contentService{files: files, repo: repo}
}

func (s *contentService) Get(ctx context.Context) (*model.SiteContent, error) {
	return s.repo.Get(ctx)
}

func (s *contentService) UpdateFlags(ctx context.Context, in UpdateContentFlagsInput) (*model.SiteContent, error) {
	content, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	content.Resume.Visible = in.ResumeVisible
	content.Resume.DownloadEnabled = in.ResumeDownloadEnabled
	content.CV.Visible = in.CVVisible
	content.CV.DownloadEnabled = in.CVDownloadEnabled

	return s.repo.Save(ctx, content)
}

func (s *contentService) UploadSlot(ctx context.Context, slotType string, file io.Reader, fileName string) (*SlotUploadResult, error) {
	slotType, err := normalizeSlotType(slotType)
	if err != nil {
		return nil, err
	}

	content, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	slot := content.Slot(slotType)

	sf, err := s.files.Store(ctx, file, fileName)
	if err != nil {
		return nil, mapUploadErr(err)
	}

	// Best effort: a failure to remove the replaced file must not undo the
	// new upload. The old file becomes a harmless leak at worst.
	_, _ = s.files.Remove(ctx, slot.StoredName)

	slot.OriginalName = sf.OriginalName
	slot.StoredName = sf.StoredName
	slot.Visible = true
	// The download flag is an explicit admin decision; uploading does not touch it.

	if _, err := s.repo.Save(ctx, content); err != nil {
		return nil, err
	}

	return &SlotUploadResult{
		Type:        slotType,
		FileName:    sf.OriginalName,
		DownloadURL: "/content/file/" + slotType,
	}, nil
}

func (s *contentService) DeleteSlot(ctx context.Context, slotType string) (string, error) {
	slotType, err := normalizeSlotType(slotType)
	if err != nil {
		return "", err
	}

	content, err := s.repo.Get(ctx)
	if err != nil {
		return "", err
	}
	slot := content.Slot(slotType)

	// Removing an already-absent file is success; only a real I/O failure
	// stops the clear so the admin sees the disk problem.
	if _, err := s.files.Remove(ctx, slot.StoredName); err != nil {
		return "", err
	}

	*slot = model.FileSlot{}

	if _, err := s.repo.Save(ctx, content); err != nil {
		return "", err
	}
	return slotType, nil
}

// ServeSlot checks the download permission and presence of the slot's file.
// The slot's visible flag only affects the public content payload; it is
// not consulted on the serving path.
func (s *contentService) ServeSlot(ctx context.Context, slotType string, download bool) (*FileResponse, error) {
	slotType, err := normalizeSlotType(slotType)
	if err != nil {
		return nil, err
	}

	content, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	slot := content.Slot(slotType)

	if download && !slot.DownloadEnabled {
		return nil, ErrDownloadDisabled
	}
	if strings.TrimSpace(slot.StoredName) == "" {
		return nil, ErrNotFound
	}

	contentRC, err := s.files.Open(ctx, slot.StoredName)
	if err != nil {
		return nil, mapServeErr(err)
	}

	safeName := slot.OriginalName
	if strings.TrimSpace(safeName) == "" {
		safeName = slotType + ".pdf"
	}
	return newFileResponse(contentRC, safeName, download), nil
}

func normalizeSlotType(slotType string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(slotType))
	if normalized != model.SlotResume && normalized != model.SlotCV {
		return "", invalidInput("invalid file type: use 'resume' or 'cv'")
	}
	return normalized, nil
}
