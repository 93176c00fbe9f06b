package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolioapi/internal/model"
	repoMocks "portfolioapi/internal/repository/mocks"
	"portfolioapi/internal/storage"
	storeMocks "portfolioapi/internal/storage/mocks"
)

func TestDocumentService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      CreateDocumentInput
		setupMocks func(mStore *storeMocks.MockFileStore, mRepo *repoMocks.MockDocumentRepository)
		wantErr    error
		wantErrMsg string
		checkDoc   func(t *testing.T, doc *model.Document)
	}{
		{
			name: "happy path with explicit title",
			input: CreateDocumentInput{
				Title:           "My Whitepaper",
				File:            strings.NewReader("content"),
				FileName:        "paper.pdf",
				Visible:         true,
				DownloadEnabled: true,
				DisplayOrder:    3,
			},
			setupMocks: func(mStore *storeMocks.MockFileStore, mRepo *repoMocks.MockDocumentRepository) {
				mStore.On("Store", ctx, mock.Anything, "paper.pdf").
					Return(storage.StoredFile{OriginalName: "paper.pdf", StoredName: "uuid.pdf"}, nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.Document) bool {
					return doc.Title == "My Whitepaper" &&
						doc.StoredName == "uuid.pdf" &&
						doc.DisplayOrder == 3 &&
						doc.Visible && doc.DownloadEnabled
				})).Return(func(ctx context.Context, doc *model.Document) *model.Document {
					return doc
				}, nil)
			},
			checkDoc: func(t *testing.T, doc *model.Document) {
				assert.Equal(t, "My Whitepaper", doc.Title)
			},
		},
		{
			name: "title derived from filename",
			input: CreateDocumentInput{
				File:     strings.NewReader("content"),
				FileName: "annual-report.pdf",
			},
			setupMocks: func(mStore *storeMocks.MockFileStore, mRepo *repoMocks.MockDocumentRepository) {
				mStore.On("Store", ctx, mock.Anything, "annual-report.pdf").
					Return(storage.StoredFile{OriginalName: "annual-report.pdf", StoredName: "uuid.pdf"}, nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.Document) bool {
					return doc.Title == "annual-report"
				})).Return(func(ctx context.Context, doc *model.Document) *model.Document {
					return doc
				}, nil)
			},
			checkDoc: func(t *testing.T, doc *model.Document) {
				assert.Equal(t, "annual-report", doc.Title)
			},
		},
		{
			name: "negative display order clamped to zero",
			input: CreateDocumentInput{
				File:         strings.NewReader("content"),
				FileName:     "doc.pdf",
				DisplayOrder: -5,
			},
			setupMocks: func(mStore *storeMocks.MockFileStore, mRepo *repoMocks.MockDocumentRepository) {
				mStore.On("Store", ctx, mock.Anything, "doc.pdf").
					Return(storage.StoredFile{OriginalName: "doc.pdf", StoredName: "uuid.pdf"}, nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.Document) bool {
					return doc.DisplayOrder == 0
				})).Return(func(ctx context.Context, doc *model.Document) *model.Document {
					return doc
				}, nil)
			},
		},
		{
			name: "disallowed extension surfaces as invalid input",
			input: CreateDocumentInput{
				File:     strings.NewReader("content"),
				FileName: "malware.exe",
			},
			setupMocks: func(mStore *storeMocks.MockFileStore, mRepo *repoMocks.MockDocumentRepository) {
				mStore.On("Store", ctx, mock.Anything, "malware.exe").
					Return(storage.StoredFile{}, storage.ErrExtensionNotAllowed)
			},
			wantErrMsg: "only PDF, DOC, and DOCX files are allowed",
		},
		{
			name: "title too long removes the stored file",
			input: CreateDocumentInput{
				Title:    strings.Repeat("x", 141),
				File:     strings.NewReader("content"),
				FileName: "doc.pdf",
			},
			setupMocks: func(mStore *storeMocks.MockFileStore, mRepo *repoMocks.MockDocumentRepository) {
				mStore.On("Store", ctx, mock.Anything, "doc.pdf").
					Return(storage.StoredFile{OriginalName: "doc.pdf", StoredName: "uuid.pdf"}, nil)
				mStore.On("Remove", ctx, "uuid.pdf").Return(storage.Removed, nil)
			},
			wantErrMsg: "title must be at most 140 characters",
		},
		{
			name: "repository error rolls back the stored file",
			input: CreateDocumentInput{
				File:     strings.NewReader("content"),
				FileName: "doc.pdf",
			},
			setupMocks: func(mStore *storeMocks.MockFileStore, mRepo *repoMocks.MockDocumentRepository) {
				mStore.On("Store", ctx, mock.Anything, "doc.pdf").
					Return(storage.StoredFile{OriginalName: "doc.pdf", StoredName: "uuid.pdf"}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				mStore.On("Remove", ctx, "uuid.pdf").Return(storage.Removed, nil)
			},
			wantErrMsg: "db save failed: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockFileStore)
			mRepo := new(repoMocks.MockDocumentRepository)
			svc := NewDocumentService(mStore, mRepo)

			tt.setupMocks(mStore, mRepo)

			doc, err := svc.Create(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, doc)
				if tt.checkDoc != nil {
					tt.checkDoc(t, doc)
				}
			}

			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDocumentService_ListAdmin(t *testing.T) {
	ctx := context.Background()

	docs := []model.Document{
		{ID: "a", StoredName: "a.pdf"},
		{ID: "b", StoredName: "b.pdf"},
		{ID: "c", StoredName: "c.pdf"},
	}

	t.Run("removes records whose file is gone", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo)

		mRepo.On("ListOrdered", ctx).Return(docs, nil)
		mStore.On("Exists", ctx, "a.pdf").Return(true, nil)
		mStore.On("Exists", ctx, "b.pdf").Return(false, nil)
		mStore.On("Exists", ctx, "c.pdf").Return(true, nil)
		mRepo.On("DeleteBatch", ctx, []string{"b"}).Return(nil)

		got, err := svc.ListAdmin(ctx)

		assert.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "c", got[1].ID)
		mRepo.AssertExpectations(t)
		mStore.AssertExpectations(t)
	})

	t.Run("all files present skips the batch delete", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo)

		mRepo.On("ListOrdered", ctx).Return(docs, nil)
		for _, d := range docs {
			mStore.On("Exists", ctx, d.StoredName).Return(true, nil)
		}

		got, err := svc.ListAdmin(ctx)

		assert.NoError(t, err)
		assert.Len(t, got, 3)
		mRepo.AssertNotCalled(t, "DeleteBatch", mock.Anything, mock.Anything)
	})

	t.Run("uncertain inventory keeps the record", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo)

		mRepo.On("ListOrdered", ctx).Return(docs[:1], nil)
		mStore.On("Exists", ctx, "a.pdf").Return(false, errors.New("disk fault"))

		got, err := svc.ListAdmin(ctx)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		mRepo.AssertNotCalled(t, "DeleteBatch", mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo)

		mRepo.On("ListOrdered", ctx).Return(nil, errors.New("db fail"))

		_, err := svc.ListAdmin(ctx)
		assert.Error(t, err)
	})
}

func TestDocumentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(nil, mRepo)

		mRepo.On("FindByID", ctx, "id-1").Return(&model.Document{ID: "id-1", Title: "Old"}, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(doc *model.Document) bool {
			return doc.Title == "New title" && doc.DisplayOrder == 0 && doc.Visible
		})).Return(func(ctx context.Context, doc *model.Document) *model.Document {
			return doc
		}, nil)

		got, err := svc.Update(ctx, "id-1", UpdateDocumentInput{Title: "  New title  ", Visible: true, DisplayOrder: -1})

		assert.NoError(t, err)
		assert.Equal(t, "New title", got.Title)
		mRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(nil, mRepo)

		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		_, err := svc.Update(ctx, "missing", UpdateDocumentInput{Title: "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(nil, mRepo)

		mRepo.On("FindByID", ctx, "id-1").Return(&model.Document{ID: "id-1"}, nil)

		_, err := svc.Update(ctx, "id-1", UpdateDocumentInput{Title: "   "})

		var invalid *InvalidInputError
		assert.ErrorAs(t, err, &invalid)
	})
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "id-1").Return(&model.Document{ID: "id-1", StoredName: "f.pdf"}, nil)
		mRepo.On("Delete", ctx, "id-1").Return(nil)
		mStore.On("Remove", ctx, "f.pdf").Return(storage.Removed, nil)

		assert.NoError(t, svc.Delete(ctx, "id-1"))
		mStore.AssertExpectations(t)
	})

	t.Run("empty id", func(t *testing.T) {
		svc := NewDocumentService(nil, nil)
		assert.ErrorIs(t, svc.Delete(ctx, ""), ErrIDRequired)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(nil, mRepo)

		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
		assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
	})

	t.Run("failed file removal is swallowed", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "id-1").Return(&model.Document{ID: "id-1", StoredName: "f.pdf"}, nil)
		mRepo.On("Delete", ctx, "id-1").Return(nil)
		mStore.On("Remove", ctx, "f.pdf").Return(storage.AlreadyAbsent, errors.New("disk fault"))

		assert.NoError(t, svc.Delete(ctx, "id-1"))
	})

	t.Run("repository delete error propagates", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "id-1").Return(&model.Document{ID: "id-1", StoredName: "f.pdf"}, nil)
		mRepo.On("Delete", ctx, "id-1").Return(errors.New("db fail"))

		assert.Error(t, svc.Delete(ctx, "id-1"))
		mStore.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})
}

func TestDocumentService_ServeFile(t *testing.T) {
	ctx := context.Background()

	serveDoc := &model.Document{
		ID:           "id-1",
		OriginalName: "resume.pdf",
		StoredName:   "stored.pdf",
		Visible:      true,
	}

	t.Run("inline serving when download disabled", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "id-1").Return(serveDoc, nil)
		mStore.On("Open", ctx, "stored.pdf").Return(io.NopCloser(strings.NewReader("HELLO")), nil)

		res, err := svc.ServeFile(ctx, "id-1", false)

		require.NoError(t, err)
		defer res.Content.Close()
		assert.Equal(t, "resume.pdf", res.FileName)
		assert.Equal(t, "application/pdf", res.ContentType)
		assert.Equal(t, DispositionInline, res.Disposition)

		body, _ := io.ReadAll(res.Content)
		assert.Equal(t, "HELLO", string(body))
	})

	t.Run("download forbidden when disabled", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(nil, mRepo)

		mRepo.On("FindByID", ctx, "id-1").Return(serveDoc, nil)

		_, err := svc.ServeFile(ctx, "id-1", true)
		assert.ErrorIs(t, err, ErrDownloadDisabled)
	})

	t.Run("download allowed when enabled", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo)

		enabled := *serveDoc
		enabled.DownloadEnabled = true
		mRepo.On("FindByID", ctx, "id-1").Return(&enabled, nil)
		mStore.On("Open", ctx, "stored.pdf").Return(io.NopCloser(strings.NewReader("HELLO")), nil)

		res, err := svc.ServeFile(ctx, "id-1", true)

		require.NoError(t, err)
		defer res.Content.Close()
		assert.Equal(t, DispositionAttachment, res.Disposition)
	})

	t.Run("hidden document is indistinguishable from missing", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(nil, mRepo)

		hidden := *serveDoc
		hidden.Visible = false
		hidden.DownloadEnabled = true
		mRepo.On("FindByID", ctx, "id-1").Return(&hidden, nil)

		_, err := svc.ServeFile(ctx, "id-1", true)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing record", func(t *testing.T) {
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(nil, mRepo)

		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		_, err := svc.ServeFile(ctx, "missing", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing file maps to not found", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo)

		mRepo.On("FindByID", ctx, "id-1").Return(serveDoc, nil)
		mStore.On("Open", ctx, "stored.pdf").Return(nil, storage.ErrNotFound)

		_, err := svc.ServeFile(ctx, "id-1", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("blank original name falls back to document.pdf", func(t *testing.T) {
		mStore := new(storeMocks.MockFileStore)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo)

		anon := *serveDoc
		anon.OriginalName = ""
		mRepo.On("FindByID", ctx, "id-1").Return(&anon, nil)
		mStore.On("Open", ctx, "stored.pdf").Return(io.NopCloser(strings.NewReader("x")), nil)

		res, err := svc.ServeFile(ctx, "id-1", false)

		require.NoError(t, err)
		defer res.Content.Close()
		assert.Equal(t, "document.pdf", res.FileName)
	})
}

func TestResolveTitle(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		originalName string
		want         string
		wantErr      bool
	}{
		{name: "explicit title wins", title: "My Title", originalName: "file.pdf", want: "My Title"},
		{name: "filename without extension", title: "", originalName: "report.pdf", want: "report"},
		{name: "dotfile keeps full name", title: "", originalName: ".hidden", want: ".hidden"},
		{name: "everything blank falls back", title: "  ", originalName: "", want: "Document"},
		{name: "too long rejected", title: strings.Repeat("a", 141), originalName: "x.pdf", wantErr: true},
		{name: "exactly 140 accepted", title: strings.Repeat("a", 140), originalName: "x.pdf", want: strings.Repeat("a", 140)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveTitle(tt.title, tt.originalName)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
