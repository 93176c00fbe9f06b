package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioapi/internal/config"
)

func newTestStore(t *testing.T) (FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewLocal(config.StorageConfig{Driver: "local", UploadDir: dir})
	require.NoError(t, err)
	return fs, dir
}

func TestNewLocalCreatesRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocal(config.StorageConfig{UploadDir: dir})
	require.NoError(t, err)

	st, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, st.IsDir())
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		content          string
		originalFilename string
		wantErr          error
	}{
		{name: "pdf upload", content: "HELLO", originalFilename: "resume.pdf"},
		{name: "uppercase extension accepted", content: "x", originalFilename: "CV.PDF"},
		{name: "docx upload", content: "word", originalFilename: "report.docx"},
		{name: "path components stripped", content: "x", originalFilename: "../../etc/resume.pdf"},
		{name: "empty upload rejected", content: "", originalFilename: "resume.pdf", wantErr: ErrEmptyUpload},
		{name: "disallowed extension", content: "x", originalFilename: "script.sh", wantErr: ErrExtensionNotAllowed},
		{name: "no extension", content: "x", originalFilename: "resume", wantErr: ErrExtensionNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, dir := newTestStore(t)

			sf, err := fs.Store(ctx, strings.NewReader(tt.content), tt.originalFilename)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				// Nothing may be written on a rejected upload.
				entries, readErr := os.ReadDir(dir)
				require.NoError(t, readErr)
				assert.Empty(t, entries)
				return
			}
			require.NoError(t, err)

			// Original name is the sanitized basename only.
			assert.NotContains(t, sf.OriginalName, "/")
			assert.NotContains(t, sf.OriginalName, "..")

			// Stored name keeps the original extension case and is not the original name.
			assert.True(t, strings.HasSuffix(sf.StoredName, extensionOf(sf.OriginalName)))
			assert.NotEqual(t, sf.OriginalName, sf.StoredName)

			got, err := os.ReadFile(filepath.Join(dir, sf.StoredName))
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(got))
		})
	}
}

func TestLocalStoreNilReader(t *testing.T) {
	fs, _ := newTestStore(t)
	_, err := fs.Store(context.Background(), nil, "resume.pdf")
	assert.ErrorIs(t, err, ErrEmptyUpload)
}

func TestLocalRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs, _ := newTestStore(t)

	sf, err := fs.Store(ctx, strings.NewReader("round trip payload"), "report.pdf")
	require.NoError(t, err)

	rc, err := fs.Open(ctx, sf.StoredName)
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "round trip payload", string(got))
}

func TestLocalOpen(t *testing.T) {
	ctx := context.Background()
	fs, _ := newTestStore(t)

	t.Run("blank name", func(t *testing.T) {
		_, err := fs.Open(ctx, "  ")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := fs.Open(ctx, "does-not-exist.pdf")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("traversal rejected", func(t *testing.T) {
		_, err := fs.Open(ctx, "../escape.pdf")
		assert.ErrorIs(t, err, ErrInvalidPath)
	})
}

func TestLocalContainment(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// A sibling directory sharing the root as a string prefix must not pass.
	root := filepath.Join(dir, "uploads")
	sibling := filepath.Join(dir, "uploads-old")
	require.NoError(t, os.MkdirAll(sibling, 0o755))
	secret := filepath.Join(sibling, "secret.pdf")
	require.NoError(t, os.WriteFile(secret, []byte("secret"), 0o644))

	fs, err := NewLocal(config.StorageConfig{UploadDir: root})
	require.NoError(t, err)

	for _, name := range []string{
		"../uploads-old/secret.pdf",
		"a/../../uploads-old/secret.pdf",
		"..",
		".",
		"/etc/passwd",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := fs.Open(ctx, name)
			assert.Error(t, err)

			ok, err := fs.Exists(ctx, name)
			assert.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestLocalExists(t *testing.T) {
	ctx := context.Background()
	fs, _ := newTestStore(t)

	ok, err := fs.Exists(ctx, "")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = fs.Exists(ctx, "missing.pdf")
	assert.NoError(t, err)
	assert.False(t, ok)

	sf, err := fs.Store(ctx, strings.NewReader("x"), "here.pdf")
	require.NoError(t, err)

	ok, err = fs.Exists(ctx, sf.StoredName)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalRemove(t *testing.T) {
	ctx := context.Background()
	fs, dir := newTestStore(t)

	t.Run("blank name is a no-op", func(t *testing.T) {
		res, err := fs.Remove(ctx, "")
		assert.NoError(t, err)
		assert.Equal(t, AlreadyAbsent, res)
	})

	t.Run("missing file is a no-op", func(t *testing.T) {
		res, err := fs.Remove(ctx, "never-stored.pdf")
		assert.NoError(t, err)
		assert.Equal(t, AlreadyAbsent, res)
	})

	t.Run("out-of-root name is a no-op", func(t *testing.T) {
		res, err := fs.Remove(ctx, "../somewhere.pdf")
		assert.NoError(t, err)
		assert.Equal(t, AlreadyAbsent, res)
	})

	t.Run("existing file is removed", func(t *testing.T) {
		sf, err := fs.Store(ctx, strings.NewReader("bye"), "gone.pdf")
		require.NoError(t, err)

		res, err := fs.Remove(ctx, sf.StoredName)
		assert.NoError(t, err)
		assert.Equal(t, Removed, res)

		_, err = os.Stat(filepath.Join(dir, sf.StoredName))
		assert.True(t, os.IsNotExist(err))

		// Removing again is still success.
		res, err = fs.Remove(ctx, sf.StoredName)
		assert.NoError(t, err)
		assert.Equal(t, AlreadyAbsent, res)
	})
}
