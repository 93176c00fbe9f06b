package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"portfolioapi/internal/config"
)

// localStore implements FileStore on a single local directory. Every
// operation re-derives and re-validates the target path from the stored
// name at the moment of use; no path is trusted across calls.
type localStore struct {
	root string
}

// NewLocal creates a local file store rooted at cfg.UploadDir. The root is
// made absolute and normalized once, and created if missing. The process
// cannot run without it, so the caller should treat an error as fatal.
func NewLocal(cfg config.StorageConfig) (FileStore, error) {
	root, err := filepath.Abs(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &localStore{root: root}, nil
}

// resolve maps a stored name to an absolute path and enforces containment.
// The check is component-wise: after cleaning, the path must be a strict
// descendant of the root, so "../escape" fails and a sibling directory
// sharing the root as a string prefix (e.g. /data/uploads-old) fails too.
func (s *localStore) resolve(storedName string) (string, error) {
	p := filepath.Clean(filepath.Join(s.root, storedName))
	if p == s.root || !strings.HasPrefix(p, s.root+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}
	return p, nil
}

func (s *localStore) Store(ctx context.Context, r io.Reader, originalFilename string) (StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return StoredFile{}, err
	}

	body, err := ensureNonEmpty(r)
	if err != nil {
		return StoredFile{}, err
	}

	sf, err := newStoredFile(originalFilename)
	if err != nil {
		return StoredFile{}, err
	}

	// The stored name is generated, not user-controlled, so this should
	// always hold; validate anyway because containment is the invariant
	// everything else leans on.
	dest, err := s.resolve(sf.StoredName)
	if err != nil {
		return StoredFile{}, err
	}

	f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return StoredFile{}, fmt.Errorf("store file: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(dest)
		return StoredFile{}, fmt.Errorf("store file: %w", err)
	}
	if err := f.Close(); err != nil {
		return StoredFile{}, fmt.Errorf("store file: %w", err)
	}

	return sf, nil
}

func (s *localStore) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(storedName) == "" {
		return nil, ErrNotFound
	}

	p, err := s.resolve(storedName)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return f, nil
}

func (s *localStore) Exists(ctx context.Context, storedName string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if strings.TrimSpace(storedName) == "" {
		return false, nil
	}

	p, err := s.resolve(storedName)
	if err != nil {
		return false, nil
	}

	st, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat file: %w", err)
	}
	return st.Mode().IsRegular(), nil
}

func (s *localStore) Remove(ctx context.Context, storedName string) (RemoveResult, error) {
	if err := ctx.Err(); err != nil {
		return AlreadyAbsent, err
	}
	if strings.TrimSpace(storedName) == "" {
		return AlreadyAbsent, nil
	}

	p, err := s.resolve(storedName)
	if err != nil {
		// Out-of-root names cannot reference anything we own.
		return AlreadyAbsent, nil
	}

	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return AlreadyAbsent, nil
		}
		return AlreadyAbsent, fmt.Errorf("delete file: %w", err)
	}
	return Removed, nil
}
