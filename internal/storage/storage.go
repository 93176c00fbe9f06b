package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Package storage owns the physical files backing document records and
// site content slots. No other package may turn a stored name into a
// filesystem path or object key.

var (
	// ErrEmptyUpload is returned when the upload stream is nil or empty.
	ErrEmptyUpload = errors.New("please select a file to upload")
	// ErrExtensionNotAllowed is returned for uploads outside the whitelist.
	ErrExtensionNotAllowed = errors.New("only PDF, DOC, and DOCX files are allowed")
	// ErrInvalidPath is returned when a stored name resolves outside the storage root.
	ErrInvalidPath = errors.New("invalid file path")
	// ErrNotFound is returned when the stored name is blank or no file backs it.
	ErrNotFound = errors.New("file not found")
)

// StoredFile is the result of a successful upload. OriginalName is the
// sanitized client-supplied name, kept for display only. StoredName is the
// generated name the file actually lives under.
type StoredFile struct {
	OriginalName string `json:"originalName"`
	StoredName   string `json:"storedName"`
}

// RemoveResult reports what Remove actually did. Callers that only care
// about the lenient contract can ignore it: both values mean success.
type RemoveResult int

const (
	Removed RemoveResult = iota
	AlreadyAbsent
)

// FileStore stores and serves uploaded files under generated names.
// Implementations must be safe for concurrent use.
type FileStore interface {
	// Store validates the upload, generates a fresh stored name, and writes
	// the content. The original filename contributes only its extension and
	// its basename (for display); it never becomes part of a path.
	Store(ctx context.Context, r io.Reader, originalFilename string) (StoredFile, error)

	// Open returns the file content for a previously stored name.
	// Blank or missing names yield ErrNotFound.
	Open(ctx context.Context, storedName string) (io.ReadCloser, error)

	// Exists reports whether a file backs the stored name. Blank and missing
	// names are false without error; the error is reserved for I/O faults.
	Exists(ctx context.Context, storedName string) (bool, error)

	// Remove deletes the file if present. Removing a blank or already-absent
	// name is success (AlreadyAbsent); only a real I/O failure is an error.
	Remove(ctx context.Context, storedName string) (RemoveResult, error)
}

// allowedExtensions is the upload whitelist, matched case-insensitively.
var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// newStoredFile applies the shared naming policy: strip path components from
// the original name, enforce the extension whitelist, and mint a random
// stored name. The stored extension keeps the original case; only the
// whitelist match is case-insensitive.
//
// Stripping cuts at the last slash of either flavor. Some browsers submit
// full Windows paths, so backslashes count as separators on every host.
func newStoredFile(originalFilename string) (StoredFile, error) {
	name := originalFilename
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if name == "" || name == "." || name == ".." {
		name = "file"
	}

	ext := extensionOf(name)
	if _, ok := allowedExtensions[strings.ToLower(ext)]; !ok {
		return StoredFile{}, ErrExtensionNotAllowed
	}

	return StoredFile{
		OriginalName: name,
		StoredName:   uuid.NewString() + ext,
	}, nil
}

// extensionOf returns the substring from the last dot to the end, or ""
// when the name has no dot.
func extensionOf(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return name[i:]
}

// ensureNonEmpty rejects nil/empty uploads by peeking one byte, then hands
// back an equivalent reader.
func ensureNonEmpty(r io.Reader) (io.Reader, error) {
	if r == nil {
		return nil, ErrEmptyUpload
	}
	var first [1]byte
	n, err := io.ReadFull(r, first[:])
	if n == 0 {
		if err == io.EOF || err == io.ErrUnexpectedEOF || err == nil {
			return nil, ErrEmptyUpload
		}
		return nil, err
	}
	return io.MultiReader(bytes.NewReader(first[:n]), r), nil
}

// ContentTypeFor infers a MIME type from the filename extension alone,
// case-insensitively. Unknown extensions fall back to octet-stream.
func ContentTypeFor(filename string) string {
	switch strings.ToLower(extensionOf(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
