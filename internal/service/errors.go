package service

import (
	"errors"
	"io"

	"portfolioapi/internal/storage"
)

var (
	// ErrIDRequired is returned when an operation is called with a blank ID.
	ErrIDRequired = errors.New("id is required")
	// ErrNotFound covers missing records, missing files, and hidden documents.
	// Callers must not be able to tell those cases apart.
	ErrNotFound = errors.New("not found")
	// ErrDownloadDisabled is returned when a download is requested for a file
	// whose admin has disabled downloading. Distinct from ErrNotFound: the
	// resource's existence is already implied at this point.
	ErrDownloadDisabled = errors.New("download is disabled by admin")
)

// InvalidInputError carries a human-readable reason that is safe to return
// to the client as-is.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

func invalidInput(reason string) error {
	return &InvalidInputError{Reason: reason}
}

// mapUploadErr translates storage-layer validation failures on upload into
// the service taxonomy. Anything else is a storage I/O fault and passes
// through unchanged.
func mapUploadErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrEmptyUpload),
		errors.Is(err, storage.ErrExtensionNotAllowed),
		errors.Is(err, storage.ErrInvalidPath):
		return invalidInput(err.Error())
	}
	return err
}

// mapServeErr translates storage-layer failures on read into the service
// taxonomy. A containment violation is deliberately collapsed into
// not-found so no path detail leaks to the caller.
func mapServeErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, storage.ErrInvalidPath):
		return ErrNotFound
	}
	return err
}

// Disposition values for FileResponse.
const (
	DispositionAttachment = "attachment"
	DispositionInline     = "inline"
)

// FileResponse is a ready-to-serve file: content stream plus the headers'
// worth of metadata. The caller owns closing Content.
type FileResponse struct {
	Content     io.ReadCloser
	FileName    string
	ContentType string
	Disposition string
}

func newFileResponse(content io.ReadCloser, fileName string, download bool) *FileResponse {
	disposition := DispositionInline
	if download {
		disposition = DispositionAttachment
	}
	return &FileResponse{
		Content:     content,
		FileName:    fileName,
		ContentType: storage.ContentTypeFor(fileName),
		Disposition: disposition,
	}
}
