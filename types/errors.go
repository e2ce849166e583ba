package types

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFileType rejects an upload before any state is changed.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrNotFound reports a lookup for an unknown paper id.
	ErrNotFound = errors.New("paper not found")
)

// ExtractionError reports an unreadable or corrupt document. It is fatal to
// a single ingestion and triggers cleanup of the stored file.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("pdf extraction error: %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ModelError wraps a failure from the language-model service. Metadata and
// summary steps downgrade it to a fallback value instead of propagating.
type ModelError struct {
	Err error
}

func (e *ModelError) Error() string { return fmt.Sprintf("model error: %v", e.Err) }

func (e *ModelError) Unwrap() error { return e.Err }

// IndexUnavailableError reports that the vector index could not be reached
// or written. No retries are performed.
type IndexUnavailableError struct {
	Op  string
	Err error
}

func (e *IndexUnavailableError) Error() string {
	return fmt.Sprintf("vector index unavailable during %s: %v", e.Op, e.Err)
}

func (e *IndexUnavailableError) Unwrap() error { return e.Err }
