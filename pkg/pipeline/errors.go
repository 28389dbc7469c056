package pipeline

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidTransition is returned when a lifecycle operation is attempted
// against a document whose current status does not allow it. Callers must
// not retry blindly; under concurrent workers it usually means another
// worker already owns the job.
var ErrInvalidTransition = errors.New("invalid transition")

var ErrDocumentNotFound = errors.New("document not found")

type TransitionError struct {
	Op         string
	DocumentId uuid.UUID
	From       string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s rejected: document %s is in status %q", e.Op, e.DocumentId, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
