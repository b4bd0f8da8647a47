package services

import (
	"fmt"

	"github.com/ekaraca/shiftdash/pkg/clients/planclient"
	"github.com/ekaraca/shiftdash/pkg/core/store"
)

// ErrUnauthorized is re-exported from the client so callers can test for it
// at the controller boundary. It ends the session and is never retried.
var ErrUnauthorized = planclient.ErrUnauthorized

// SyncError reports that one fetch in an invalidation group failed. The
// collection has been reset to its safe empty value and the rest of the
// group has still run.
type SyncError struct {
	Collection store.Collection
	Cause      error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("failed to sync %s: %v", e.Collection, e.Cause)
}

func (e *SyncError) Unwrap() error {
	return e.Cause
}

// ValidationError reports user input that fails a precondition. It is raised
// before any backend call, so the store is untouched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
