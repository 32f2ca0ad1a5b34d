package client

import (
	"fmt"

	"residesk/internal/pkg/errs"
)

var ErrNotAuthenticated = errs.New("not authenticated")

// ValidationError is raised before any network call when a required field is
// missing or a window/range is malformed. Requests that fail validation are
// never sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// RemoteError is any non-2xx response from the server.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error (status %d): %s", e.Status, e.Message)
}

// ConflictError reports a booking range collision, either detected against
// the local snapshot before sending or returned by the server as a 409.
type ConflictError struct {
	AmenityID string
	Message   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking conflict on amenity %s: %s", e.AmenityID, e.Message)
}
