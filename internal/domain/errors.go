package domain

import "errors"

// ErrStoreUnavailable is returned when the document store was never
// configured or could not be reached at startup. Services check for this
// before touching the store.
var ErrStoreUnavailable = errors.New("store unavailable")

// ValidationError reports malformed request input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
