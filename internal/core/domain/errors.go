package domain

import (
	"errors"
	"fmt"
)

// ErrNetwork marks a transport failure: the request never produced a
// response. Single attempt only, never retried.
var ErrNetwork = errors.New("network error")

// ErrAuthExpired marks a 401 on a call that carried a bearer token. Callers
// treat it as an implicit logout, not as a distinct user-facing error.
var ErrAuthExpired = errors.New("authentication expired")

// ValidationError is raised before any network call and surfaced inline
// near the offending input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RequestError is a non-2xx response with whatever message the server put in
// its body.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
}
