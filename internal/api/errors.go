package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// IsNotFound reports whether err carries a 404 from the backend.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}
