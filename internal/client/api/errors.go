package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport-level failures: the request never produced
// an HTTP response. Match with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// RequestError is returned for HTTP error statuses. Message carries the
// backend-supplied text when the response body was parseable.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is a RequestError with the given status.
func IsStatus(err error, status int) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Status == status
}
