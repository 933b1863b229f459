package rest

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the single error type for a failed service call: either a
// transport failure (Err set, StatusCode 0) or a non-2xx response.
type Error struct {
	Service    string
	StatusCode int
	Status     string
	// Body holds the response text when the client was built with IncludeErrorBody.
	Body        string
	IncludeBody bool
	Err         error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 && e.Err != nil {
		return fmt.Sprintf("%s API error: %v", e.Service, e.Err)
	}
	msg := fmt.Sprintf("%s API error: %d %s", e.Service, e.StatusCode, e.Status)
	if e.IncludeBody {
		msg += " - " + e.Body
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a 404 from any service.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
