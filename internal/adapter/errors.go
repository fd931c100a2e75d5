package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Status sentinels. A [*RemoteError] unwraps to the one matching its code.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Class sentinels.
var (
	// ErrClient is matched by every 4xx [*RemoteError].
	ErrClient = errors.New("client error")
	// ErrServer is matched by every 5xx [*RemoteError].
	ErrServer = errors.New("server error")
	// ErrTransport is matched by every [*TransportError].
	ErrTransport = errors.New("transport error")
)

// RemoteError is returned when the API answered with a non-2xx status.
type RemoteError struct {
	StatusCode int
	// Body is the error payload as sent by the server, trimmed.
	Body string
}

func (e *RemoteError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, body)
}

// Unwrap exposes the status sentinel and the class sentinel.
func (e *RemoteError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel := statusSentinel(e.StatusCode); sentinel != nil {
		errs = append(errs, sentinel)
	}
	switch {
	case e.StatusCode >= 400 && e.StatusCode < 500:
		errs = append(errs, ErrClient)
	case e.StatusCode >= 500 && e.StatusCode < 600:
		errs = append(errs, ErrServer)
	}
	return errs
}

// TransportError is returned when the request produced no response: the
// connection failed, DNS did not resolve, or the context was cancelled.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}
