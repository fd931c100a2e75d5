package service

import (
	"errors"

	"github.com/MKhiriev/go-movie-client/internal/app"
)

var (
	// ErrSomethingBadHappened is matched by every [*OperationError].
	ErrSomethingBadHappened = errors.New(app.MsgGenericFailure)

	ErrNotLoggedIn    = errors.New(app.MsgNotLoggedIn)
	ErrNoTokenIssued  = errors.New("login response carries no token")
	ErrEmptyUserPatch = errors.New("no user field to change")
)

// Kind classifies the cause of an [OperationError].
type Kind int

const (
	// KindLocal covers failures before a request is sent or after a response
	// is received: credentials, encoding, decoding, session storage.
	KindLocal Kind = iota
	// KindTransport means no response reached the client.
	KindTransport
	// KindClient means the API answered with a 4xx status.
	KindClient
	// KindServer means the API answered with a 5xx status.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindClient:
		return "client"
	case KindServer:
		return "server"
	default:
		return "local"
	}
}

// OperationError is the only error the catalog and session services return.
// Its text is always [app.MsgGenericFailure]; the cause stays reachable
// through errors.Is and errors.As.
type OperationError struct {
	// Op is the name of the failed operation, e.g. "GetOneMovie".
	Op string
	// Kind is the failure class.
	Kind Kind
	// StatusCode is the HTTP status of a remote failure, 0 otherwise.
	StatusCode int
	// Err is the underlying cause.
	Err error
}

func (e *OperationError) Error() string {
	return app.MsgGenericFailure
}

func (e *OperationError) Unwrap() []error {
	return []error{ErrSomethingBadHappened, e.Err}
}
