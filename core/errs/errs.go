package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind string

const (
	NotFound          Kind = "not_found"
	Malformed         Kind = "malformed"
	RateLimited       Kind = "rate_limited"
	ServerFault       Kind = "server_fault"
	ClientFault       Kind = "client_fault"
	TransportFault    Kind = "transport_fault"
	RepositoryFault   Kind = "repository_fault"
	InvalidParameters Kind = "invalid_parameters"
)

// Transient reports whether a caller may retry the operation later.
func (k Kind) Transient() bool {
	switch k {
	case RateLimited, ServerFault, TransportFault:
		return true
	default:
		return false
	}
}

// Title returns a short human readable label for the kind.
func (k Kind) Title() string {
	switch k {
	case NotFound:
		return "Game Not Found"
	case Malformed:
		return "Malformed Document"
	case RateLimited:
		return "Server Timeout 503"
	case ServerFault:
		return "Server Error"
	case ClientFault:
		return "Request Rejected"
	case TransportFault:
		return "Transport Error"
	case RepositoryFault:
		return "Database Operation Error"
	case InvalidParameters:
		return "Invalid Parameters"
	default:
		return "Operation Error"
	}
}

// Error is a failure carrying its Kind and a human readable detail.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Unwrap implements errors.Unwrap.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so errors.Is(err, &Error{Kind: NotFound}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Detail == "" || t.Detail == e.Detail)
}

// New creates an Error with a formatted detail.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that wraps an underlying cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain.
// Errors that carry no Kind are reported as TransportFault when err is non-nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return TransportFault
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// From converts any error into an *Error, keeping an existing kind.
func From(err error, fallback Kind) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: fallback, Detail: err.Error(), Err: err}
}
