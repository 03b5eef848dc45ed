package fetch

import "game-catalog/core/errs"

// Kind tags an Outcome.
type Kind string

const (
	Success        Kind = "success"
	NotFound       Kind = "not_found"
	RateLimited    Kind = "rate_limited"
	ServerFault    Kind = "server_fault"
	ClientFault    Kind = "client_fault"
	TransportFault Kind = "transport_fault"
)

// Outcome is the result of one fetch attempt.
type Outcome struct {
	Kind Kind
	// URL is the requested address.
	URL string
	// Status is the HTTP status code, zero when no response was received.
	Status int
	// Body holds the raw document on Success.
	Body []byte
	// Detail describes the failure.
	Detail string
}

// OK reports whether the fetch succeeded.
func (o Outcome) OK() bool {
	return o.Kind == Success
}

// Err converts a failed outcome into a typed error, nil on Success.
func (o Outcome) Err() error {
	var kind errs.Kind
	switch o.Kind {
	case Success:
		return nil
	case NotFound:
		kind = errs.NotFound
	case RateLimited:
		kind = errs.RateLimited
	case ServerFault:
		kind = errs.ServerFault
	case ClientFault:
		kind = errs.ClientFault
	default:
		kind = errs.TransportFault
	}
	return errs.New(kind, "%s", o.Detail)
}
