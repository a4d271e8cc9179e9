package domain

import "errors"

// Failure kinds carried in the envelope's error object.
const (
	KindInvalidArguments  = "invalid_arguments"
	KindMissingCredential = "missing_credential"
	KindNetworkError      = "network_error"
	KindUpstreamError     = "upstream_error"
	KindMalformedResponse = "malformed_response"
	KindInternalError     = "internal_error"
)

// Metadata describes the result window of a successful invocation.
type Metadata struct {
	Count   int  `json:"count"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// Fault describes a failed invocation.
type Fault struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Envelope is the uniform tool response: data plus metadata on success, a
// fault on failure, never both.
type Envelope struct {
	Data     any       `json:"data,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
	Error    *Fault    `json:"error,omitempty"`
}

// IsFailure reports whether the envelope carries a fault.
func (e Envelope) IsFailure() bool { return e.Error != nil }

// Success builds a success envelope around result data.
func Success(data any, meta Metadata) Envelope {
	return Envelope{Data: data, Metadata: &meta}
}

// Failure builds a failure envelope with the given kind and message.
func Failure(kind, message string) Envelope {
	return Envelope{Error: &Fault{Kind: kind, Message: message}}
}

// FromError translates a core error into a failure envelope. Unrecognized
// errors map to internal_error.
func FromError(err error) Envelope {
	return Failure(kindOf(err), err.Error())
}

func kindOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArguments):
		return KindInvalidArguments
	case errors.Is(err, ErrMissingCredential):
		return KindMissingCredential
	case errors.Is(err, ErrNetwork):
		return KindNetworkError
	case errors.Is(err, ErrUpstream):
		return KindUpstreamError
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformedResponse
	default:
		return KindInternalError
	}
}
