package service

import "fmt"

// ErrorKind classifies failures so the caller can decide how to recover.
// All kinds are recoverable at the API boundary.
type ErrorKind string

const (
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
	KindNoJSONFound     ErrorKind = "NO_JSON_FOUND"
	KindMalformedJSON   ErrorKind = "MALFORMED_JSON"
	KindNetworkTimeout  ErrorKind = "NETWORK_TIMEOUT"
	KindNetworkError    ErrorKind = "NETWORK_ERROR"
	KindAuthError       ErrorKind = "AUTH_ERROR"
	KindRateLimited     ErrorKind = "RATE_LIMITED"
	KindRemoteError     ErrorKind = "REMOTE_ERROR"
)

// Error carries a kind plus whatever the caller needs to show the user,
// including the remote status for transport failures.
type Error struct {
	Kind    ErrorKind
	Message string
	Status  int // remote HTTP status, when applicable
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds an Error without remote context
func newError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
