// Package failure defines the tagged error kinds shared by the minutes pipeline.
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure so callers can branch without matching messages.
type Kind int

const (
	Unknown Kind = iota
	Connectivity
	Timeout
	NonSuccessStatus
	MalformedResponse
	Persistence
	Busy
	InvalidInput
)

func (k Kind) String() string {
	switch k {
	case Connectivity:
		return "connectivity"
	case Timeout:
		return "timeout"
	case NonSuccessStatus:
		return "non_success_status"
	case MalformedResponse:
		return "malformed_response"
	case Persistence:
		return "persistence"
	case Busy:
		return "busy"
	case InvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error is a classified failure. Message is meant to be shown to the user verbatim.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error without a cause.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap creates a classified error around cause.
func Wrap(kind Kind, op, message string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
