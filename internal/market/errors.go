package market

import (
	"errors"
	"fmt"
)

// Kind tags an adapter failure so callers can branch on the class of failure
// without parsing messages. The tool boundary is the only place where errors
// are rendered into caller-facing text.
type Kind string

const (
	// KindBadInput marks arguments the adapter could not use (malformed
	// dates, unknown intervals). The router performs no validation of its
	// own, so these surface from the adapter like any other failure.
	KindBadInput Kind = "bad_input"
	// KindRequest marks transport-level failures (DNS, timeout, refused).
	KindRequest Kind = "request"
	// KindStatus marks a non-2xx answer from the provider.
	KindStatus Kind = "status"
	// KindDecode marks a response body that could not be interpreted.
	KindDecode Kind = "decode"
)

// Error is the tagged failure type returned by adapters.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds a tagged adapter error.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// WrapError tags an existing error, preserving it for errors.Is/As.
func WrapError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf reports the tag of an adapter error, or an empty Kind for untagged
// errors.
func KindOf(err error) Kind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return ""
}
