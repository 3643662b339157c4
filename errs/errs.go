package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so boundary adapters can map it to a
// transport status without inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindPermissionDenied
	KindForbiddenCountry
	KindForbiddenOwnership
	KindNotFound
	KindInvalidArgument
	KindInvalidState
)

// Error carries a kind and a human-readable message. All failures are
// terminal for the current call; nothing here is retried.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func PermissionDenied(action string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: "you don't have permission to " + action}
}

func ForbiddenCountry() *Error {
	return &Error{Kind: KindForbiddenCountry, Message: "you can only access resources from your country"}
}

func ForbiddenOwnership(msg string) *Error {
	return &Error{Kind: KindForbiddenOwnership, Message: msg}
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

func InvalidArgument(msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: msg}
}

func InvalidArgumentf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(msg string) *Error {
	return &Error{Kind: KindInvalidState, Message: msg}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// HTTPStatus maps an error to the status a boundary adapter should
// return. Unknown errors are treated as internal.
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindPermissionDenied, KindForbiddenCountry, KindForbiddenOwnership:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidArgument, KindInvalidState:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
