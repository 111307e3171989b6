package service

import "net/http"

// Kind classifies a service failure so handlers can map it to an HTTP status
// without inspecting message strings.
type Kind int

const (
	KindValidation Kind = iota // malformed, missing or oversized input
	KindAuth                   // bad credentials or token problems
	KindNotFound               // referenced entity absent
	KindConflict               // uniqueness violation
	KindInternal               // unclassified data-access or runtime failure
)

// Error is the classified error every service returns. Message is safe to
// show to the client; the wrapped cause is for server logs only.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// HTTPStatus maps the error kind to its response status
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Validation(msg string) *Error   { return &Error{Kind: KindValidation, Message: msg} }
func Unauthorized(msg string) *Error { return &Error{Kind: KindAuth, Message: msg} }
func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error     { return &Error{Kind: KindConflict, Message: msg} }

// Internal wraps an unexpected failure. msg is what the client sees.
func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, cause: cause}
}
