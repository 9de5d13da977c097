package apperr

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/quizee-lambda/internal/config"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindNotFound
	KindConflict
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// Error is a classified failure with a message that is safe to show to clients.
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

func (e *Error) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error     { return Wrap(KindValidation, message, nil) }
func Authentication(message string) *Error { return Wrap(KindAuthentication, message, nil) }
func NotFound(message string) *Error       { return Wrap(KindNotFound, message, nil) }
func Conflict(message string) *Error       { return Wrap(KindConflict, message, nil) }
func Upstream(message string, err error) *Error {
	return Wrap(KindUpstream, message, err)
}
func Internal(message string, err error) *Error {
	return Wrap(KindInternal, message, err)
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpstream:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing text. Unclassified errors never leak their detail.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "Internal Server Error"
}

type body struct {
	Error struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"error"`
}

func Respond(w http.ResponseWriter, err error) {
	WriteStatus(w, Status(err), Message(err))
}

func WriteStatus(w http.ResponseWriter, status int, message string) {
	var b body
	b.Error.Message = message
	b.Error.Status = status
	config.JSON(w, status, b)
}
