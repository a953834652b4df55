package apperr

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// Error kinds. Every *Error carries exactly one of these.
var (
	ErrConfigMissing    = errors.New("configuration missing")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnsupportedType  = errors.New("unsupported file type")
	ErrExtractionFailed = errors.New("text extraction failed")
	ErrUpstream         = errors.New("upstream service failed")
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Error is an application error with a kind, a client-facing message and the
// stack captured where it was created.
type Error struct {
	Kind    error
	Message string
	Err     error

	traced error
}

// New creates an Error. The stack of the wrapped error is reused when it has one.
func New(kind error, message string, err error) *Error {
	e := &Error{Kind: kind, Message: message, Err: err}
	var st stackTracer
	switch {
	case err != nil && errors.As(err, &st):
		e.traced = err
	case err != nil:
		e.traced = pkgerrors.WithStack(err)
	default:
		e.traced = pkgerrors.New(message)
	}
	return e
}

func Invalid(message string) *Error {
	return New(ErrInvalidInput, message, nil)
}

func ConfigMissing(message string) *Error {
	return New(ErrConfigMissing, message, nil)
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

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) StackTrace() pkgerrors.StackTrace {
	var st stackTracer
	if errors.As(e.traced, &st) {
		return st.StackTrace()
	}
	return nil
}

// StatusCode maps an error to the HTTP status the API reports for it.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnsupportedType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for err.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Err == nil {
		return appErr.Message
	}
	return err.Error()
}

// Traceback renders err followed by the innermost recorded stack.
func Traceback(err error) string {
	if err == nil {
		return ""
	}
	var st stackTracer
	if !errors.As(err, &st) || st.StackTrace() == nil {
		return err.Error()
	}
	return fmt.Sprintf("%s%+v", err.Error(), st.StackTrace())
}
