package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so controllers can pick a status code
// without inspecting error strings.
type Kind int

const (
	Validation Kind = iota + 1 // caller mistake: wrong file type, missing field
	NotFound                   // query against a name that was never indexed
	Extraction                 // document unreadable (corrupt, encrypted, wrong format)
	Embedding                  // embedding backend unreachable or misbehaving
	Generation                 // generative backend failed or returned nothing usable
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the Kind buried in err, or 0 if err carries none.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

// Status maps an error to the HTTP status its JSON body should carry.
// Unclassified errors collapse to 500.
func Status(err error) int {
	switch KindOf(err) {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Extraction:
		return http.StatusUnprocessableEntity
	case Embedding, Generation:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the text for the JSON error body. For classified errors
// this is the wrapped message chain; anything else passes through as-is.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
