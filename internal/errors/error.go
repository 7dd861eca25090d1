package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/vango-dev/velem/pkg/decode"
	"github.com/vango-dev/velem/pkg/dom"
	"github.com/vango-dev/velem/pkg/vdom"
)

// Category represents the type of error.
type Category string

const (
	CategoryMount   Category = "mount"
	CategoryDecode  Category = "decode"
	CategoryConfig  Category = "config"
	CategoryPublish Category = "publish"
	CategoryServer  Category = "server"
)

// Location points at the part of an input that caused the error.
type Location struct {
	File string // Input file, if any
	Path string // Path inside the document, e.g. "children[1].props"
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	switch {
	case l.File != "" && l.Path != "":
		return l.File + ": " + l.Path
	case l.File != "":
		return l.File
	default:
		return l.Path
	}
}

// Error is a structured error with location and suggestion.
type Error struct {
	// Code is a unique error identifier (e.g., "E100").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is where in the input the error occurred.
	Location *Location

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithFile sets the input file of the location.
func (e *Error) WithFile(file string) *Error {
	if e.Location == nil {
		e.Location = &Location{}
	}
	e.Location.File = file
	return e
}

// WithPath sets the document path of the location.
func (e *Error) WithPath(path string) *Error {
	if path == "" {
		return e
	}
	if e.Location == nil {
		e.Location = &Location{}
	}
	e.Location.Path = path
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError classifies err and wraps it in an Error with the matching code.
// An *Error is returned unchanged; nil stays nil.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}

	out := New(codeFor(err)).Wrap(err)
	var de *decode.Error
	if stderrors.As(err, &de) {
		out.WithPath(de.Path)
	}
	var ce *vdom.InvalidChildError
	if stderrors.As(err, &ce) && ce.Path != "" && out.Location == nil {
		out.WithPath("children" + ce.Path)
	}
	return out
}

// codeFor maps well-known errors to registry codes.
func codeFor(err error) string {
	switch {
	case stderrors.Is(err, vdom.ErrInvalidKind):
		return "E100"
	case stderrors.Is(err, vdom.ErrUnsupportedKind):
		return "E101"
	case stderrors.Is(err, vdom.ErrInvalidChild):
		return "E102"
	case stderrors.Is(err, vdom.ErrInvalidProp), stderrors.Is(err, dom.ErrInvalidName):
		return "E103"
	case stderrors.Is(err, decode.ErrUnknownHandler):
		return "E111"
	case stderrors.Is(err, decode.ErrMissingKind):
		return "E112"
	case stderrors.Is(err, decode.ErrBadChild):
		return "E113"
	}
	var de *decode.Error
	if stderrors.As(err, &de) {
		return "E110"
	}
	return "E000"
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Code == code
}
