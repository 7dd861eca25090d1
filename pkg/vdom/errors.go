package vdom

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below via errors.Is.
var (
	// ErrInvalidKind is returned by CreateElement for a missing or malformed kind.
	ErrInvalidKind = errors.New("vdom: invalid kind")

	// ErrUnsupportedKind is returned by Mount for kinds the host cannot create.
	ErrUnsupportedKind = errors.New("vdom: unsupported kind")

	// ErrInvalidChild is returned for nested sequences and unrecognized children.
	ErrInvalidChild = errors.New("vdom: invalid child")

	// ErrInvalidProp is returned when a handler and an attribute key are mixed up.
	ErrInvalidProp = errors.New("vdom: invalid prop")
)

// InvalidKindError reports a kind rejected by CreateElement.
type InvalidKindError struct {
	Kind   Kind
	Reason string
}

func (e *InvalidKindError) Error() string {
	if e.Kind == nil {
		return fmt.Sprintf("vdom: invalid kind: %s", e.Reason)
	}
	return fmt.Sprintf("vdom: invalid kind %q: %s", e.Kind.String(), e.Reason)
}

// Is matches ErrInvalidKind.
func (e *InvalidKindError) Is(target error) bool { return target == ErrInvalidKind }

// UnsupportedKindError reports a kind Mount cannot turn into a host node.
type UnsupportedKindError struct {
	Kind Kind
	Err  error // Host error, if the host refused the tag
}

func (e *UnsupportedKindError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vdom: unsupported kind %q: %v", e.Kind.String(), e.Err)
	}
	return fmt.Sprintf("vdom: unsupported kind %q", e.Kind.String())
}

// Is matches ErrUnsupportedKind.
func (e *UnsupportedKindError) Is(target error) bool { return target == ErrUnsupportedKind }

// Unwrap returns the host error.
func (e *UnsupportedKindError) Unwrap() error { return e.Err }

// InvalidChildError reports a child that is neither text nor an element,
// or a sequence nested inside another sequence.
type InvalidChildError struct {
	Path   string // Index path below the element, e.g. "[0][1]"
	Value  any
	Reason string
}

func (e *InvalidChildError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("vdom: invalid child (%T): %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("vdom: invalid child at %s (%T): %s", e.Path, e.Value, e.Reason)
}

// Is matches ErrInvalidChild.
func (e *InvalidChildError) Is(target error) bool { return target == ErrInvalidChild }

// InvalidPropError reports a handler under an attribute key or a
// non-handler under an event key.
type InvalidPropError struct {
	Key    string
	Reason string
}

func (e *InvalidPropError) Error() string {
	return fmt.Sprintf("vdom: invalid prop %q: %s", e.Key, e.Reason)
}

// Is matches ErrInvalidProp.
func (e *InvalidPropError) Is(target error) bool { return target == ErrInvalidProp }
