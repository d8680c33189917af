// Package apperr models remote-call failures as a tagged error type so that
// handlers can map each kind to a status code instead of sniffing strings.
package apperr

import "errors"

type Kind string

const (
	KindNotFound     Kind = "not-found"
	KindValidation   Kind = "validation"
	KindNetwork      Kind = "network"
	KindUnauthorized Kind = "unauthorized"
	KindUnknown      Kind = "unknown"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error with a message only.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain, defaulting to unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusCode maps an error kind to an HTTP status code.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return 404
	case KindValidation:
		return 400
	case KindUnauthorized:
		return 401
	case KindNetwork:
		return 502
	default:
		return 500
	}
}
