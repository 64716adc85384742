package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	// KindIO covers filesystem access: listing, opening, reading and writing.
	KindIO     Kind = "io"
	KindUsage  Kind = "usage"
	// KindDecode covers data files that are readable but not valid text.
	KindDecode Kind = "decode"
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for user-facing output and logs.
	SafeMessage string
	// Cause keeps the original error for errors.Is/As matching.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := strings.TrimSpace(e.SafeMessage)
	if msg != "" && e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	if msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindIO:
		return "filesystem access failed"
	case KindUsage:
		return "invalid usage"
	case KindDecode:
		return "data file is not valid text"
	default:
		return "operation failed"
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

// IO wraps a filesystem error. msg names the operation, e.g. "open data file".
func IO(msg string, err error) error {
	return New(KindIO, msg, err)
}

// Decode wraps a content decoding error. msg names the file or operation.
func Decode(msg string, err error) error {
	return New(KindDecode, msg, err)
}

func Usage(msg string) error {
	return New(KindUsage, msg, nil)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

// PublicMessage returns the safe message without the wrapped cause.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
			return msg
		}
	}
	return err.Error()
}

func IsIO(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindIO
}
