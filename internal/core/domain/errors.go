package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies failures so the transport layer can map them to a status code.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindForbidden    ErrorKind = "FORBIDDEN"
	KindConflict     ErrorKind = "CONFLICT"
	KindInvalidInput ErrorKind = "INVALID_INPUT"
	KindAuth         ErrorKind = "AUTH"
)

// Sentinels for errors.Is checks. Any *Error with the same kind matches.
var (
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
	ErrAuth         = &Error{Kind: KindAuth}
)

var (
	ErrInvalidCredentials = &Error{Kind: KindAuth, Message: "invalid credentials"}
	ErrUserExists         = &Error{Kind: KindConflict, Entity: "user", Message: "email already registered"}
)

// Error is the single error type returned by the core. Entity, ID and the
// Expected/Actual pair are optional context used to render precise messages.
type Error struct {
	Kind     ErrorKind
	Entity   string
	ID       int64
	Expected string
	Actual   string
	Message  string
}

func (e *Error) Error() string {
	var b strings.Builder
	switch {
	case e.Message != "":
		b.WriteString(e.Message)
	case e.Entity != "":
		b.WriteString(e.Entity + " " + strings.ToLower(strings.ReplaceAll(string(e.Kind), "_", " ")))
	default:
		b.WriteString(strings.ToLower(strings.ReplaceAll(string(e.Kind), "_", " ")))
	}
	if e.ID != 0 {
		fmt.Fprintf(&b, " (%s %d)", e.entityOr("id"), e.ID)
	}
	if e.Expected != "" || e.Actual != "" {
		fmt.Fprintf(&b, ": expected status %s, got %s", e.Expected, e.Actual)
	}
	return b.String()
}

// Is matches on kind so callers can write errors.Is(err, domain.ErrConflict).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Details returns the structured context carried by the error.
func (e *Error) Details() map[string]any {
	d := map[string]any{}
	if e.Entity != "" {
		d["entity"] = e.Entity
	}
	if e.ID != 0 {
		d["id"] = e.ID
	}
	if e.Expected != "" {
		d["expected_status"] = e.Expected
	}
	if e.Actual != "" {
		d["actual_status"] = e.Actual
	}
	return d
}

func (e *Error) entityOr(def string) string {
	if e.Entity == "" {
		return def
	}
	return e.Entity
}

// KindOf reports the kind of err, or "" when err is not a domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

func NotFound(entity string, id int64) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id}
}

func Forbidden(entity string, id int64, msg string) *Error {
	return &Error{Kind: KindForbidden, Entity: entity, ID: id, Message: msg}
}

// StatusConflict reports a state-transition precondition failure.
func StatusConflict(entity string, id int64, expected, actual string) *Error {
	return &Error{
		Kind:     KindConflict,
		Entity:   entity,
		ID:       id,
		Expected: expected,
		Actual:   actual,
		Message:  entity + " is not in the required status",
	}
}

func Conflict(entity string, id int64, msg string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, ID: id, Message: msg}
}

func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}
