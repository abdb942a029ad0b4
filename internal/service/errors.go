package service

import (
	"errors"
	"fmt"
)

// Kind classifies request failures independently of the transport.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidPayload
	KindMissingField
	KindInvalidField
	KindDuplicateUsername
	KindDuplicateEmail
	KindWeakPassword
	KindUserNotFound
	KindInvalidPassword
	KindInvalidUser
	KindPostNotFound
	KindAlreadyPublished
	KindAlreadyUnpublished
)

// Error is a request failure the caller can act on. Message is shown to the
// client verbatim.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches on Kind so callers can compare against the sentinel values.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

var (
	ErrInvalidPayload     = &Error{KindInvalidPayload, "Invalid request payload"}
	ErrDuplicateUsername  = &Error{KindDuplicateUsername, "Username already exists"}
	ErrDuplicateEmail     = &Error{KindDuplicateEmail, "Email already exists"}
	ErrWeakPassword       = &Error{KindWeakPassword, fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)}
	ErrPasswordTooLong    = &Error{KindInvalidField, fmt.Sprintf("Password must be at most %d bytes", MaxPasswordBytes)}
	ErrUserNotFound       = &Error{KindUserNotFound, "Username not found"}
	ErrInvalidPassword    = &Error{KindInvalidPassword, "Invalid password"}
	ErrInvalidUser        = &Error{KindInvalidUser, "Invalid username"}
	ErrPostNotFound       = &Error{KindPostNotFound, "Post not found"}
	ErrAlreadyPublished   = &Error{KindAlreadyPublished, "Post is already published"}
	ErrAlreadyUnpublished = &Error{KindAlreadyUnpublished, "Post is already unpublished"}
)

func MissingField(key string) *Error {
	return &Error{KindMissingField, "Missing required key: " + key}
}

func InvalidField(key string) *Error {
	return &Error{KindInvalidField, "Invalid value for key: " + key}
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
