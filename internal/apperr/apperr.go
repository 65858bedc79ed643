// Copyright (c) 2026 Anhar Fahrudin <hi@anharfhd.space>
// All rights reserved. See LICENSE for details.

// Package apperr classifies failures so HTTP handlers can map them to
// status codes without inspecting error strings. Three kinds exist:
// validation (bad caller input, never retried), not-found (slug lookup
// miss on a mutation), and store (backing database failure).
package apperr

import (
	"errors"
	"fmt"
)

// Kind identifies the failure class of an Error.
type Kind int

const (
	// KindValidation marks missing or malformed caller input.
	KindValidation Kind = iota
	// KindNotFound marks a mutation against a nonexistent slug.
	KindNotFound
	// KindStore marks a backing-store failure (connectivity, constraint).
	KindStore
)

// Error is a classified application error. It wraps an underlying cause
// when one exists so errors.Is/As keep working through it.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Validationf creates a validation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf creates a not-found error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Store wraps a backing-store failure with context.
func Store(msg string, err error) *Error {
	return &Error{Kind: KindStore, Msg: msg, Err: err}
}

// kindOf extracts the Kind from err, reporting whether err is an *Error.
func kindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindValidation
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNotFound
}

// IsStore reports whether err is a store error. Unclassified errors are
// treated as store failures by handlers, so this is informational.
func IsStore(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindStore
}
