// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package scheme

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorKind distinguishes the three error categories spec.md §7
// names: a program that cannot even be parsed, a well-formed program
// that refers to an unbound name, and a well-formed program that
// fails during evaluation for any other reason.
type ErrorKind int

const (
	SyntaxErrorKind ErrorKind = iota
	NameErrorKind
	RuntimeErrorKind
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxErrorKind:
		return "syntax error"
	case NameErrorKind:
		return "name error"
	case RuntimeErrorKind:
		return "runtime error"
	default:
		return "error"
	}
}

// InterpreterError is the concrete error type returned by every
// failing operation in this package. Its Kind lets a caller (the
// driver, or a test) distinguish a syntax failure from a name failure
// from a generic runtime failure without string matching.
type InterpreterError struct {
	Kind ErrorKind
	msg  string
	// cause is non-nil when this error wraps a lower-level failure
	// (e.g. the underlying io.Reader erroring). It is carried via
	// github.com/pkg/errors so a stack trace survives for debug
	// logging, without becoming part of Error().
	cause error
}

func (e *InterpreterError) Error() string { return e.msg }

func (e *InterpreterError) Unwrap() error { return e.cause }

func newKindError(kind ErrorKind, format string, args ...interface{}) *InterpreterError {
	return &InterpreterError{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

func newSyntaxError(format string, args ...interface{}) *InterpreterError {
	return newKindError(SyntaxErrorKind, format, args...)
}

func newNameError(format string, args ...interface{}) *InterpreterError {
	return newKindError(NameErrorKind, format, args...)
}

func newRuntimeError(format string, args ...interface{}) *InterpreterError {
	return newKindError(RuntimeErrorKind, format, args...)
}

// wrapSyntaxError wraps a lower-level error (typically from the
// scanner's underlying io.RuneReader) as a SyntaxError, attaching a
// stack trace via pkg/errors for debug logging.
func wrapSyntaxError(cause error, format string, args ...interface{}) *InterpreterError {
	return &InterpreterError{
		Kind:  SyntaxErrorKind,
		msg:   fmt.Sprintf(format, args...),
		cause: pkgerrors.WithStack(cause),
	}
}

// IsSyntaxError reports whether err is, or wraps, a syntax error.
func IsSyntaxError(err error) bool { return hasKind(err, SyntaxErrorKind) }

// IsNameError reports whether err is, or wraps, a name error.
func IsNameError(err error) bool { return hasKind(err, NameErrorKind) }

// IsRuntimeError reports whether err is, or wraps, a runtime error.
func IsRuntimeError(err error) bool { return hasKind(err, RuntimeErrorKind) }

func hasKind(err error, kind ErrorKind) bool {
	var ie *InterpreterError
	if !errors.As(err, &ie) {
		return false
	}
	return ie.Kind == kind
}
