// File: error.go
// Title: Core Error Type
// Description: The Error type with builder methods, helpers to inspect codes
//              on arbitrary errors, and Join for folding several errors into
//              one.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error is a coded error with severity, operation and structured details
type Error struct {
	message   string
	code      Code
	severity  Severity
	operation string
	details   map[string]interface{}
	cause     error
	children  []error
}

// New creates an error with CodeUnknown and the default severity
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: GetSeverityFromCode(CodeUnknown),
		details:  make(map[string]interface{}),
	}
}

// Newf creates an error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps err with an additional message. The code and severity of a
// wrapped *Error are inherited. Wrap returns nil for a nil error.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	e := New(message)
	e.cause = err
	var inner *Error
	if errors.As(err, &inner) {
		e.code = inner.code
		e.severity = inner.severity
	}
	return e
}

// Join folds errs into a single error. Nil entries are skipped; Join returns
// nil when nothing remains and the single error itself when only one does.
func Join(message string, errs ...error) *Error {
	var kept []error
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	if len(kept) == 1 {
		if e, ok := kept[0].(*Error); ok {
			return e
		}
		return Wrap(kept[0], message)
	}

	e := New(message).WithCode(GetCode(kept[0])).WithDetail("count", len(kept))
	e.children = kept
	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.message
	if e.operation != "" {
		msg = e.operation + ": " + msg
	}
	if len(e.children) > 0 {
		parts := make([]string, len(e.children))
		for i, child := range e.children {
			parts[i] = child.Error()
		}
		return msg + ": " + strings.Join(parts, "; ")
	}
	if e.cause != nil {
		return msg + ": " + e.cause.Error()
	}
	return msg
}

// Unwrap exposes the cause and any joined errors to errors.Is / errors.As
func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return append([]error{e.cause}, e.children...)
	}
	return e.children
}

// WithCode sets the code and resets the severity to the code's default
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity overrides the severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation records the operation that failed
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a single detail
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails merges details
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithCause sets the underlying error
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

func (e *Error) Code() Code         { return e.code }
func (e *Error) Severity() Severity { return e.severity }
func (e *Error) Operation() string  { return e.operation }
func (e *Error) Message() string    { return e.message }
func (e *Error) Errors() []error    { return e.children }

// Details returns a copy of the details map
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// String returns a multi-line description for verbose output
func (e *Error) String() string {
	parts := []string{
		"Error: " + e.message,
		"Code: " + string(e.code),
		"Severity: " + e.severity.String(),
	}
	if e.operation != "" {
		parts = append(parts, "Operation: "+e.operation)
	}
	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		detail := make([]string, len(keys))
		for i, k := range keys {
			detail[i] = fmt.Sprintf("%s=%v", k, e.details[k])
		}
		parts = append(parts, "Details: {"+strings.Join(detail, ", ")+"}")
	}
	for _, child := range e.children {
		parts = append(parts, "  - "+child.Error())
	}
	if e.cause != nil {
		parts = append(parts, "Cause: "+e.cause.Error())
	}
	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":  e.message,
		"code":     e.code,
		"severity": e.severity.String(),
	}
	if len(e.details) > 0 {
		data["details"] = e.details
	}
	if e.operation != "" {
		data["operation"] = e.operation
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	if len(e.children) > 0 {
		children := make([]string, len(e.children))
		for i, child := range e.children {
			children[i] = child.Error()
		}
		data["errors"] = children
	}
	return json.Marshal(data)
}

// HasCode reports whether err, or anything it wraps, carries code
func HasCode(err error, code Code) bool {
	found := false
	walk(err, func(e *Error) bool {
		found = e.code == code
		return !found
	})
	return found
}

// GetCode returns the code of the outermost *Error in err's chain, or
// CodeUnknown
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the outermost *Error in err's chain
func GetSeverity(err error) Severity {
	var e *Error
	if errors.As(err, &e) {
		return e.severity
	}
	return SeverityMedium
}

// walk visits every *Error reachable from err until fn returns false
func walk(err error, fn func(*Error) bool) bool {
	if err == nil {
		return true
	}
	if e, ok := err.(*Error); ok && !fn(e) {
		return false
	}
	switch x := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range x.Unwrap() {
			if !walk(inner, fn) {
				return false
			}
		}
	case interface{ Unwrap() error }:
		return walk(x.Unwrap(), fn)
	}
	return true
}
