// File: codes.go
// Title: Error Code Definitions
// Description: Stable error codes used across the halang packages. Syntax
//              codes mirror the diagnostic taxonomy of the parser.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeIO           Code = "IO_ERROR"

	// Syntax
	CodeSyntax                 Code = "SYNTAX"
	CodeUnexpectedToken        Code = "UNEXPECTED_TOKEN"
	CodeMissingIdentifier      Code = "MISSING_IDENTIFIER"
	CodeMalformedParameterList Code = "MALFORMED_PARAMETER_LIST"
	CodeNestingTooDeep         Code = "NESTING_TOO_DEEP"
	CodeIllegalCharacter       Code = "ILLEGAL_CHARACTER"

	// AST
	CodeInvalidNode   Code = "INVALID_NODE"
	CodeArenaReleased Code = "ARENA_RELEASED"
	CodeForeignNode   Code = "FOREIGN_NODE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	return c.Category() != "" && c != ""
}

// Category returns the high-level category of the error code, or "" for
// codes this package does not define.
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeUnexpectedToken, CodeMissingIdentifier,
		CodeMalformedParameterList, CodeNestingTooDeep, CodeIllegalCharacter:
		return "syntax"
	case CodeInvalidNode, CodeArenaReleased, CodeForeignNode:
		return "ast"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeValueOutOfRange:
		return "validation"
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeIO:
		return "generic"
	default:
		return ""
	}
}

// IsSyntax reports whether the code describes malformed source text
func (c Code) IsSyntax() bool {
	return c.Category() == "syntax"
}
