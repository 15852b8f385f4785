// File: errors.go
// Title: Parser Diagnostics
// Description: ParseError records one diagnostic with its position and the
//              offending token. Diagnostics never interrupt parsing; they
//              are collected by the session and surfaced through Result.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import (
	"fmt"

	mdwerror "github.com/msto63/halang/foundation/core/error"
	"github.com/msto63/halang/foundation/halang/token"
)

// ParseError represents a parsing diagnostic with position information
type ParseError struct {
	Code    mdwerror.Code
	Message string
	Pos     token.Position
	Token   token.Token
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", pe.Pos, pe.Message)
}

// ToError converts the diagnostic into a coded error
func (pe *ParseError) ToError() *mdwerror.Error {
	return mdwerror.New(pe.Message).
		WithCode(pe.Code).
		WithOperation("parser.Parse").
		WithDetail("line", pe.Pos.Line).
		WithDetail("column", pe.Pos.Column).
		WithDetail("token", pe.Token.Describe())
}

// sink collects errors and warnings of one session
type sink struct {
	errors     []*ParseError
	warnings   []*ParseError
	suppressed int
}

func (d *sink) last() *ParseError {
	if len(d.errors) == 0 {
		return nil
	}
	return d.errors[len(d.errors)-1]
}

func (d *sink) messages() []string {
	out := make([]string, len(d.errors))
	for i, e := range d.errors {
		out[i] = e.Error()
	}
	return out
}
