// ============================================================================
// halang - Scripting Language Front End
// ============================================================================
//
// Package:     explorer
// Description: Message types for async operations in the AST explorer
// Author:      Mike Stoffels with Claude
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package explorer

import (
	"time"

	"github.com/msto63/halang/foundation/halang/parser"
	"github.com/msto63/halang/foundation/halang/token"
)

// View selects what the main panel shows
type View int

const (
	ViewTree View = iota
	ViewTokens
	ViewDiagnostics
	ViewSource
)

// String returns the tab title of the view
func (v View) String() string {
	switch v {
	case ViewTree:
		return "Tree"
	case ViewTokens:
		return "Tokens"
	case ViewDiagnostics:
		return "Diagnostics"
	case ViewSource:
		return "Source"
	default:
		return "Unknown"
	}
}

// Message types for tea.Cmd async operations

// parsedMsg is sent when the source was read, tokenized and parsed
type parsedMsg struct {
	source  string
	modTime time.Time
	result  *parser.Result
	tokens  []token.Token
	lexErr  error
	err     error
}

// fileChangedMsg is sent when the watched file has a new modification time
type fileChangedMsg struct {
	modTime time.Time
}

// tickMsg is used for periodic file checks
type tickMsg time.Time
