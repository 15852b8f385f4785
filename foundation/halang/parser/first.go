// File: first.go
// Title: Statement FIRST Set
// Description: The set of token kinds a statement can start with. The block
//              loop and the statement dispatcher both rely on this one
//              table.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import "github.com/msto63/halang/foundation/halang/token"

var statementStart = [...]bool{
	token.Identifier: true,
	token.Number:     true,
	token.Var:        true,
	token.LeftParen:  true,
	token.While:      true,
	token.If:         true,
	token.Func:       true,
	token.Semicolon:  true,
	token.Break:      true,
	token.Return:     true,
	token.LeftBrace:  true,
}

// StartsStatement reports whether a statement can begin with kind. Every
// operator token is included so that a stray operator is diagnosed by the
// expression grammar instead of ending the block. break, return and '{' are
// included as well since the statement dispatcher accepts them even though
// the statement grammar does not list them as start tokens.
func StartsStatement(kind token.Kind) bool {
	if kind.IsOperator() {
		return true
	}
	return int(kind) >= 0 && int(kind) < len(statementStart) && statementStart[kind]
}
