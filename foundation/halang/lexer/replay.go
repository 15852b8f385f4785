// File: replay.go
// Title: Token Replay Source
// Description: A token source that replays a fixed token sequence, used to
//              parse pre-tokenized input and to parse the same stream twice.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package lexer

import "github.com/msto63/halang/foundation/halang/token"

// Replay hands out a recorded token sequence
type Replay struct {
	tokens []token.Token
	next   int
}

// NewReplay creates a replay over tokens. The slice is not copied.
func NewReplay(tokens []token.Token) *Replay {
	return &Replay{tokens: tokens}
}

// NextToken returns the next recorded token. After the sequence is used up
// it returns EOF forever, positioned after the last recorded token.
func (r *Replay) NextToken() token.Token {
	if r.next < len(r.tokens) {
		tok := r.tokens[r.next]
		r.next++
		return tok
	}
	end := token.Token{Kind: token.EOF}
	if n := len(r.tokens); n > 0 {
		end.Pos = r.tokens[n-1].Pos
	}
	return end
}

// Reset rewinds the replay to the first token
func (r *Replay) Reset() {
	r.next = 0
}

// Len returns the number of recorded tokens
func (r *Replay) Len() int {
	return len(r.tokens)
}
