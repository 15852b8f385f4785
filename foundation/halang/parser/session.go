// File: session.go
// Title: halang Parse Session
// Description: A Session owns the one-token lookahead, the node arena and the
//              diagnostic sink of a single parse. Tokens are pulled from a
//              TokenSource on demand.
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
	"slices"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/halang/foundation/core/error"
	mdwlog "github.com/msto63/halang/foundation/core/log"
	"github.com/msto63/halang/foundation/halang/ast"
	"github.com/msto63/halang/foundation/halang/lexer"
	"github.com/msto63/halang/foundation/halang/token"
)

// TokenSource produces tokens one at a time and returns EOF once the input
// is exhausted. *lexer.Lexer and *lexer.Replay implement it.
type TokenSource interface {
	NextToken() token.Token
}

// Session parses one token stream. It is not safe for concurrent use.
type Session struct {
	id     string
	source TokenSource
	opts   Options
	logger *mdwlog.Logger

	current  token.Token // lookahead
	previous token.Token
	consumed int

	arena  *ast.Arena
	diag   sink
	depth  int
	halted bool

	result *Result
}

// Result is the outcome of a parse. Root is non-nil even when OK is false;
// it then holds every statement that could be recovered.
type Result struct {
	Root        *ast.Block
	OK          bool
	Messages    []string
	Diagnostics []*ParseError
	Warnings    []*ParseError
	Arena       *ast.Arena
	SessionID   string

	// Suppressed counts diagnostics dropped after the session halted
	Suppressed int
}

// Err folds the diagnostics into a single coded error, nil when OK
func (r *Result) Err() error {
	if len(r.Diagnostics) == 0 {
		return nil
	}
	errs := make([]error, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		errs[i] = d.ToError()
	}
	return mdwerror.Join(fmt.Sprintf("%d syntax error(s)", len(errs)), errs...).
		WithOperation("parser.Parse")
}

// Incomplete reports whether every error was raised at end of input, which
// means more source text could still complete the parse
func (r *Result) Incomplete() bool {
	if r.OK {
		return false
	}
	for _, d := range r.Diagnostics {
		if d.Token.Kind != token.EOF {
			return false
		}
	}
	return true
}

// Close releases the arena. The tree must not be used afterwards.
func (r *Result) Close() {
	if r.Arena != nil {
		r.Arena.Release()
	}
}

// NewSession creates a session reading from source and primes the
// lookahead with the first token
func NewSession(source TokenSource, opts Options) *Session {
	opts = opts.normalize()
	id := uuid.New().String()

	s := &Session{
		id:     id,
		source: source,
		opts:   opts,
		logger: opts.Logger.WithSession(id).WithField("component", "halang-parser"),
		arena:  ast.NewArena(64),
	}
	s.current = source.NextToken()
	return s
}

// Parse parses source text with the reference lexer
func Parse(input string, opts Options) *Result {
	return NewSession(lexer.New(input), opts).Parse()
}

// ID returns the session id used in log output
func (s *Session) ID() string {
	return s.id
}

// Parse runs the chunk grammar over the whole token stream. Calling Parse
// again returns the first result.
func (s *Session) Parse() *Result {
	if s.result != nil {
		return s.result
	}

	timer := s.logger.StartTimer("parse")
	s.logger.Debug("Starting halang parsing", mdwlog.Fields{
		"first_token": s.current.String(),
	})

	root := ast.Alloc(s.arena, s.current.Pos, &ast.Block{})
	for {
		s.parseStatements(root)
		if s.current.Kind == token.EOF {
			break
		}
		// the chunk stopped on a token no statement starts with
		s.unexpected("unexpected %s", s.current.Describe())
		s.advance()
	}

	s.result = &Result{
		Root:        root,
		OK:          len(s.diag.errors) == 0,
		Messages:    s.diag.messages(),
		Diagnostics: s.diag.errors,
		Warnings:    s.diag.warnings,
		Arena:       s.arena,
		SessionID:   s.id,
		Suppressed:  s.diag.suppressed,
	}

	timer.WithField("nodes", s.arena.Len()).WithField("statements", len(root.Statements))
	if !s.result.OK {
		timer.StopWithError(s.result.Err())
		return s.result
	}
	timer.Stop()
	return s.result
}

// Close releases the session arena
func (s *Session) Close() {
	s.arena.Release()
}

// Token handling

func (s *Session) advance() {
	s.previous = s.current
	s.consumed++
	if s.halted {
		s.current = token.Token{Kind: token.EOF, Pos: s.previous.Pos}
		return
	}
	s.current = s.source.NextToken()
}

func (s *Session) at(kind token.Kind) bool {
	return s.current.Kind == kind
}

// expect consumes the lookahead. A kind mismatch is recorded but does not
// stop parsing; the mismatching token is consumed all the same.
func (s *Session) expect(kind token.Kind) bool {
	ok := s.at(kind)
	if !ok {
		s.unexpected("expected '%s', found %s", kind.Text(), s.current.Describe())
	}
	s.advance()
	return ok
}

// expectClosing is expect for a closing delimiter. On a mismatch it skips
// ahead to kind or to one of the stop kinds; a kind found there is consumed.
func (s *Session) expectClosing(kind token.Kind, stop ...token.Kind) bool {
	if s.at(kind) {
		s.advance()
		return true
	}
	s.unexpected("expected '%s', found %s", kind.Text(), s.current.Describe())
	for !s.at(kind) && !s.at(token.EOF) && !slices.Contains(stop, s.current.Kind) {
		s.advance()
	}
	if s.at(kind) {
		s.advance()
	}
	return false
}

// Diagnostics

// report records an error at the lookahead and returns it
func (s *Session) report(code mdwerror.Code, format string, args ...interface{}) *ParseError {
	return s.reportAt(s.current, code, format, args...)
}

// reportAt records an error at tok. An error at the same position as the
// previous one is folded into it.
func (s *Session) reportAt(tok token.Token, code mdwerror.Code, format string, args ...interface{}) *ParseError {
	pe := &ParseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Pos:     tok.Pos,
		Token:   tok,
	}

	if s.halted {
		s.diag.suppressed++
		return pe
	}
	if last := s.diag.last(); last != nil && last.Pos == pe.Pos {
		return last
	}

	s.diag.errors = append(s.diag.errors, pe)
	s.logger.Debug("Syntax error", mdwlog.Fields{
		"code":     string(code),
		"position": pe.Pos.String(),
		"message":  pe.Message,
	})

	if s.opts.MaxErrors > 0 && len(s.diag.errors) >= s.opts.MaxErrors {
		s.halt("error limit reached")
	}
	return pe
}

func (s *Session) unexpected(format string, args ...interface{}) *ParseError {
	code := mdwerror.CodeUnexpectedToken
	if s.at(token.Illegal) {
		code = mdwerror.CodeIllegalCharacter
	}
	return s.report(code, format, args...)
}

func (s *Session) warn(format string, args ...interface{}) {
	pe := &ParseError{
		Code:    mdwerror.CodeSyntax,
		Message: fmt.Sprintf(format, args...),
		Pos:     s.previous.Pos,
		Token:   s.previous,
	}
	s.diag.warnings = append(s.diag.warnings, pe)
	s.logger.Debug("Syntax warning", mdwlog.Fields{
		"position": pe.Pos.String(),
		"message":  pe.Message,
	})
}

// halt makes the rest of the stream read as end of input
func (s *Session) halt(reason string) {
	if s.halted {
		return
	}
	s.halted = true
	s.current = token.Token{Kind: token.EOF, Pos: s.current.Pos}
	s.logger.Warn("Parsing stopped early", mdwlog.Fields{
		"reason": reason,
		"errors": len(s.diag.errors),
	})
}

// enter guards recursion depth; every successful enter needs a leave
func (s *Session) enter() error {
	if s.depth >= s.opts.MaxDepth {
		pe := s.report(mdwerror.CodeNestingTooDeep, "nesting exceeds %d levels", s.opts.MaxDepth)
		s.halt("nesting too deep")
		return pe
	}
	s.depth++
	return nil
}

func (s *Session) leave() {
	s.depth--
}
