// File: token.go
// Title: halang Token Definitions
// Description: Token kinds produced by the lexer and consumed by the parser,
//              together with source positions. Operator kinds come first so
//              that they line up with the operator table.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial token model

package token

import (
	"fmt"
	"strconv"
)

// Kind identifies the lexical class of a token
type Kind int

const (
	// Operators, in operator table order
	Add  Kind = iota // +
	Sub              // -
	Mul              // *
	Div              // /
	Mod              // %
	Pow              // **
	Not              // !
	Eq               // ==
	Gt               // >
	Lt               // <
	GtEq             // >=
	LtEq             // <=
	And              // &&
	Or               // ||

	// Reserved for property accessors; the grammar does not use them yet
	Get
	Set
	Getter
	Setter
	Accessor

	Dot       // .
	At        // @
	Comma     // ,
	Semicolon // ;
	Illegal

	// Keywords
	If
	Else
	While
	Break
	Continue

	Assign // =

	Identifier
	String

	LeftParen    // (
	RightParen   // )
	LeftBrace    // {
	RightBrace   // }
	LeftBracket  // [
	RightBracket // ]

	Number
	Var
	Class
	Func
	Return

	EOF

	kindCount
)

var kindNames = [kindCount]string{
	Add: "ADD", Sub: "SUB", Mul: "MUL", Div: "DIV", Mod: "MOD", Pow: "POW", Not: "NOT",
	Eq: "EQ", Gt: "GT", Lt: "LT", GtEq: "GTEQ", LtEq: "LTEQ", And: "AND", Or: "OR",
	Get: "GET", Set: "SET", Getter: "GETTER", Setter: "SETTER", Accessor: "ACCESSOR",
	Dot: "DOT", At: "AT", Comma: "COMMA", Semicolon: "SEMICOLON", Illegal: "ILLEGAL",
	If: "IF", Else: "ELSE", While: "WHILE", Break: "BREAK", Continue: "CONTINUE",
	Assign: "ASSIGN", Identifier: "IDENTIFIER", String: "STRING",
	LeftParen: "LEFT_PAREN", RightParen: "RIGHT_PAREN",
	LeftBrace: "LEFT_BRACE", RightBrace: "RIGHT_BRACE",
	LeftBracket: "LEFT_BRACKET", RightBracket: "RIGHT_BRACKET",
	Number: "NUMBER", Var: "VAR", Class: "CLASS", Func: "FUNC", Return: "RETURN",
	EOF: "EOF",
}

// fixed source text of punctuation and keyword kinds, used in diagnostics
var kindText = map[Kind]string{
	Dot: ".", At: "@", Comma: ",", Semicolon: ";", Assign: "=",
	LeftParen: "(", RightParen: ")", LeftBrace: "{", RightBrace: "}",
	LeftBracket: "[", RightBracket: "]",
	If: "if", Else: "else", While: "while", Break: "break", Continue: "continue",
	Var: "var", Class: "class", Func: "func", Return: "return",
	Get: "get", Set: "set",
}

// String returns the upper-case name of the kind
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Text returns the source spelling of fixed-text kinds, e.g. ")" for
// RightParen, and the kind name for everything else
func (k Kind) Text() string {
	if op := ToOperator(k); op != OpIllegal {
		return op.Symbol()
	}
	if s, ok := kindText[k]; ok {
		return s
	}
	if k == EOF {
		return "end of input"
	}
	return k.String()
}

// IsOperator reports whether the kind denotes an entry of the operator table
func (k Kind) IsOperator() bool {
	return ToOperator(k) != OpIllegal
}

// Position is a location in the source text
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based byte offset
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Token is one lexical token. Literal holds identifier and string text as
// well as the raw spelling of numbers and operators.
type Token struct {
	Kind    Kind
	Literal string

	// Number and IsInt are set for Number tokens
	Number float64
	IsInt  bool

	Pos Position
}

// Operator converts the token to its operator, OpIllegal for non-operators
func (t Token) Operator() Op {
	return ToOperator(t.Kind)
}

// Describe renders the token for diagnostics, e.g. "identifier 'x'"
func (t Token) Describe() string {
	switch t.Kind {
	case Identifier:
		return "identifier '" + t.Literal + "'"
	case Number:
		return "number " + t.Literal
	case String:
		return "string " + strconv.Quote(t.Literal)
	case Illegal:
		return "illegal character '" + t.Literal + "'"
	case EOF:
		return "end of input"
	default:
		return "'" + t.Kind.Text() + "'"
	}
}

// String returns a debug representation like IDENTIFIER(x)
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case Identifier, Number, String, Illegal:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Literal)
	default:
		return t.Kind.String()
	}
}

var keywords = map[string]Kind{
	"var":      Var,
	"if":       If,
	"else":     Else,
	"while":    While,
	"break":    Break,
	"continue": Continue,
	"func":     Func,
	"return":   Return,
	"class":    Class,
	"get":      Get,
	"set":      Set,
}

// Lookup returns the keyword kind for ident, or Identifier
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Identifier
}
