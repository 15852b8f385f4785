// File: lexer.go
// Title: halang Lexical Analyzer
// Description: Converts halang source text into tokens on demand. The parser
//              pulls one token at a time through NextToken; Tokenize drains
//              the whole input for tooling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial lexer implementation

package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	mdwerror "github.com/msto63/halang/foundation/core/error"
	"github.com/msto63/halang/foundation/halang/token"
)

const eof = -1

// Lexer performs lexical analysis of halang input
type Lexer struct {
	input   string
	pos     int  // offset of ch
	readPos int  // offset after ch
	ch      rune // current character, eof at end of input
	line    int
	column  int
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

// NextToken returns the next token. Once the input is exhausted every call
// returns an EOF token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	pos := token.Position{Line: l.line, Column: l.column, Offset: l.pos}
	tok := token.Token{Pos: pos}

	switch l.ch {
	case eof:
		tok.Kind = token.EOF
		return tok
	case '+':
		tok.Kind = token.Add
	case '-':
		tok.Kind = token.Sub
	case '*':
		tok.Kind = token.Mul
		if l.peekChar() == '*' {
			l.readChar()
			tok.Kind = token.Pow
		}
	case '/':
		tok.Kind = token.Div
	case '%':
		tok.Kind = token.Mod
	case '!':
		tok.Kind = token.Not
	case '=':
		tok.Kind = token.Assign
		if l.peekChar() == '=' {
			l.readChar()
			tok.Kind = token.Eq
		}
	case '>':
		tok.Kind = token.Gt
		if l.peekChar() == '=' {
			l.readChar()
			tok.Kind = token.GtEq
		}
	case '<':
		tok.Kind = token.Lt
		if l.peekChar() == '=' {
			l.readChar()
			tok.Kind = token.LtEq
		}
	case '&':
		tok.Kind = token.Illegal
		if l.peekChar() == '&' {
			l.readChar()
			tok.Kind = token.And
		}
	case '|':
		tok.Kind = token.Illegal
		if l.peekChar() == '|' {
			l.readChar()
			tok.Kind = token.Or
		}
	case '.':
		tok.Kind = token.Dot
	case '@':
		tok.Kind = token.At
	case ',':
		tok.Kind = token.Comma
	case ';':
		tok.Kind = token.Semicolon
	case '(':
		tok.Kind = token.LeftParen
	case ')':
		tok.Kind = token.RightParen
	case '{':
		tok.Kind = token.LeftBrace
	case '}':
		tok.Kind = token.RightBrace
	case '[':
		tok.Kind = token.LeftBracket
	case ']':
		tok.Kind = token.RightBracket
	case '"':
		return l.readString(tok)
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Kind = token.Lookup(tok.Literal)
			return tok
		}
		if isDigit(l.ch) {
			return l.readNumber(tok)
		}
		tok.Kind = token.Illegal
	}

	l.readChar()
	tok.Literal = l.input[pos.Offset:l.pos]
	return tok
}

// Tokenize returns all tokens up to and including EOF. Illegal tokens are
// kept in the result and reported together in the returned error.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	var errs []error

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Kind == token.Illegal {
			errs = append(errs, mdwerror.New("illegal character '"+tok.Literal+"'").
				WithCode(mdwerror.CodeIllegalCharacter).
				WithDetail("line", tok.Pos.Line).
				WithDetail("column", tok.Pos.Column))
		}
		if tok.Kind == token.EOF {
			break
		}
	}

	if err := mdwerror.Join("lexical errors", errs...); err != nil {
		return tokens, err.WithOperation("lexer.Tokenize")
	}
	return tokens, nil
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	l.pos = l.readPos
	if l.readPos >= len(l.input) {
		l.ch = eof
		l.column++
		return
	}

	r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.readPos += size
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != eof {
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads 12, 1.5 and 2e10 style literals. Numbers without a
// fraction or exponent are flagged as integral.
func (l *Lexer) readNumber(tok token.Token) token.Token {
	start := l.pos
	integral := true

	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		integral = false
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || next == '+' || next == '-' {
			save := *l
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			if isDigit(l.ch) {
				integral = false
				for isDigit(l.ch) {
					l.readChar()
				}
			} else {
				*l = save
			}
		}
	}

	tok.Literal = l.input[start:l.pos]
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		// only overflow can fail here
		tok.Kind = token.Illegal
		return tok
	}
	tok.Kind = token.Number
	tok.Number = value
	tok.IsInt = integral
	return tok
}

// readString reads a double-quoted literal with \n, \t, \r, \" and \\
// escapes. An unterminated string becomes an Illegal token.
func (l *Lexer) readString(tok token.Token) token.Token {
	var b strings.Builder
	l.readChar() // opening quote

	for l.ch != '"' {
		if l.ch == eof || l.ch == '\n' {
			tok.Kind = token.Illegal
			tok.Literal = `"` + b.String()
			return tok
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case 'r':
				b.WriteRune('\r')
			case eof:
				continue
			default:
				b.WriteRune(l.ch)
			}
			l.readChar()
			continue
		}
		b.WriteRune(l.ch)
		l.readChar()
	}

	l.readChar() // closing quote
	tok.Kind = token.String
	tok.Literal = b.String()
	return tok
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
