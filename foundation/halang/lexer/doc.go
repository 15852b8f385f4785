// Package lexer turns halang source text into tokens.
//
// Package: lexer
// Title: halang Lexer
// Description: A pull-based scanner: the parser asks for one token at a
//              time and the lexer never buffers beyond the current
//              character. Replay offers the same NextToken contract over a
//              recorded token slice.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Recognized input:
// - Operators: + - * / % ** ! == > < >= <= && ||
// - Punctuation: = , ; . @ ( ) { } [ ]
// - Keywords: var if else while break continue func return class get set
// - Numbers (12, 1.5, 2e10), double-quoted strings, identifiers
// - Line comments starting with //
package lexer
