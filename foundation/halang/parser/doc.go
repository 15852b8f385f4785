// Package parser implements the halang recursive descent parser.
//
// Package: parser
// Title: halang Recursive Descent Parser
// Description: Turns a token stream into an AST rooted at a block. Binary
//              expressions are grouped by precedence climbing over the
//              operator table of package token. Syntax errors are recorded
//              as diagnostics and never abort the parse.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Grammar:
//
//	chunk      ::= block
//	block      ::= { statement }
//	statement  ::= ';' | varStmt | whileStmt | 'break' | ifStmt | funcDef
//	             | 'return' | '{' block '}' | expression
//	varStmt    ::= 'var' ID '=' statement (',' ID '=' statement)*
//	ifStmt     ::= 'if' '(' binaryExpr ')' '{' block '}' [ 'else' ( ifStmt | '{' block '}' ) ]
//	whileStmt  ::= 'while' '(' binaryExpr ')' '{' block '}'
//	funcDef    ::= 'func' ID '(' ID (',' ID)* ')' '{' block '}'
//	expression ::= ID '=' expression | ID call [ OP ... ] | binaryExpr
//	binaryExpr ::= unaryExpr ( OP unaryExpr )*
//	unaryExpr  ::= ('+'|'-'|'!') unaryExpr | NUMBER | ID [ call ] | '(' expression ')' [ call ]
//	call       ::= '(' [ expression (',' expression)* ] ')' { call }
//
// A block ends at the first token no statement can start with (see
// StartsStatement). Tokens left over after the outermost block are reported
// and skipped, and parsing resumes with the next statement.
//
// Diagnostics:
//
// Errors carry one of the codes UNEXPECTED_TOKEN, MISSING_IDENTIFIER,
// MALFORMED_PARAMETER_LIST, NESTING_TOO_DEEP or ILLEGAL_CHARACTER. A
// missing punctuation token is reported and parsing continues as if it had
// been present. A construct that cannot be built is dropped from its block.
// Result.OK is false whenever at least one error was recorded; the root
// then holds the statements that could be recovered. A return statement
// produces a warning and no node.
//
// Usage:
//
//	result := parser.Parse("var x = 1 + 2 * 3;", parser.Options{})
//	defer result.Close()
//	if !result.OK {
//	    for _, msg := range result.Messages {
//	        fmt.Println(msg)
//	    }
//	}
//	fmt.Println(result.Root)
//
// Token streams other than source text, such as a recorded token slice,
// are parsed with NewSession(source, opts).Parse().
package parser
