// Package token defines the lexical vocabulary of halang.
//
// Package: token
// Title: halang Tokens and Operators
// Description: Token kinds, source positions and the operator table. The
//              table is the single source of truth for operator precedence:
//              both the token model and the parser's precedence climbing
//              consult Precedence.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Operator table:
//   ADD  +   10    EQ   ==  8
//   SUB  -   10    GT   >   8
//   MUL  *   11    LT   <   8
//   DIV  /   11    GTEQ >=  8
//   MOD  %   12    LTEQ <=  8
//   POW  **  13    AND  &&  5
//   NOT  !   15    OR   ||  5
//
// Precedence 0 is reserved for OpIllegal, the "no operator" sentinel.
package token
