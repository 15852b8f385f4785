// File: operator.go
// Title: halang Operator Table
// Description: The operator table mapping every operator to its symbol and
//              precedence. Precedence lookups in the parser go through
//              Precedence and nowhere else.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial operator table

package token

// Op identifies an operator
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpNot
	OpEq
	OpGt
	OpLt
	OpGtEq
	OpLtEq
	OpAnd
	OpOr

	// OpIllegal is the "no operator" sentinel with precedence 0
	OpIllegal

	opCount
)

// Operator is one row of the operator table
type Operator struct {
	Op         Op
	Name       string
	Symbol     string
	Precedence int
}

var operators = [opCount]Operator{
	{OpAdd, "ADD", "+", 10},
	{OpSub, "SUB", "-", 10},
	{OpMul, "MUL", "*", 11},
	{OpDiv, "DIV", "/", 11},
	{OpMod, "MOD", "%", 12},
	{OpPow, "POW", "**", 13},
	{OpNot, "NOT", "!", 15},
	{OpEq, "EQ", "==", 8},
	{OpGt, "GT", ">", 8},
	{OpLt, "LT", "<", 8},
	{OpGtEq, "GTEQ", ">=", 8},
	{OpLtEq, "LTEQ", "<=", 8},
	{OpAnd, "AND", "&&", 5},
	{OpOr, "OR", "||", 5},
	{OpIllegal, "ILLEGAL_OP", "", 0},
}

var opByKind = map[Kind]Op{
	Add: OpAdd, Sub: OpSub, Mul: OpMul, Div: OpDiv, Mod: OpMod, Pow: OpPow, Not: OpNot,
	Eq: OpEq, Gt: OpGt, Lt: OpLt, GtEq: OpGtEq, LtEq: OpLtEq, And: OpAnd, Or: OpOr,
}

// Precedence returns the binding strength of op. It returns 0 for
// OpIllegal and for any value outside the table.
func Precedence(op Op) int {
	if op < 0 || op >= opCount {
		return 0
	}
	return operators[op].Precedence
}

// ToOperator maps a token kind to its operator, OpIllegal when the kind is
// not an operator
func ToOperator(k Kind) Op {
	if op, ok := opByKind[k]; ok {
		return op
	}
	return OpIllegal
}

// LookupOperator returns the table row for op; ok is false outside the table
func LookupOperator(op Op) (Operator, bool) {
	if op < 0 || op >= opCount {
		return operators[OpIllegal], false
	}
	return operators[op], true
}

// Operators returns a copy of the table without the sentinel row
func Operators() []Operator {
	out := make([]Operator, 0, opCount-1)
	for _, o := range operators[:OpIllegal] {
		out = append(out, o)
	}
	return out
}

// Symbol returns the source spelling of op, "" for OpIllegal
func (op Op) Symbol() string {
	o, _ := LookupOperator(op)
	return o.Symbol
}

// String returns the table name of op, e.g. "ADD"
func (op Op) String() string {
	o, ok := LookupOperator(op)
	if !ok {
		return "UNKNOWN_OP"
	}
	return o.Name
}

// IsUnary reports whether op may appear as a prefix operator
func (op Op) IsUnary() bool {
	return op == OpAdd || op == OpSub || op == OpNot
}
