// File: nodes.go
// Title: halang AST Node Definitions
// Description: The closed set of syntax tree nodes produced by the parser.
//              Child links are plain pointers; the Arena that allocated a
//              node is its owner and assigns its id.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/halang/foundation/core/error"
	"github.com/msto63/halang/foundation/halang/token"
	mdwstringx "github.com/msto63/halang/foundation/utils/stringx"
)

// NodeID is the stable index of a node inside its arena. The zero value
// means "not registered".
type NodeID int32

// NodeKind identifies the concrete node type
type NodeKind int

const (
	KindBlock NodeKind = iota
	KindVarStmt
	KindAssignment
	KindIdentifier
	KindNumber
	KindUnaryExpr
	KindBinaryExpr
	KindIfStmt
	KindWhileStmt
	KindBreakStmt
	KindFuncDef
	KindFuncDefParams
	KindFuncCall
	KindFuncCallParams

	kindCount
)

var kindNames = [kindCount]string{
	"Block", "VarStmt", "Assignment", "Identifier", "Number", "UnaryExpr",
	"BinaryExpr", "IfStmt", "WhileStmt", "BreakStmt", "FuncDef",
	"FuncDefParams", "FuncCall", "FuncCallParams",
}

// String returns the type name of the kind, e.g. "BinaryExpr"
func (k NodeKind) String() string {
	if k < 0 || k >= kindCount {
		return "Unknown"
	}
	return kindNames[k]
}

// Node is implemented by every syntax tree node. The set of implementations
// is closed: only this package can provide the unexported methods.
type Node interface {
	// ID returns the arena index, 0 for nodes that were never allocated
	ID() NodeID

	Kind() NodeKind

	// Position returns the position of the token that starts the node
	Position() token.Position

	// String returns a compact single-line form, e.g. BinaryExpr(+, Number(1), Identifier(x))
	String() string

	// Accept dispatches to the Visitor method for the concrete type
	Accept(v Visitor) interface{}

	// Validate checks the node's own fields, not its children
	Validate() error

	// Children returns the direct child nodes in source order
	Children() []Node

	header() *nodeHeader
}

type nodeHeader struct {
	id    NodeID
	arena *Arena
	Pos   token.Position
}

func (h *nodeHeader) ID() NodeID               { return h.id }
func (h *nodeHeader) Position() token.Position { return h.Pos }
func (h *nodeHeader) header() *nodeHeader      { return h }

// Block is an ordered sequence of statements
type Block struct {
	nodeHeader
	Statements []Node
}

// VarStmt declares one or more variables: var a = 1, b = 2
type VarStmt struct {
	nodeHeader
	Assignments []*Assignment
}

// Assignment binds the value of an expression to a name
type Assignment struct {
	nodeHeader
	Target *Identifier
	Value  Node
}

// Identifier is a reference to a name
type Identifier struct {
	nodeHeader
	Name string
}

// Number is a numeric literal. IsInt is set when the literal had neither a
// fraction nor an exponent.
type Number struct {
	nodeHeader
	Value float64
	IsInt bool
}

// UnaryExpr is a prefix +, - or ! applied to an operand
type UnaryExpr struct {
	nodeHeader
	Op      token.Op
	Operand Node
}

// BinaryExpr is an infix operation
type BinaryExpr struct {
	nodeHeader
	Op    token.Op
	Left  Node
	Right Node
}

// IfStmt is a conditional. Else is nil, a *Block, or an *IfStmt for
// else-if chains.
type IfStmt struct {
	nodeHeader
	Condition Node
	Then      *Block
	Else      Node
}

// WhileStmt is a pre-checked loop
type WhileStmt struct {
	nodeHeader
	Condition Node
	Body      *Block
}

// BreakStmt leaves the innermost loop
type BreakStmt struct {
	nodeHeader
}

// FuncDef defines a named function
type FuncDef struct {
	nodeHeader
	Name   string
	Params *FuncDefParams
	Body   *Block
}

// FuncDefParams is the parameter name list of a function definition
type FuncDefParams struct {
	nodeHeader
	Names []string
}

// FuncCall applies a callee to arguments. The callee is any expression,
// including another call: f(1)(2).
type FuncCall struct {
	nodeHeader
	Callee Node
	Args   *FuncCallParams
}

// FuncCallParams is the argument list of a call
type FuncCallParams struct {
	nodeHeader
	Args []Node
}

// Kind implementations

func (*Block) Kind() NodeKind          { return KindBlock }
func (*VarStmt) Kind() NodeKind        { return KindVarStmt }
func (*Assignment) Kind() NodeKind     { return KindAssignment }
func (*Identifier) Kind() NodeKind     { return KindIdentifier }
func (*Number) Kind() NodeKind         { return KindNumber }
func (*UnaryExpr) Kind() NodeKind      { return KindUnaryExpr }
func (*BinaryExpr) Kind() NodeKind     { return KindBinaryExpr }
func (*IfStmt) Kind() NodeKind         { return KindIfStmt }
func (*WhileStmt) Kind() NodeKind      { return KindWhileStmt }
func (*BreakStmt) Kind() NodeKind      { return KindBreakStmt }
func (*FuncDef) Kind() NodeKind        { return KindFuncDef }
func (*FuncDefParams) Kind() NodeKind  { return KindFuncDefParams }
func (*FuncCall) Kind() NodeKind       { return KindFuncCall }
func (*FuncCallParams) Kind() NodeKind { return KindFuncCallParams }

// Accept implementations

func (n *Block) Accept(v Visitor) interface{}          { return v.VisitBlock(n) }
func (n *VarStmt) Accept(v Visitor) interface{}        { return v.VisitVarStmt(n) }
func (n *Assignment) Accept(v Visitor) interface{}     { return v.VisitAssignment(n) }
func (n *Identifier) Accept(v Visitor) interface{}     { return v.VisitIdentifier(n) }
func (n *Number) Accept(v Visitor) interface{}         { return v.VisitNumber(n) }
func (n *UnaryExpr) Accept(v Visitor) interface{}      { return v.VisitUnaryExpr(n) }
func (n *BinaryExpr) Accept(v Visitor) interface{}     { return v.VisitBinaryExpr(n) }
func (n *IfStmt) Accept(v Visitor) interface{}         { return v.VisitIfStmt(n) }
func (n *WhileStmt) Accept(v Visitor) interface{}      { return v.VisitWhileStmt(n) }
func (n *BreakStmt) Accept(v Visitor) interface{}      { return v.VisitBreakStmt(n) }
func (n *FuncDef) Accept(v Visitor) interface{}        { return v.VisitFuncDef(n) }
func (n *FuncDefParams) Accept(v Visitor) interface{}  { return v.VisitFuncDefParams(n) }
func (n *FuncCall) Accept(v Visitor) interface{}       { return v.VisitFuncCall(n) }
func (n *FuncCallParams) Accept(v Visitor) interface{} { return v.VisitFuncCallParams(n) }

// Children implementations

func (n *Block) Children() []Node {
	return append([]Node(nil), n.Statements...)
}

func (n *VarStmt) Children() []Node {
	out := make([]Node, 0, len(n.Assignments))
	for _, a := range n.Assignments {
		out = appendNode(out, a)
	}
	return out
}

func (n *Assignment) Children() []Node {
	return appendNode(appendNode(nil, n.Target), n.Value)
}

func (*Identifier) Children() []Node { return nil }
func (*Number) Children() []Node     { return nil }
func (*BreakStmt) Children() []Node  { return nil }

func (n *UnaryExpr) Children() []Node {
	return appendNode(nil, n.Operand)
}

func (n *BinaryExpr) Children() []Node {
	return appendNode(appendNode(nil, n.Left), n.Right)
}

func (n *IfStmt) Children() []Node {
	return appendNode(appendNode(appendNode(nil, n.Condition), n.Then), n.Else)
}

func (n *WhileStmt) Children() []Node {
	return appendNode(appendNode(nil, n.Condition), n.Body)
}

func (n *FuncDef) Children() []Node {
	return appendNode(appendNode(nil, n.Params), n.Body)
}

func (*FuncDefParams) Children() []Node { return nil }

func (n *FuncCall) Children() []Node {
	return appendNode(appendNode(nil, n.Callee), n.Args)
}

func (n *FuncCallParams) Children() []Node {
	return append([]Node(nil), n.Args...)
}

// appendNode appends n unless it is nil or a typed nil pointer
func appendNode(list []Node, n Node) []Node {
	if isNil(n) {
		return list
	}
	return append(list, n)
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch x := n.(type) {
	case *Block:
		return x == nil
	case *Identifier:
		return x == nil
	case *IfStmt:
		return x == nil
	case *Assignment:
		return x == nil
	case *FuncDefParams:
		return x == nil
	case *FuncCallParams:
		return x == nil
	}
	return false
}

// String implementations

func (n *Block) String() string {
	return "Block" + listString(n.Statements)
}

func (n *VarStmt) String() string {
	nodes := make([]Node, len(n.Assignments))
	for i, a := range n.Assignments {
		nodes[i] = a
	}
	return "VarStmt" + listString(nodes)
}

func (n *Assignment) String() string {
	return fmt.Sprintf("Assignment(%s, %s)", nodeString(n.Target), nodeString(n.Value))
}

func (n *Identifier) String() string {
	return "Identifier(" + n.Name + ")"
}

func (n *Number) String() string {
	return "Number(" + FormatNumber(n.Value, n.IsInt) + ")"
}

func (n *UnaryExpr) String() string {
	return fmt.Sprintf("UnaryExpr(%s, %s)", n.Op.Symbol(), nodeString(n.Operand))
}

func (n *BinaryExpr) String() string {
	return fmt.Sprintf("BinaryExpr(%s, %s, %s)", n.Op.Symbol(), nodeString(n.Left), nodeString(n.Right))
}

func (n *IfStmt) String() string {
	if isNil(n.Else) {
		return fmt.Sprintf("IfStmt(%s, %s)", nodeString(n.Condition), nodeString(n.Then))
	}
	return fmt.Sprintf("IfStmt(%s, %s, %s)", nodeString(n.Condition), nodeString(n.Then), nodeString(n.Else))
}

func (n *WhileStmt) String() string {
	return fmt.Sprintf("WhileStmt(%s, %s)", nodeString(n.Condition), nodeString(n.Body))
}

func (*BreakStmt) String() string {
	return "BreakStmt"
}

func (n *FuncDef) String() string {
	return fmt.Sprintf("FuncDef(%s, %s, %s)", n.Name, nodeString(n.Params), nodeString(n.Body))
}

func (n *FuncDefParams) String() string {
	return "FuncDefParams[" + strings.Join(n.Names, ", ") + "]"
}

func (n *FuncCall) String() string {
	return fmt.Sprintf("FuncCall(%s, %s)", nodeString(n.Callee), nodeString(n.Args))
}

func (n *FuncCallParams) String() string {
	return listString(n.Args)
}

func nodeString(n Node) string {
	if isNil(n) {
		return "<nil>"
	}
	return n.String()
}

func listString(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = nodeString(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatNumber renders a number literal, integral values without a fraction
func FormatNumber(v float64, isInt bool) string {
	if isInt {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Validate implementations

func (n *Block) Validate() error {
	for i, s := range n.Statements {
		if isNil(s) {
			return invalid(n, fmt.Sprintf("statement %d is nil", i))
		}
	}
	return nil
}

func (n *VarStmt) Validate() error {
	if len(n.Assignments) == 0 {
		return invalid(n, "declaration without assignments")
	}
	for i, a := range n.Assignments {
		if a == nil {
			return invalid(n, fmt.Sprintf("assignment %d is nil", i))
		}
	}
	return nil
}

func (n *Assignment) Validate() error {
	if n.Target == nil {
		return invalid(n, "missing target")
	}
	if isNil(n.Value) {
		return invalid(n, "missing value")
	}
	return nil
}

func (n *Identifier) Validate() error {
	if mdwstringx.IsBlank(n.Name) {
		return invalid(n, "empty name")
	}
	return nil
}

func (*Number) Validate() error    { return nil }
func (*BreakStmt) Validate() error { return nil }

func (n *UnaryExpr) Validate() error {
	if !n.Op.IsUnary() {
		return invalid(n, "'"+n.Op.String()+"' is not a prefix operator")
	}
	if isNil(n.Operand) {
		return invalid(n, "missing operand")
	}
	return nil
}

func (n *BinaryExpr) Validate() error {
	if token.Precedence(n.Op) == 0 {
		return invalid(n, "invalid operator")
	}
	if isNil(n.Left) || isNil(n.Right) {
		return invalid(n, "missing operand")
	}
	return nil
}

func (n *IfStmt) Validate() error {
	if isNil(n.Condition) {
		return invalid(n, "missing condition")
	}
	if n.Then == nil {
		return invalid(n, "missing then block")
	}
	switch n.Else.(type) {
	case nil, *Block, *IfStmt:
		return nil
	default:
		return invalid(n, "else branch must be a block or an if statement")
	}
}

func (n *WhileStmt) Validate() error {
	if isNil(n.Condition) {
		return invalid(n, "missing condition")
	}
	if n.Body == nil {
		return invalid(n, "missing body")
	}
	return nil
}

func (n *FuncDef) Validate() error {
	if mdwstringx.IsBlank(n.Name) {
		return invalid(n, "missing function name")
	}
	if n.Params == nil || n.Body == nil {
		return invalid(n, "missing parameters or body")
	}
	return nil
}

func (n *FuncDefParams) Validate() error {
	if len(n.Names) == 0 {
		return invalid(n, "empty parameter list")
	}
	for i, name := range n.Names {
		if mdwstringx.IsBlank(name) {
			return invalid(n, fmt.Sprintf("parameter %d has no name", i))
		}
	}
	return nil
}

func (n *FuncCall) Validate() error {
	if isNil(n.Callee) {
		return invalid(n, "missing callee")
	}
	if n.Args == nil {
		return invalid(n, "missing argument list")
	}
	return nil
}

func (n *FuncCallParams) Validate() error {
	for i, a := range n.Args {
		if isNil(a) {
			return invalid(n, fmt.Sprintf("argument %d is nil", i))
		}
	}
	return nil
}

func invalid(n Node, msg string) error {
	return mdwerror.New(n.Kind().String()+": "+msg).
		WithCode(mdwerror.CodeInvalidNode).
		WithDetail("position", n.Position().String())
}
