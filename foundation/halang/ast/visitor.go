// File: visitor.go
// Title: halang AST Visitor Pattern Implementation
// Description: The Visitor interface with one method per node kind, generic
//              traversal helpers and the stock visitors: tree dump,
//              validation and collection.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"sort"
	"strings"
)

// Visitor has one method per concrete node kind
type Visitor interface {
	VisitBlock(n *Block) interface{}
	VisitVarStmt(n *VarStmt) interface{}
	VisitAssignment(n *Assignment) interface{}
	VisitIdentifier(n *Identifier) interface{}
	VisitNumber(n *Number) interface{}
	VisitUnaryExpr(n *UnaryExpr) interface{}
	VisitBinaryExpr(n *BinaryExpr) interface{}
	VisitIfStmt(n *IfStmt) interface{}
	VisitWhileStmt(n *WhileStmt) interface{}
	VisitBreakStmt(n *BreakStmt) interface{}
	VisitFuncDef(n *FuncDef) interface{}
	VisitFuncDefParams(n *FuncDefParams) interface{}
	VisitFuncCall(n *FuncCall) interface{}
	VisitFuncCallParams(n *FuncCallParams) interface{}
}

// BaseVisitor implements every method as a no-op. Embed it to override
// only the kinds of interest and drive traversal with Walk.
type BaseVisitor struct{}

func (BaseVisitor) VisitBlock(*Block) interface{}                   { return nil }
func (BaseVisitor) VisitVarStmt(*VarStmt) interface{}               { return nil }
func (BaseVisitor) VisitAssignment(*Assignment) interface{}         { return nil }
func (BaseVisitor) VisitIdentifier(*Identifier) interface{}         { return nil }
func (BaseVisitor) VisitNumber(*Number) interface{}                 { return nil }
func (BaseVisitor) VisitUnaryExpr(*UnaryExpr) interface{}           { return nil }
func (BaseVisitor) VisitBinaryExpr(*BinaryExpr) interface{}         { return nil }
func (BaseVisitor) VisitIfStmt(*IfStmt) interface{}                 { return nil }
func (BaseVisitor) VisitWhileStmt(*WhileStmt) interface{}           { return nil }
func (BaseVisitor) VisitBreakStmt(*BreakStmt) interface{}           { return nil }
func (BaseVisitor) VisitFuncDef(*FuncDef) interface{}               { return nil }
func (BaseVisitor) VisitFuncDefParams(*FuncDefParams) interface{}   { return nil }
func (BaseVisitor) VisitFuncCall(*FuncCall) interface{}             { return nil }
func (BaseVisitor) VisitFuncCallParams(*FuncCallParams) interface{} { return nil }

// Inspect traverses the tree rooted at n in depth-first pre-order. If fn
// returns false the children of that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if isNil(n) || !fn(n) {
		return
	}
	for _, child := range n.Children() {
		Inspect(child, fn)
	}
}

// Walk calls Accept(v) on every node of the tree in pre-order
func Walk(v Visitor, n Node) {
	Inspect(n, func(node Node) bool {
		node.Accept(v)
		return true
	})
}

// TreeVisitor renders an indented, one node per line dump of a tree
type TreeVisitor struct {
	buffer        strings.Builder
	indent        int
	label         string
	ShowPositions bool
}

// NewTreeVisitor creates a new tree visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the dump built so far
func (tv *TreeVisitor) String() string {
	return tv.buffer.String()
}

// Reset clears the internal buffer
func (tv *TreeVisitor) Reset() {
	tv.buffer.Reset()
	tv.indent = 0
	tv.label = ""
}

func (tv *TreeVisitor) write(n Node, detail string) {
	tv.buffer.WriteString(strings.Repeat("  ", tv.indent))
	if tv.label != "" {
		tv.buffer.WriteString(tv.label + ": ")
		tv.label = ""
	}
	tv.buffer.WriteString(n.Kind().String())
	if detail != "" {
		tv.buffer.WriteString(" " + detail)
	}
	if tv.ShowPositions && n.Position().IsValid() {
		tv.buffer.WriteString(" @" + n.Position().String())
	}
	tv.buffer.WriteString("\n")
}

func (tv *TreeVisitor) child(label string, n Node) {
	if isNil(n) {
		return
	}
	tv.indent++
	tv.label = label
	n.Accept(tv)
	tv.indent--
}

func (tv *TreeVisitor) VisitBlock(n *Block) interface{} {
	tv.write(n, fmt.Sprintf("(%d)", len(n.Statements)))
	for _, s := range n.Statements {
		tv.child("", s)
	}
	return nil
}

func (tv *TreeVisitor) VisitVarStmt(n *VarStmt) interface{} {
	tv.write(n, "")
	for _, a := range n.Assignments {
		tv.child("", a)
	}
	return nil
}

func (tv *TreeVisitor) VisitAssignment(n *Assignment) interface{} {
	name := ""
	if n.Target != nil {
		name = n.Target.Name
	}
	tv.write(n, name)
	tv.child("", n.Value)
	return nil
}

func (tv *TreeVisitor) VisitIdentifier(n *Identifier) interface{} {
	tv.write(n, n.Name)
	return nil
}

func (tv *TreeVisitor) VisitNumber(n *Number) interface{} {
	tv.write(n, FormatNumber(n.Value, n.IsInt))
	return nil
}

func (tv *TreeVisitor) VisitUnaryExpr(n *UnaryExpr) interface{} {
	tv.write(n, n.Op.Symbol())
	tv.child("", n.Operand)
	return nil
}

func (tv *TreeVisitor) VisitBinaryExpr(n *BinaryExpr) interface{} {
	tv.write(n, n.Op.Symbol())
	tv.child("", n.Left)
	tv.child("", n.Right)
	return nil
}

func (tv *TreeVisitor) VisitIfStmt(n *IfStmt) interface{} {
	tv.write(n, "")
	tv.child("cond", n.Condition)
	tv.child("then", n.Then)
	tv.child("else", n.Else)
	return nil
}

func (tv *TreeVisitor) VisitWhileStmt(n *WhileStmt) interface{} {
	tv.write(n, "")
	tv.child("cond", n.Condition)
	tv.child("body", n.Body)
	return nil
}

func (tv *TreeVisitor) VisitBreakStmt(n *BreakStmt) interface{} {
	tv.write(n, "")
	return nil
}

func (tv *TreeVisitor) VisitFuncDef(n *FuncDef) interface{} {
	tv.write(n, n.Name)
	tv.child("", n.Params)
	tv.child("body", n.Body)
	return nil
}

func (tv *TreeVisitor) VisitFuncDefParams(n *FuncDefParams) interface{} {
	tv.write(n, strings.Join(n.Names, ", "))
	return nil
}

func (tv *TreeVisitor) VisitFuncCall(n *FuncCall) interface{} {
	tv.write(n, "")
	tv.child("callee", n.Callee)
	tv.child("", n.Args)
	return nil
}

func (tv *TreeVisitor) VisitFuncCallParams(n *FuncCallParams) interface{} {
	tv.write(n, fmt.Sprintf("(%d)", len(n.Args)))
	for _, a := range n.Args {
		tv.child("", a)
	}
	return nil
}

// ValidationVisitor collects Validate errors of every visited node. Use it
// with Walk.
type ValidationVisitor struct {
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{}
}

// Errors returns the collected errors in visiting order
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors reports whether any node failed validation
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears the collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = nil
}

func (vv *ValidationVisitor) check(n Node) interface{} {
	if err := n.Validate(); err != nil {
		vv.errors = append(vv.errors, err)
	}
	return nil
}

func (vv *ValidationVisitor) VisitBlock(n *Block) interface{}           { return vv.check(n) }
func (vv *ValidationVisitor) VisitVarStmt(n *VarStmt) interface{}       { return vv.check(n) }
func (vv *ValidationVisitor) VisitAssignment(n *Assignment) interface{} { return vv.check(n) }
func (vv *ValidationVisitor) VisitIdentifier(n *Identifier) interface{} { return vv.check(n) }
func (vv *ValidationVisitor) VisitNumber(n *Number) interface{}         { return vv.check(n) }
func (vv *ValidationVisitor) VisitUnaryExpr(n *UnaryExpr) interface{}   { return vv.check(n) }
func (vv *ValidationVisitor) VisitBinaryExpr(n *BinaryExpr) interface{} { return vv.check(n) }
func (vv *ValidationVisitor) VisitIfStmt(n *IfStmt) interface{}         { return vv.check(n) }
func (vv *ValidationVisitor) VisitWhileStmt(n *WhileStmt) interface{}   { return vv.check(n) }
func (vv *ValidationVisitor) VisitBreakStmt(n *BreakStmt) interface{}   { return vv.check(n) }
func (vv *ValidationVisitor) VisitFuncDef(n *FuncDef) interface{}       { return vv.check(n) }
func (vv *ValidationVisitor) VisitFuncDefParams(n *FuncDefParams) interface{} {
	return vv.check(n)
}
func (vv *ValidationVisitor) VisitFuncCall(n *FuncCall) interface{} { return vv.check(n) }
func (vv *ValidationVisitor) VisitFuncCallParams(n *FuncCallParams) interface{} {
	return vv.check(n)
}

// CollectorVisitor gathers names and per-kind counts. Use it with Walk.
type CollectorVisitor struct {
	BaseVisitor

	Counts    map[NodeKind]int
	Names     map[string]int // identifier references and assignment targets
	Functions []string       // defined function names in source order
	Calls     int
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Counts: make(map[NodeKind]int),
		Names:  make(map[string]int),
	}
}

// Reset clears collected data
func (cv *CollectorVisitor) Reset() {
	*cv = *NewCollectorVisitor()
}

// Total returns the number of visited nodes
func (cv *CollectorVisitor) Total() int {
	total := 0
	for _, c := range cv.Counts {
		total += c
	}
	return total
}

// SortedNames returns the distinct identifier names in lexical order
func (cv *CollectorVisitor) SortedNames() []string {
	out := make([]string, 0, len(cv.Names))
	for name := range cv.Names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (cv *CollectorVisitor) count(n Node) interface{} {
	cv.Counts[n.Kind()]++
	return nil
}

func (cv *CollectorVisitor) VisitBlock(n *Block) interface{}           { return cv.count(n) }
func (cv *CollectorVisitor) VisitVarStmt(n *VarStmt) interface{}       { return cv.count(n) }
func (cv *CollectorVisitor) VisitAssignment(n *Assignment) interface{} { return cv.count(n) }
func (cv *CollectorVisitor) VisitNumber(n *Number) interface{}         { return cv.count(n) }
func (cv *CollectorVisitor) VisitUnaryExpr(n *UnaryExpr) interface{}   { return cv.count(n) }
func (cv *CollectorVisitor) VisitBinaryExpr(n *BinaryExpr) interface{} { return cv.count(n) }
func (cv *CollectorVisitor) VisitIfStmt(n *IfStmt) interface{}         { return cv.count(n) }
func (cv *CollectorVisitor) VisitWhileStmt(n *WhileStmt) interface{}   { return cv.count(n) }
func (cv *CollectorVisitor) VisitBreakStmt(n *BreakStmt) interface{}   { return cv.count(n) }
func (cv *CollectorVisitor) VisitFuncCallParams(n *FuncCallParams) interface{} {
	return cv.count(n)
}

func (cv *CollectorVisitor) VisitIdentifier(n *Identifier) interface{} {
	cv.Names[n.Name]++
	return cv.count(n)
}

func (cv *CollectorVisitor) VisitFuncDef(n *FuncDef) interface{} {
	cv.Functions = append(cv.Functions, n.Name)
	return cv.count(n)
}

func (cv *CollectorVisitor) VisitFuncDefParams(n *FuncDefParams) interface{} {
	for _, name := range n.Names {
		cv.Names[name]++
	}
	return cv.count(n)
}

func (cv *CollectorVisitor) VisitFuncCall(n *FuncCall) interface{} {
	cv.Calls++
	return cv.count(n)
}

// ValidateAST validates every node of the tree and returns all errors
func ValidateAST(n Node) []error {
	visitor := NewValidationVisitor()
	Walk(visitor, n)
	return visitor.Errors()
}

// TreeString returns the indented dump of a tree
func TreeString(n Node, positions bool) string {
	if isNil(n) {
		return ""
	}
	visitor := NewTreeVisitor()
	visitor.ShowPositions = positions
	n.Accept(visitor)
	return visitor.String()
}

// CollectNodes gathers statistics over a tree
func CollectNodes(n Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	Walk(visitor, n)
	return visitor
}
