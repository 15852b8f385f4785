// File: export.go
// Title: AST Export
// Description: Converts a tree into plain maps and slices and renders them
//              as JSON or YAML for tooling and the command line.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package ast

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/halang/foundation/core/error"
)

// ExportVisitor turns each node into a map[string]interface{} holding its
// kind, position and fields. Children are exported recursively.
type ExportVisitor struct {
	// Positions adds a "pos" entry ("line:column") to every node
	Positions bool
}

func (ev *ExportVisitor) node(n Node, fields map[string]interface{}) map[string]interface{} {
	fields["kind"] = n.Kind().String()
	if ev.Positions {
		fields["pos"] = n.Position().String()
	}
	return fields
}

func (ev *ExportVisitor) export(n Node) interface{} {
	if isNil(n) {
		return nil
	}
	return n.Accept(ev)
}

func (ev *ExportVisitor) list(nodes []Node) []interface{} {
	out := make([]interface{}, len(nodes))
	for i, n := range nodes {
		out[i] = ev.export(n)
	}
	return out
}

func (ev *ExportVisitor) VisitBlock(n *Block) interface{} {
	return ev.node(n, map[string]interface{}{"statements": ev.list(n.Statements)})
}

func (ev *ExportVisitor) VisitVarStmt(n *VarStmt) interface{} {
	out := make([]interface{}, len(n.Assignments))
	for i, a := range n.Assignments {
		out[i] = ev.export(a)
	}
	return ev.node(n, map[string]interface{}{"assignments": out})
}

func (ev *ExportVisitor) VisitAssignment(n *Assignment) interface{} {
	return ev.node(n, map[string]interface{}{
		"target": ev.export(n.Target),
		"value":  ev.export(n.Value),
	})
}

func (ev *ExportVisitor) VisitIdentifier(n *Identifier) interface{} {
	return ev.node(n, map[string]interface{}{"name": n.Name})
}

func (ev *ExportVisitor) VisitNumber(n *Number) interface{} {
	fields := map[string]interface{}{"value": n.Value}
	if n.IsInt {
		fields["value"] = int64(n.Value)
	}
	return ev.node(n, fields)
}

func (ev *ExportVisitor) VisitUnaryExpr(n *UnaryExpr) interface{} {
	return ev.node(n, map[string]interface{}{
		"op":      n.Op.Symbol(),
		"operand": ev.export(n.Operand),
	})
}

func (ev *ExportVisitor) VisitBinaryExpr(n *BinaryExpr) interface{} {
	return ev.node(n, map[string]interface{}{
		"op":    n.Op.Symbol(),
		"left":  ev.export(n.Left),
		"right": ev.export(n.Right),
	})
}

func (ev *ExportVisitor) VisitIfStmt(n *IfStmt) interface{} {
	fields := map[string]interface{}{
		"condition": ev.export(n.Condition),
		"then":      ev.export(n.Then),
	}
	if !isNil(n.Else) {
		fields["else"] = ev.export(n.Else)
	}
	return ev.node(n, fields)
}

func (ev *ExportVisitor) VisitWhileStmt(n *WhileStmt) interface{} {
	return ev.node(n, map[string]interface{}{
		"condition": ev.export(n.Condition),
		"body":      ev.export(n.Body),
	})
}

func (ev *ExportVisitor) VisitBreakStmt(n *BreakStmt) interface{} {
	return ev.node(n, map[string]interface{}{})
}

func (ev *ExportVisitor) VisitFuncDef(n *FuncDef) interface{} {
	return ev.node(n, map[string]interface{}{
		"name":   n.Name,
		"params": ev.export(n.Params),
		"body":   ev.export(n.Body),
	})
}

func (ev *ExportVisitor) VisitFuncDefParams(n *FuncDefParams) interface{} {
	names := append([]string{}, n.Names...)
	return ev.node(n, map[string]interface{}{"names": names})
}

func (ev *ExportVisitor) VisitFuncCall(n *FuncCall) interface{} {
	return ev.node(n, map[string]interface{}{
		"callee": ev.export(n.Callee),
		"args":   ev.export(n.Args),
	})
}

func (ev *ExportVisitor) VisitFuncCallParams(n *FuncCallParams) interface{} {
	return ev.node(n, map[string]interface{}{"args": ev.list(n.Args)})
}

// Export converts a tree into nested maps. A nil tree exports as nil.
func Export(n Node, positions bool) map[string]interface{} {
	if isNil(n) {
		return nil
	}
	ev := &ExportVisitor{Positions: positions}
	return n.Accept(ev).(map[string]interface{})
}

// ToJSON renders the tree as indented JSON
func ToJSON(n Node, positions bool) ([]byte, error) {
	data, err := json.MarshalIndent(Export(n, positions), "", "  ")
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to encode tree as JSON").
			WithCode(mdwerror.CodeInternal).
			WithOperation("ast.ToJSON")
	}
	return data, nil
}

// ToYAML renders the tree as YAML
func ToYAML(n Node, positions bool) ([]byte, error) {
	data, err := yaml.Marshal(Export(n, positions))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to encode tree as YAML").
			WithCode(mdwerror.CodeInternal).
			WithOperation("ast.ToYAML")
	}
	return data, nil
}
