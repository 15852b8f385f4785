// Package ast defines the abstract syntax tree produced by the halang parser.
//
// Package: ast
// Title: halang Abstract Syntax Tree
// Description: Fourteen concrete node kinds, the arena that owns every node of
//              a parse session, the Visitor interface with stock visitors
//              and JSON/YAML export.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Ownership:
//
// Every node is registered in exactly one Arena through Alloc and receives a
// NodeID starting at 1. Nodes refer to their children directly; the tree is
// acyclic and no node is shared between two parents. Arena.Verify checks
// both properties. Releasing the arena invalidates all ids at once.
//
// Features:
//   - Structural String forms, e.g. BinaryExpr(+, Number(1), Number(2))
//   - Visitor double dispatch with BaseVisitor, Inspect and Walk
//   - TreeVisitor for indented dumps
//   - ValidationVisitor and ValidateAST for structural checks
//   - CollectorVisitor for kind counts and referenced names
//   - Export, ToJSON and ToYAML for machine readable output
//
// Usage:
//
//	arena := ast.NewArena(16)
//	one := ast.Alloc(arena, pos, &ast.Number{Value: 1, IsInt: true})
//	two := ast.Alloc(arena, pos, &ast.Number{Value: 2, IsInt: true})
//	sum := ast.Alloc(arena, pos, &ast.BinaryExpr{Op: token.OpAdd, Left: one, Right: two})
//	fmt.Println(sum)                     // BinaryExpr(+, Number(1), Number(2))
//	fmt.Print(ast.TreeString(sum, false))
package ast
