// ============================================================================
// halang - Scripting Language Front End
// ============================================================================
//
// Package:     cmd
// Description: Tree output and styled diagnostics shared by the commands
// Author:      Mike Stoffels with Claude
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/halang/foundation/core/error"
	"github.com/msto63/halang/foundation/halang/ast"
	"github.com/msto63/halang/foundation/halang/parser"
	"github.com/msto63/halang/foundation/utils/filex"
)

var (
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	positionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	codeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
)

// errSyntax is returned by commands whose input did not parse cleanly. The
// diagnostics have been printed already.
var errSyntax = mdwerror.New("input contains syntax errors").WithCode(mdwerror.CodeSyntax)

// writeTree prints root in the selected output format
func writeTree(w io.Writer, root ast.Node, format string, positions bool) error {
	switch format {
	case formatSexpr:
		_, err := fmt.Fprintln(w, root.String())
		return err
	case formatJSON:
		data, err := ast.ToJSON(root, positions)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		data, err := ast.ToYAML(root, positions)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		_, err := fmt.Fprint(w, ast.TreeString(root, positions))
		return err
	}
}

// writeDiagnostics prints errors and warnings as name:line:col lines
func writeDiagnostics(w io.Writer, name string, result *parser.Result) {
	for _, d := range result.Diagnostics {
		fmt.Fprintf(w, "%s %s %s %s\n",
			positionStyle.Render(name+":"+d.Pos.String()+":"),
			errorStyle.Render("error:"),
			d.Message,
			codeStyle.Render("["+string(d.Code)+"]"))
	}
	for _, d := range result.Warnings {
		fmt.Fprintf(w, "%s %s %s\n",
			positionStyle.Render(name+":"+d.Pos.String()+":"),
			warningStyle.Render("warning:"),
			d.Message)
	}
	if result.Suppressed > 0 {
		fmt.Fprintf(w, "%s %d further diagnostic(s) suppressed\n", codeStyle.Render(name+":"), result.Suppressed)
	}
}

// readSource returns the content of path, or stdin for "-"
func readSource(path string) (string, error) {
	if path != "-" {
		return filex.ReadSource(path, 0)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read stdin").WithCode(mdwerror.CodeIO)
	}
	return string(data), nil
}
