// ============================================================================
// halang - Scripting Language Front End
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the halang AST explorer TUI
// Author:      Mike Stoffels with Claude
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/halang/internal/tui/explorer"
)

var (
	exploreExpr  string
	exploreWatch bool
)

var exploreCmd = &cobra.Command{
	Use:     "explore [file]",
	Aliases: []string{"explorer", "ui"},
	Short:   "Explore the syntax tree of a file in a terminal UI",
	Long: `Starts the interactive halang explorer.

The explorer shows the syntax tree, the token stream, the diagnostics and
the annotated source of one file:

  - Reparse on demand or whenever the file changes (watch mode)
  - Node positions on request
  - Node and token statistics in the status bar

Keys:
  1-4         Tree / Tokens / Diagnostics / Source
  p           Toggle positions
  r           Reparse
  w           Toggle watch mode
  g / G       Jump to top / bottom
  PgUp/PgDn   Scroll
  q, Ctrl+C   Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().StringVarP(&exploreExpr, "expr", "e", "", "Explore this text instead of a file")
	exploreCmd.Flags().BoolVarP(&exploreWatch, "watch", "w", true, "Reparse when the file changes")
}

func exploreConfig(args []string) explorer.Config {
	cfg := explorer.Config{
		Source: exploreExpr,
		Engine: quietEngine(),
		Watch:  exploreWatch,
	}
	if len(args) == 1 {
		cfg.Path = args[0]
	}
	return cfg
}

func runExplore(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && exploreExpr == "" {
		return cmd.Usage()
	}
	return explorer.Run(exploreConfig(args))
}
