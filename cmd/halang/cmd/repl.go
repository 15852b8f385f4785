// ============================================================================
// halang - Scripting Language Front End
// ============================================================================
//
// Package:     cmd
// Description: Interactive parse loop with line editing and history
// Author:      Mike Stoffels with Claude
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/msto63/halang/foundation/halang"
)

const (
	promptMain  = "halang> "
	promptCont  = "   ...> "
	historyFile = ".halang_history"
)

var replPositions bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive parse loop",
	Long: `Reads halang source line by line and prints the syntax tree of each
complete input. Input that ends in the middle of a construct (an open
brace, a dangling operator) continues on the next line.

Commands:
  :quit        Leave the loop (Ctrl+D works too)
  :positions   Toggle node positions
  :help        Show this help`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replPositions, "positions", false, "Include line:column of every node")
}

// prompter reads one line of input
type prompter interface {
	Prompt(prompt string) (string, error)
}

func runRepl(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "halang %s - type :help for commands\n", rootVersion())

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	r := &repl{
		in:        ln,
		out:       out,
		errOut:    cmd.ErrOrStderr(),
		probe:     quietEngine(),
		positions: replPositions,
		history:   ln.AppendHistory,
	}
	r.loop()
	return nil
}

// repl is the parse loop, independent of the terminal
type repl struct {
	in        prompter
	out       io.Writer
	errOut    io.Writer
	probe     *halang.Engine
	positions bool
	history   func(string)
}

func (r *repl) loop() {
	for {
		src, ok := r.read()
		if !ok {
			fmt.Fprintln(r.out)
			return
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if r.command(strings.ToLower(trimmed)) {
				return
			}
			continue
		}

		r.eval(src)
		if r.history != nil {
			r.history(strings.ReplaceAll(src, "\n", " "))
		}
	}
}

// command runs a colon command and reports whether the loop should end
func (r *repl) command(line string) bool {
	switch line {
	case ":quit", ":q", ":exit":
		return true
	case ":positions":
		r.positions = !r.positions
		fmt.Fprintf(r.out, "positions: %v\n", r.positions)
	case ":help":
		fmt.Fprintln(r.out, "  :quit        leave the loop")
		fmt.Fprintln(r.out, "  :positions   toggle node positions")
		fmt.Fprintln(r.out, "  :help        show this help")
	default:
		fmt.Fprintln(r.out, "unknown command. Type :help for commands.")
	}
	return false
}

// eval parses src and prints the tree followed by any diagnostics
func (r *repl) eval(src string) {
	result := engine.ParseString(src)
	defer result.Close()

	writeDiagnostics(r.errOut, "<repl>", result)
	for _, stmt := range result.Root.Statements {
		if err := writeTree(r.out, stmt, outputFormat, r.positions); err != nil {
			printError(r.errOut, err)
			return
		}
	}
}

// read collects lines until the input no longer ends mid-construct. It
// returns false at end of input.
func (r *repl) read() (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := r.in.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !r.incomplete(src) {
			return src, true
		}
	}
}

func (r *repl) incomplete(src string) bool {
	result := r.probe.ParseString(src)
	defer result.Close()
	return result.Incomplete()
}
