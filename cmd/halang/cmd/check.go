package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/halang/foundation/halang/ast"
)

var checkStats bool

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Check sources for syntax errors",
	Long: `Parses each input and reports syntax errors. Exits with a non-zero
status when any input has errors.

With --stats the node counts, declared functions and referenced names of
each tree are printed as well.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkStats, "stats", false, "Print node statistics")
}

func runCheck(cmd *cobra.Command, args []string) error {
	inputs, err := collectInputs(args, "")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, in := range inputs {
		result := engine.ParseString(in.source)
		writeDiagnostics(cmd.ErrOrStderr(), in.name, result)

		if result.OK {
			fmt.Fprintf(out, "%s %s\n", okStyle.Render("ok"), in.name)
		} else {
			failed++
			fmt.Fprintf(out, "%s %s (%d error(s))\n", errorStyle.Render("FAIL"), in.name, len(result.Diagnostics))
		}
		if checkStats {
			writeStats(cmd, ast.CollectNodes(result.Root))
		}
		result.Close()
	}

	if failed > 0 {
		return errSyntax
	}
	return nil
}

func writeStats(cmd *cobra.Command, stats *ast.CollectorVisitor) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %s %d\n", labelStyle.Render("nodes:"), stats.Total())
	for kind := ast.KindBlock; kind <= ast.KindFuncCallParams; kind++ {
		if n := stats.Counts[kind]; n > 0 {
			fmt.Fprintf(out, "    %-16s %d\n", kind, n)
		}
	}
	if len(stats.Functions) > 0 {
		fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("functions:"), strings.Join(stats.Functions, ", "))
	}
	if names := stats.SortedNames(); len(names) > 0 {
		fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("names:"), strings.Join(names, ", "))
	}
	fmt.Fprintf(out, "  %s %d\n", labelStyle.Render("calls:"), stats.Calls)
}
