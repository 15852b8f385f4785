package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/halang/foundation/utils/filex"
)

var (
	parseExpr      string
	parsePositions bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Parse source files and print the syntax tree",
	Long: `Parses each file, or the text given with -e, and prints the syntax
tree in the format selected with --format. A directory contributes its
.ha files; "-" reads stdin.

Syntax errors are reported on stderr as file:line:column; the tree built
from the remaining input is still printed.`,
	Example: `  halang parse main.ha
  halang parse --format sexpr -e "a * b + c"
  halang parse --format json --positions main.ha`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "expr", "e", "", "Parse this text instead of files")
	parseCmd.Flags().BoolVar(&parsePositions, "positions", false, "Include line:column of every node")
}

func runParse(cmd *cobra.Command, args []string) error {
	inputs, err := collectInputs(args, parseExpr)
	if err != nil {
		return err
	}

	failed := false
	for _, in := range inputs {
		result := engine.ParseString(in.source)
		writeDiagnostics(cmd.ErrOrStderr(), in.name, result)
		err := writeTree(cmd.OutOrStdout(), result.Root, outputFormat, parsePositions)
		failed = failed || !result.OK
		result.Close()
		if err != nil {
			return err
		}
	}

	if failed {
		return errSyntax
	}
	return nil
}

type input struct {
	name   string
	source string
}

// collectInputs resolves the -e text or the file arguments
func collectInputs(args []string, expr string) ([]input, error) {
	if expr != "" {
		return []input{{name: "<expr>", source: expr}}, nil
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	args, err := filex.ExpandSources(args)
	if err != nil {
		return nil, err
	}

	inputs := make([]input, 0, len(args))
	for _, path := range args {
		src, err := readSource(path)
		if err != nil {
			return nil, err
		}
		name := path
		if path == "-" {
			name = "<stdin>"
		}
		inputs = append(inputs, input{name: name, source: src})
	}
	return inputs, nil
}
