package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/halang/foundation/halang/token"
)

var tokensExpr string

var tokensCmd = &cobra.Command{
	Use:   "tokens [file...]",
	Short: "Print the token stream",
	Long: `Runs the lexer over each input and prints one token per line.
With --format json or yaml the tokens are printed as a list of records.`,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVarP(&tokensExpr, "expr", "e", "", "Tokenize this text instead of files")
}

// tokenRecord is the serialized form of a token
type tokenRecord struct {
	Kind    string `json:"kind" yaml:"kind"`
	Literal string `json:"literal,omitempty" yaml:"literal,omitempty"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	inputs, err := collectInputs(args, tokensExpr)
	if err != nil {
		return err
	}

	failed := false
	for _, in := range inputs {
		tokens, lexErr := engine.Tokenize(in.source)
		if lexErr != nil {
			failed = true
			printError(cmd.ErrOrStderr(), fmt.Errorf("%s: %w", in.name, lexErr))
		}
		if err := writeTokens(cmd.OutOrStdout(), tokens, outputFormat); err != nil {
			return err
		}
	}

	if failed {
		return errSyntax
	}
	return nil
}

func writeTokens(w io.Writer, tokens []token.Token, format string) error {
	records := make([]tokenRecord, len(tokens))
	for i, tok := range tokens {
		records[i] = tokenRecord{
			Kind:    tok.Kind.String(),
			Literal: tok.Literal,
			Line:    tok.Pos.Line,
			Column:  tok.Pos.Column,
		}
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range records {
			if _, err := fmt.Fprintf(w, "%-8s %-14s %s\n",
				fmt.Sprintf("%d:%d", r.Line, r.Column), r.Kind, r.Literal); err != nil {
				return err
			}
		}
		return nil
	}
}
