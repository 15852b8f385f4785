// ============================================================================
// halang - Scripting Language Front End
// ============================================================================
//
// Package:     cmd
// Description: Root command, persistent flags and engine setup
// Author:      Mike Stoffels with Claude
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	mdwconfig "github.com/msto63/halang/foundation/core/config"
	mdwerror "github.com/msto63/halang/foundation/core/error"
	mdwlog "github.com/msto63/halang/foundation/core/log"
	"github.com/msto63/halang/foundation/halang"
)

// Output formats of the --format flag
const (
	formatTree  = "tree"
	formatSexpr = "sexpr"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string

	// set by setup before any subcommand runs
	config   *mdwconfig.Config
	settings halang.Settings
	engine   *halang.Engine
)

var rootCmd = &cobra.Command{
	Use:   "halang",
	Short: "halang - Parser front end for the halang scripting language",
	Long: `halang parses halang source text into a syntax tree and reports
syntax errors with line and column.

Commands:
  parse    - Parse files or an expression and print the tree
  tokens   - Print the token stream
  check    - Report syntax errors and node statistics
  repl     - Interactive parse loop
  explore  - Terminal UI for trees, tokens and diagnostics
  config   - Show the effective configuration`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: discover halang.toml|yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", formatTree, "Output format: tree, sexpr, json or yaml")
}

// setup loads the configuration and creates the engine
func setup(cmd *cobra.Command, args []string) error {
	switch outputFormat {
	case formatTree, formatSexpr, formatJSON, formatYAML:
	default:
		return mdwerror.New(fmt.Sprintf("unknown output format %q", outputFormat)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.setup")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := halang.SettingsFromConfig(cfg)
	if err != nil {
		return err
	}
	if verbose {
		s.LogLevel = mdwlog.LevelDebug
	}

	config, settings = cfg, s
	engine = halang.New(s, s.NewLogger(cmd.ErrOrStderr()))
	return nil
}

func loadConfig() (*mdwconfig.Config, error) {
	if cfgFile != "" {
		return mdwconfig.LoadWithOptions(cfgFile, mdwconfig.LoadOptions{
			Format:    mdwconfig.FormatAuto,
			EnvPrefix: "HALANG",
			Defaults:  halang.ConfigDefaults(),
		})
	}
	options := mdwconfig.DefaultDiscoveryOptions()
	options.Defaults = halang.ConfigDefaults()
	return mdwconfig.Discover(options)
}

// quietEngine returns an engine with the current settings that does not log
func quietEngine() *halang.Engine {
	return halang.New(settings, mdwlog.Discard())
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error:")+" "+err.Error())
}
