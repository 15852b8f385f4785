package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// effectiveConfig is the settings view printed by "halang config"
type effectiveConfig struct {
	Parser parserSection `toml:"parser" yaml:"parser" json:"parser"`
	Log    logSection    `toml:"log" yaml:"log" json:"log"`
}

type parserSection struct {
	MaxDepth  int `toml:"max_depth" yaml:"max_depth" json:"max_depth"`
	MaxErrors int `toml:"max_errors" yaml:"max_errors" json:"max_errors"`
}

type logSection struct {
	Level  string `toml:"level" yaml:"level" json:"level"`
	Format string `toml:"format" yaml:"format" json:"format"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Prints the settings in effect after applying defaults, the config
file and HALANG_* environment overrides. The output is TOML unless
--format yaml is given, and can be used as a starting halang.toml.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func currentConfig() effectiveConfig {
	return effectiveConfig{
		Parser: parserSection{MaxDepth: settings.MaxDepth, MaxErrors: settings.MaxErrors},
		Log:    logSection{Level: settings.LogLevel.String(), Format: settings.LogFormat.String()},
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if path := config.FilePath(); path != "" {
		fmt.Fprintf(out, "# loaded from %s\n", path)
	} else {
		fmt.Fprintln(out, "# no config file found, using defaults")
	}

	if outputFormat == formatYAML {
		data, err := yaml.Marshal(currentConfig())
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	return toml.NewEncoder(out).Encode(currentConfig())
}
