package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/halang/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := cmd.OutOrStdout()

		switch outputFormat {
		case formatJSON:
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
		case formatYAML:
			data, err := yaml.Marshal(info)
			if err != nil {
				return err
			}
			fmt.Fprint(out, string(data))
		default:
			fmt.Fprintf(out, "halang v%s\n", info.CLI)
			fmt.Fprintf(out, "  Language:   %s\n", info.Language)
			fmt.Fprintf(out, "  Parser:     %s\n", info.Parser)
			fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func rootVersion() string {
	return "v" + version.ComponentVersion("halang")
}
