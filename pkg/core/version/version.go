// ============================================================================
// halang - Scripting Language Front End
// ============================================================================
//
// Package:     version
// Description: Central version management for the halang tools
// Author:      Mike Stoffels with Claude
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants of the halang components
const (
	// Language is the version of the accepted grammar
	Language = "0.1.0"

	// Component versions
	CLI      = "0.1.0"
	Parser   = "0.1.0"
	Explorer = "0.1.0"
)

// Build metadata, set with -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "halang":
		return CLI
	case "parser":
		return Parser
	case "explorer":
		return Explorer
	default:
		return Language
	}
}

// Info describes the running binary
type Info struct {
	Language  string `json:"language" yaml:"language"`
	CLI       string `json:"cli" yaml:"cli"`
	Parser    string `json:"parser" yaml:"parser"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Language:  Language,
		CLI:       CLI,
		Parser:    Parser,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("halang v%s (language %s, commit %s)", i.CLI, i.Language, i.GitCommit)
}
