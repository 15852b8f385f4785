// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches a list of directories for the first matching
//              configuration file.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/halang/foundation/core/error"
)

// DiscoveryOptions defines where and how configuration files are searched
type DiscoveryOptions struct {
	Paths      []string
	Filenames  []string
	Extensions []string
	EnvPrefix  string
	Defaults   map[string]interface{}

	// Required turns "no file found" into an error instead of returning
	// a configuration holding only defaults
	Required bool
}

// DefaultDiscoveryOptions returns the search path of the halang tools:
// the working directory, ./config and the user config directory
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./config"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "halang"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"halang"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "HALANG",
	}
}

// Candidates lists every path Discover would try, in order
func (o DiscoveryOptions) Candidates() []string {
	var out []string
	for _, dir := range o.Paths {
		for _, name := range o.Filenames {
			for _, ext := range o.Extensions {
				out = append(out, filepath.Join(dir, name+ext))
			}
		}
	}
	return out
}

// FindConfigFile returns the first existing candidate file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, candidate := range options.Candidates() {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeMissingConfig).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", strings.Join(options.Candidates(), ", "))
}

// Discover loads the first configuration file found. Without a file it
// returns the defaults, or an error when options.Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return New(options.EnvPrefix, options.Defaults), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "found config file "+path+" but failed to load").
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}
