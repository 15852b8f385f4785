// Package halang is the front end of the halang scripting language.
//
// Package: halang
// Title: halang Front End
// Description: Ties the lexer, parser, configuration and logging together
//              for command line tools and embedders. The subpackages hold
//              the actual machinery: token, lexer, ast and parser.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Configuration keys (TOML or YAML, overridable with HALANG_* variables):
//   parser.max_depth   deepest accepted nesting (default 512)
//   parser.max_errors  stop after this many errors, 0 = unlimited (default 0)
//   log.level          trace, debug, info, warn, error (default warn)
//   log.format         console, text, json, logfmt (default console)
//
// Usage:
//
//	cfg, _ := config.Discover(discoveryOptions)
//	settings, err := halang.SettingsFromConfig(cfg)
//	engine := halang.New(settings, settings.NewLogger(os.Stderr))
//	result := engine.ParseString("var x = 1 + 2;")
//	defer result.Close()
package halang
