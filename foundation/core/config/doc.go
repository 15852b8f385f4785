// Package config provides configuration loading for the halang tools.
//
// Package: config
// Title: halang Configuration Management
// Description: Loads TOML (BurntSushi/toml) or YAML (gopkg.in/yaml.v3)
//              files into a nested map with dot-path access, environment
//              variable overrides, defaults, discovery of halang.toml and
//              rule-based validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with TOML/YAML support
//
// Features:
// - TOML and YAML with format detection by extension
// - Dot-path typed getters with defaults
// - Environment overrides (HALANG_PARSER_MAX_DEPTH for parser.max_depth)
// - Discovery in ., ./config and the user config directory
// - Validation rules for required keys, types and integer ranges
//
// Usage:
//   cfg, err := config.Discover(config.DefaultDiscoveryOptions())
//   if err != nil {
//     return err
//   }
//   depth := cfg.GetInt("parser.max_depth", 512)
package config
