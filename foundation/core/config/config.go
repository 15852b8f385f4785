// File: config.go
// Title: Configuration Loading and Access
// Description: Loads TOML or YAML configuration into a nested map and offers
//              typed dot-path getters. Environment variables override file
//              values: with prefix HALANG the key parser.max_depth is read
//              from HALANG_PARSER_MAX_DEPTH.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/halang/foundation/core/error"
	mdwstringx "github.com/msto63/halang/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	// FormatAuto picks the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config is a loaded configuration, safe for concurrent use
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format
	EnvPrefix string
	Defaults  map[string]interface{}
}

// New returns an empty configuration holding only defaults
func New(envPrefix string, defaults map[string]interface{}) *Config {
	data := make(map[string]interface{})
	mergeInto(data, defaults)
	return &Config{data: data, format: FormatTOML, envPrefix: envPrefix}
}

// Load loads configuration from a file with auto-detected format
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if mdwstringx.IsBlank(filePath) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeIO).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	merged := make(map[string]interface{})
	mergeInto(merged, options.Defaults)
	mergeInto(merged, data)

	return &Config{
		data:      merged,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString parses configuration held in memory
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	return &Config{data: data, format: format}, nil
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return data, nil
}

// mergeInto deep-merges src into dst; values in src win
func mergeInto(dst, src map[string]interface{}) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]interface{})
		dstMap, dstIsMap := dst[k].(map[string]interface{})
		if srcIsMap && dstIsMap {
			mergeInto(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			copied := make(map[string]interface{}, len(srcMap))
			mergeInto(copied, srcMap)
			v = copied
		}
		dst[k] = v
	}
}

// WithEnvPrefix returns the same configuration reading overrides from
// variables with the given prefix
func (c *Config) WithEnvPrefix(prefix string) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.envPrefix = prefix
	return c
}

// GetString returns a string value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if env, ok := c.lookupEnv(key); ok {
		return env
	}

	c.mu.RLock()
	value := c.getValue(key)
	c.mu.RUnlock()

	switch v := value.(type) {
	case nil:
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer value with optional default. Values that are
// present but not numeric fall back to the default.
func (c *Config) GetInt(key string, defaultValue ...int) int {
	fallback := 0
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}

	if env, ok := c.lookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(env)); err == nil {
			return n
		}
		return fallback
	}

	c.mu.RLock()
	value := c.getValue(key)
	c.mu.RUnlock()

	if n, ok := toInt(value); ok {
		return n
	}
	return fallback
}

// GetBool returns a boolean value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	fallback := false
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}

	if env, ok := c.lookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(env)); err == nil {
			return b
		}
		return fallback
	}

	c.mu.RLock()
	value := c.getValue(key)
	c.mu.RUnlock()

	switch v := value.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// Has reports whether key is set in the file, the defaults or the environment
func (c *Config) Has(key string) bool {
	if _, ok := c.lookupEnv(key); ok {
		return true
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.getValue(key) != nil
}

// Set sets a value at runtime, creating intermediate tables as needed
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// GetAll returns a deep copy of the configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]interface{}, len(c.data))
	mergeInto(out, c.data)
	return out
}

// FilePath returns the file the configuration was loaded from, if any
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the format of the loaded file
func (c *Config) Format() Format {
	return c.format
}

func (c *Config) getValue(key string) interface{} {
	current := c.data
	keys := strings.Split(key, ".")
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func (c *Config) lookupEnv(key string) (string, bool) {
	c.mu.RLock()
	prefix := c.envPrefix
	c.mu.RUnlock()
	if prefix == "" {
		return "", false
	}
	value, ok := os.LookupEnv(EnvKey(prefix, key))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// EnvKey converts a config key to its environment variable name
func EnvKey(prefix, key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if prefix != "" {
		envKey = strings.ToUpper(prefix) + "_" + envKey
	}
	return envKey
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}
