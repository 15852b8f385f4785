// File: halang.go
// Title: halang Front End Engine
// Description: Entry point for tools embedding the halang front end. Builds
//              parser options from configuration and parses source strings
//              and files.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package halang

import (
	"io"

	mdwconfig "github.com/msto63/halang/foundation/core/config"
	mdwerror "github.com/msto63/halang/foundation/core/error"
	mdwlog "github.com/msto63/halang/foundation/core/log"
	"github.com/msto63/halang/foundation/halang/lexer"
	"github.com/msto63/halang/foundation/halang/parser"
	"github.com/msto63/halang/foundation/halang/token"
	"github.com/msto63/halang/foundation/utils/filex"
)

// Configuration keys
const (
	KeyMaxDepth  = "parser.max_depth"
	KeyMaxErrors = "parser.max_errors"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// Settings are the tunables of the front end
type Settings struct {
	MaxDepth  int
	MaxErrors int
	LogLevel  mdwlog.Level
	LogFormat mdwlog.Format
}

// DefaultSettings returns the settings used without a configuration file
func DefaultSettings() Settings {
	return Settings{
		MaxDepth:  parser.DefaultMaxDepth,
		MaxErrors: parser.DefaultMaxErrors,
		LogLevel:  mdwlog.DefaultLevel(),
		LogFormat: mdwlog.FormatConsole,
	}
}

// ConfigDefaults returns the default configuration tree
func ConfigDefaults() map[string]interface{} {
	d := DefaultSettings()
	return map[string]interface{}{
		"parser": map[string]interface{}{
			"max_depth":  d.MaxDepth,
			"max_errors": d.MaxErrors,
		},
		"log": map[string]interface{}{
			"level":  d.LogLevel.String(),
			"format": d.LogFormat.String(),
		},
	}
}

// ConfigRules returns the validation rules for the front end keys
func ConfigRules() mdwconfig.ValidationRules {
	return mdwconfig.ValidationRules{
		KeyMaxDepth:  mdwconfig.IntRange(1, 1<<20),
		KeyMaxErrors: mdwconfig.IntRange(0, 1<<20),
		KeyLogLevel:  {Type: "string"},
		KeyLogFormat: {Type: "string"},
	}
}

// SettingsFromConfig validates cfg and converts it to settings. Missing
// keys keep their defaults.
func SettingsFromConfig(cfg *mdwconfig.Config) (Settings, error) {
	s := DefaultSettings()
	if cfg == nil {
		return s, nil
	}
	if err := cfg.Validate(ConfigRules()); err != nil {
		return s, err
	}

	s.MaxDepth = cfg.GetInt(KeyMaxDepth, s.MaxDepth)
	s.MaxErrors = cfg.GetInt(KeyMaxErrors, s.MaxErrors)

	if cfg.Has(KeyLogLevel) {
		level, err := mdwlog.ParseLevel(cfg.GetString(KeyLogLevel))
		if err != nil {
			return s, mdwerror.Wrap(err, "invalid log level").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("halang.SettingsFromConfig").
				WithDetail("key", KeyLogLevel)
		}
		s.LogLevel = level
	}
	if cfg.Has(KeyLogFormat) {
		format, err := mdwlog.ParseFormat(cfg.GetString(KeyLogFormat))
		if err != nil {
			return s, mdwerror.Wrap(err, "invalid log format").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("halang.SettingsFromConfig").
				WithDetail("key", KeyLogFormat)
		}
		s.LogFormat = format
	}
	return s, nil
}

// NewLogger creates a logger following the settings, writing to w
func (s Settings) NewLogger(w io.Writer) *mdwlog.Logger {
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  s.LogLevel,
		Format: s.LogFormat,
		Output: w,
		Name:   "halang",
	})
}

// Engine parses halang sources with fixed settings. It holds no per-parse
// state and may be shared between goroutines.
type Engine struct {
	settings Settings
	logger   *mdwlog.Logger
}

// New creates an engine. A nil logger selects the default logger.
func New(settings Settings, logger *mdwlog.Logger) *Engine {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &Engine{settings: settings, logger: logger}
}

// Settings returns the engine settings
func (e *Engine) Settings() Settings {
	return e.settings
}

// Options returns the parser options derived from the settings
func (e *Engine) Options() parser.Options {
	return parser.Options{
		Logger:    e.logger,
		MaxDepth:  e.settings.MaxDepth,
		MaxErrors: e.settings.MaxErrors,
	}
}

// ParseString parses source text. The caller closes the result.
func (e *Engine) ParseString(src string) *parser.Result {
	return parser.Parse(src, e.Options())
}

// ParseTokens parses a recorded token sequence
func (e *Engine) ParseTokens(tokens []token.Token) *parser.Result {
	return parser.NewSession(lexer.NewReplay(tokens), e.Options()).Parse()
}

// ParseFile reads and parses a source file. Errors are returned only when
// the file cannot be read; syntax errors are reported in the result.
func (e *Engine) ParseFile(path string) (*parser.Result, error) {
	src, err := filex.ReadSource(path, 0)
	if err != nil {
		e.logger.WarnWithErr("Cannot read source file", err, mdwlog.Fields{"path": path})
		return nil, err
	}

	result := e.ParseString(src)
	e.logger.Debug("Parsed file", mdwlog.Fields{
		"path":  path,
		"ok":    result.OK,
		"nodes": result.Arena.Len(),
	})
	return result, nil
}

// Tokenize runs the lexer over src
func (e *Engine) Tokenize(src string) ([]token.Token, error) {
	return lexer.New(src).Tokenize()
}
