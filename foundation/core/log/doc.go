// Package log provides structured logging for the halang front end.
//
// Package: log
// Title: halang Structured Logging
// Description: A small structured logger with levels, pluggable formatters
//              and immutable child loggers. Parser sessions attach their
//              session id so that output from concurrent sessions in one
//              process can be told apart.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - JSON, text, colored console and logfmt output
// - Level filtering (trace through fatal)
// - Child loggers with persistent fields and a session id
// - Severity-aware logging of coded errors
// - Timers that log the duration of an operation
//
// Usage:
//   import mdwlog "github.com/msto63/halang/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{
//     Level:  mdwlog.LevelDebug,
//     Format: mdwlog.FormatText,
//   }).WithField("component", "halang-parser")
//
//   timer := logger.StartTimer("parse")
//   logger.Debug("parsing", mdwlog.Field("file", "main.ha"))
//   timer.Stop()
package log
