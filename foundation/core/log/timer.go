// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation (typically a whole parse
//              session) and logs it on completion.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

func newTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time. A second call is a no-op
// returning zero.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError stops the timer and logs err together with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger == nil {
		return elapsed
	}

	level, message := t.level, t.operation+" completed"
	if err != nil {
		level, message = LevelWarn, t.operation+" failed"
	}
	if !level.ShouldLog(t.logger.level) {
		return elapsed
	}

	entry := NewEntry(level, message)
	entry.Logger = t.logger.name
	entry.Session = t.logger.session
	entry.Error = err
	entry.Duration = elapsed
	for k, v := range t.logger.contextFields {
		entry.Fields[k] = v
	}
	for k, v := range t.fields {
		entry.Fields[k] = v
	}
	entry.Fields["operation"] = t.operation
	t.logger.write(entry)

	return elapsed
}
