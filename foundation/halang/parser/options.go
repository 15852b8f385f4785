// File: options.go
// Title: Parser Options
// Description: Tunables of a parse session: recursion guard, error limit and
//              the logger sessions derive their own logger from.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import (
	mdwlog "github.com/msto63/halang/foundation/core/log"
)

const (
	// DefaultMaxDepth bounds the nesting of blocks, statements and unary
	// operands
	DefaultMaxDepth = 512

	// DefaultMaxErrors of zero records every diagnostic
	DefaultMaxErrors = 0
)

// Options configures parser behavior
type Options struct {
	Logger *mdwlog.Logger

	// MaxDepth is the deepest nesting accepted before the session stops
	// with NESTING_TOO_DEEP. Zero selects DefaultMaxDepth.
	MaxDepth int

	// MaxErrors stops the session after that many diagnostics. Zero means
	// unlimited.
	MaxErrors int
}

// DefaultOptions returns the options used when none are given
func DefaultOptions() Options {
	return Options{
		Logger:    mdwlog.GetDefault(),
		MaxDepth:  DefaultMaxDepth,
		MaxErrors: DefaultMaxErrors,
	}
}

func (o Options) normalize() Options {
	if o.Logger == nil {
		o.Logger = mdwlog.GetDefault()
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxErrors < 0 {
		o.MaxErrors = 0
	}
	return o
}
