// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification used to pick log levels and exit
//              codes for errors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers problems in user input, e.g. a syntax error
	SeverityLow Severity = iota

	// SeverityMedium covers problems in the environment, e.g. a bad config file
	SeverityMedium

	// SeverityHigh covers broken invariants inside the tool
	SeverityHigh

	// SeverityCritical aborts the process
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code.Category() {
	case "syntax", "validation":
		return SeverityLow
	case "configuration":
		return SeverityMedium
	case "ast":
		return SeverityHigh
	}
	if code == CodeInternal {
		return SeverityHigh
	}
	return SeverityMedium
}
