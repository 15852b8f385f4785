// File: error_test.go
// Title: Core Error Tests
// Description: Tests for construction, wrapping, joining and code lookup.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package error

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("boom")

	if err.Error() != "boom" {
		t.Errorf("Expected message 'boom', got %q", err.Error())
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Expected CodeUnknown, got %s", err.Code())
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Expected medium severity, got %s", err.Severity())
	}
}

func TestBuilder(t *testing.T) {
	err := New("expected ')'").
		WithCode(CodeUnexpectedToken).
		WithOperation("parse").
		WithDetail("line", 3).
		WithDetails(map[string]interface{}{"column": 7})

	if err.Error() != "parse: expected ')'" {
		t.Errorf("Unexpected message: %q", err.Error())
	}
	if err.Severity() != SeverityLow {
		t.Errorf("Expected syntax codes to default to low severity, got %s", err.Severity())
	}
	details := err.Details()
	if details["line"] != 3 || details["column"] != 7 {
		t.Errorf("Unexpected details: %v", details)
	}

	details["line"] = 99
	if err.Details()["line"] != 3 {
		t.Error("Details() must return a copy")
	}

	if !strings.Contains(err.String(), "Details: {column=7, line=3}") {
		t.Errorf("String() should list sorted details, got:\n%s", err.String())
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	inner := New("missing name").WithCode(CodeMissingIdentifier)
	outer := Wrap(inner, "parse failed")

	if outer.Code() != CodeMissingIdentifier {
		t.Errorf("Expected inherited code, got %s", outer.Code())
	}
	if !errors.Is(outer, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
	if outer.Error() != "parse failed: missing name" {
		t.Errorf("Unexpected message: %q", outer.Error())
	}

	std := Wrap(io.EOF, "read")
	if !errors.Is(std, io.EOF) {
		t.Error("errors.Is should see through to io.EOF")
	}
	if std.Code() != CodeUnknown {
		t.Errorf("Expected CodeUnknown for wrapped stdlib error, got %s", std.Code())
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		errs  []error
		check func(t *testing.T, err *Error)
	}{
		{
			name: "all nil",
			errs: []error{nil, nil},
			check: func(t *testing.T, err *Error) {
				if err != nil {
					t.Errorf("Expected nil, got %v", err)
				}
			},
		},
		{
			name: "single coded error is returned as is",
			errs: []error{nil, New("x").WithCode(CodeSyntax)},
			check: func(t *testing.T, err *Error) {
				if err == nil || err.Message() != "x" {
					t.Fatalf("Expected the original error, got %v", err)
				}
			},
		},
		{
			name: "several errors keep the first code",
			errs: []error{
				New("a").WithCode(CodeUnexpectedToken),
				New("b").WithCode(CodeMissingIdentifier),
			},
			check: func(t *testing.T, err *Error) {
				if err.Code() != CodeUnexpectedToken {
					t.Errorf("Expected first code, got %s", err.Code())
				}
				if len(err.Errors()) != 2 {
					t.Errorf("Expected 2 joined errors, got %d", len(err.Errors()))
				}
				if err.Error() != "syntax errors: a; b" {
					t.Errorf("Unexpected message: %q", err.Error())
				}
				if !HasCode(err, CodeMissingIdentifier) {
					t.Error("HasCode should search joined errors")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Join("syntax errors", tt.errs...))
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	if GetCode(io.EOF) != CodeUnknown {
		t.Error("Plain errors should map to CodeUnknown")
	}
	if GetSeverity(io.EOF) != SeverityMedium {
		t.Error("Plain errors should map to medium severity")
	}
	err := New("bad").WithCode(CodeInvalidConfig).WithSeverity(SeverityCritical)
	if GetCode(err) != CodeInvalidConfig {
		t.Errorf("Expected CodeInvalidConfig, got %s", GetCode(err))
	}
	if GetSeverity(err) != SeverityCritical {
		t.Errorf("Expected critical, got %s", GetSeverity(err))
	}
	if HasCode(nil, CodeUnknown) {
		t.Error("HasCode(nil) should be false")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("bad token").WithCode(CodeUnexpectedToken).WithDetail("line", 1)
	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal failed: %v", jerr)
	}

	var out map[string]interface{}
	if jerr := json.Unmarshal(data, &out); jerr != nil {
		t.Fatalf("Unmarshal failed: %v", jerr)
	}
	if out["code"] != "UNEXPECTED_TOKEN" {
		t.Errorf("Expected code in JSON, got %v", out["code"])
	}
	if out["severity"] != "low" {
		t.Errorf("Expected severity in JSON, got %v", out["severity"])
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		syntax   bool
	}{
		{CodeUnexpectedToken, "syntax", true},
		{CodeMalformedParameterList, "syntax", true},
		{CodeNestingTooDeep, "syntax", true},
		{CodeArenaReleased, "ast", false},
		{CodeInvalidConfig, "configuration", false},
		{CodeIO, "generic", false},
		{Code("NOPE"), "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Expected category %q, got %q", tt.category, got)
			}
			if got := tt.code.IsSyntax(); got != tt.syntax {
				t.Errorf("Expected IsSyntax %v, got %v", tt.syntax, got)
			}
			if got := tt.code.IsValid(); got != (tt.category != "") {
				t.Errorf("Unexpected IsValid %v", got)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	want := map[Severity]string{
		SeverityLow:      "low",
		SeverityMedium:   "medium",
		SeverityHigh:     "high",
		SeverityCritical: "critical",
		Severity(42):     "unknown",
	}
	for s, name := range want {
		if s.String() != name {
			t.Errorf("Expected %q, got %q", name, s.String())
		}
	}
}
