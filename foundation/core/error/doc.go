// Package error provides coded, severity-tagged errors for the halang front end.
//
// Package: error
// Title: halang Error Handling
// Description: Errors produced by the lexer, parser, engine and configuration
//              layer carry a stable Code, a Severity and optional details so
//              that the command line tools can render them uniformly and tests
//              can assert on the kind of failure rather than on message text.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with syntax codes and Join
//
// Features:
// - Builder style construction with codes, severity, operation and details
// - Syntax codes shared by parser diagnostics
// - Aggregation of many diagnostics into a single error via Join
// - Compatible with errors.Is and errors.As through Unwrap
//
// Usage:
//   import mdwerror "github.com/msto63/halang/foundation/core/error"
//
//   err := mdwerror.New("expected ')'").
//     WithCode(mdwerror.CodeUnexpectedToken).
//     WithOperation("parse").
//     WithDetail("line", 3)
//
//   if mdwerror.HasCode(err, mdwerror.CodeUnexpectedToken) {
//     // report a syntax error
//   }
package error
