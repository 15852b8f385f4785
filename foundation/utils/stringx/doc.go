// Package stringx provides small string helpers for the halang tools.
//
// Package: stringx
// Title: String Utilities
// Description: Rune-safe truncation, padding and escaping used by the AST
//              dumpers, diagnostics and the command line token listing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
package stringx
