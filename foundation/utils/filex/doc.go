// Package filex implements the file handling of the halang tools.
//
// Package: filex
// Title: Source File Operations
// Description: Existence checks, size-limited reading of source files and
//              discovery of halang sources below a directory. Errors carry
//              codes from foundation/core/error.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-18 v0.2.0: Reduced to source file handling
//
// Package Overview:
//
// # Existence
//
//   - Exists: Check if file or directory exists
//   - IsFile/IsDir: Check file type
//   - IsSource: Check for a halang source extension (.ha, .halang)
//
// # Reading
//
// ReadSource reads a whole source file and rejects files larger than the
// given limit (DefaultMaxSize when 0):
//
//	src, err := filex.ReadSource("main.ha", 0)
//	if mdwerror.GetCode(err) == mdwerror.CodeNotFound {
//		// ...
//	}
//
// # Discovery
//
// FindSources walks a directory and returns its source files sorted by
// path; hidden directories are skipped. ExpandSources applies FindSources
// to every directory of a command line argument list:
//
//	files, err := filex.ExpandSources([]string{"lib", "main.ha"})
package filex
