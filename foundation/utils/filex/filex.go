// File: filex.go
// Title: Source File Utilities
// Description: File helpers used by the halang tools: existence checks,
//              size-limited reading of source files and discovery of
//              source files below a directory.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-18 v0.2.0: Reduced to source file handling; errors carry codes

package filex

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	mdwerror "github.com/msto63/halang/foundation/core/error"
)

// DefaultMaxSize is the largest source file ReadSource accepts (16 MiB)
const DefaultMaxSize int64 = 16 << 20

// SourceExtensions are the file extensions of halang sources
var SourceExtensions = []string{".ha", ".halang"}

// Exists checks if a file or directory exists at the given path
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsSource reports whether path carries one of the SourceExtensions
func IsSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ReadSource reads a text file of at most maxSize bytes. A maxSize of 0
// selects DefaultMaxSize.
func ReadSource(path string, maxSize int64) (string, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return "", mdwerror.New("source file not found: "+path).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("filex.ReadSource").
			WithDetail("path", path)
	}
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to open "+path).
			WithCode(mdwerror.CodeIO).
			WithOperation("filex.ReadSource").
			WithDetail("path", path)
	}
	defer file.Close()

	info, err := file.Stat()
	if err == nil && info.IsDir() {
		return "", mdwerror.New(path+" is a directory").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("filex.ReadSource").
			WithDetail("path", path)
	}

	// one extra byte tells an exact fit from an oversized file
	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read "+path).
			WithCode(mdwerror.CodeIO).
			WithOperation("filex.ReadSource").
			WithDetail("path", path)
	}
	if int64(len(data)) > maxSize {
		return "", mdwerror.New(fmt.Sprintf("%s exceeds %s", path, FormatSize(maxSize))).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("filex.ReadSource").
			WithDetail("path", path).
			WithDetail("maxSize", maxSize)
	}
	return string(data), nil
}

// FindSources returns the source files below root in lexical order. Hidden
// directories are skipped.
func FindSources(root string) ([]string, error) {
	var matches []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsSource(path) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "error during source search").
			WithCode(mdwerror.CodeIO).
			WithOperation("filex.FindSources").
			WithDetail("root", root)
	}

	sort.Strings(matches)
	return matches, nil
}

// ExpandSources replaces every directory in paths by the source files below
// it. Other entries are kept as given.
func ExpandSources(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		if !IsDir(path) {
			out = append(out, path)
			continue
		}
		found, err := FindSources(path)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

// FormatSize formats a byte count in human readable form
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
