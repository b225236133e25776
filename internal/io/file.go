// Package ioutils provides file system helpers for the 3GPP downloader:
// destination naming, filename sanitization and directory creation.
package ioutils

import (
	"net/url"
	"os"
	"regexp"
	"strings"
)

// FallbackFileName is used when a download URL carries no usable final
// path segment.
const FallbackFileName = "spec.zip"

// FileNameFromURL derives the destination filename for a download URL:
// the URL's final path segment, sanitized, or FallbackFileName when the
// URL has no path (or cannot be parsed at all).
//
// Example:
//
//	FileNameFromURL("https://host/ftp/Specs/archive/23_series/23.501/23501-h20.zip")
//	// Returns "23501-h20.zip"
func FileNameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return FallbackFileName
	}

	segments := strings.Split(parsed.Path, "/")
	name := SanitizeFileName(segments[len(segments)-1])
	if name == "" {
		return FallbackFileName
	}
	return name
}

// SanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
func SanitizeFileName(name string) string {
	// Replace invalid path/file characters with underscore
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots (Windows doesn't allow filenames ending with dots)
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space for cleaner names
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}

// EnsureDir creates a directory and all parent directories if they
// don't exist. Directories are created with mode 0755.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
