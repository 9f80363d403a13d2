// Package ioutils provides file system utilities for sok-downloader.
//
// This package contains functions for:
//   - Filename sanitization
//   - Directory creation
//   - JSON debug dumps
package ioutils

import (
	"encoding/json"
	"os"
	"strings"
)

// SanitizeFileName strips characters that would change the meaning of a
// file path.
//
// Talk titles on the portal regularly contain slashes ("TCP/IP", "red/blue
// team"); those are removed rather than replaced so the derived names match
// what the portal's own player shows, minus the separators. NUL bytes are
// removed as well. Surrounding whitespace is trimmed.
//
// Example:
//
//	SanitizeFileName("Talk/Two")  // "TalkTwo"
//	SanitizeFileName(` a\b `)     // "ab"
func SanitizeFileName(name string) string {
	name = strings.NewReplacer("/", "", `\`, "", "\x00", "").Replace(name)
	return strings.TrimSpace(name)
}

// EnsureDir creates the directory at path if it does not already exist.
//
// The check and the create are two separate calls, so a directory that
// appears between them surfaces as an error from os.Mkdir. Parent
// directories must already exist.
func EnsureDir(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.Mkdir(path, 0755)
}

// WriteJSON writes v to path as indented JSON with mode 0644.
//
// Used for the debug playlist dump; the indentation matches what a human
// inspecting the payload expects.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
