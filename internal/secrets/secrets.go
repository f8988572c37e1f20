// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads PDF passwords from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key
// and the file contents (trimmed) are the value.
//
// A file named "<document name>.password" (for example
// "HGQS MAIN MANUAL (REV).pdf.password") holds the password for that
// document. A file named "pdf-password" is used for every other document.
package secrets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultPasswordKey names the secret used when no per-document password exists.
	DefaultPasswordKey = "pdf-password"

	passwordSuffix = ".password"
)

// Store maps secret names to values.
type Store map[string]string

// Load reads all files in dir and returns a Store of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty
// Store. Unreadable files are logged and skipped.
func Load(dir string, log *slog.Logger) (Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(Store)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if log != nil {
				log.Warn("could not read secret", "name", name, "error", err)
			}
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Password returns the password for the PDF at path: the per-document
// secret if present, else the default, else "".
func (s Store) Password(path string) string {
	if v, ok := s[filepath.Base(path)+passwordSuffix]; ok {
		return v
	}
	return s[DefaultPasswordKey]
}

// Len returns the number of loaded secrets.
func (s Store) Len() int {
	return len(s)
}
