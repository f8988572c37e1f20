// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest reads and writes YAML files that list the documents to
// process, so a batch can be saved once and rerun without retyping paths.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-dump/pkg/types"
)

// File is the on-disk representation of a document list.
type File struct {
	// Paths lists PDF paths in processing order. Relative paths are
	// resolved against the manifest's directory.
	Paths []string `yaml:"documents"`

	// dir is the directory the manifest was read from.
	dir string
}

// Read loads a manifest from disk.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return &f, nil
}

// Write saves a manifest to disk, creating its directory if needed.
func Write(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating manifest directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// FromDocuments builds a manifest listing docs by absolute path, so it
// resolves to the same files wherever the manifest is saved.
func FromDocuments(docs []types.Document) (*File, error) {
	f := &File{Paths: make([]string, len(docs))}
	for i, d := range docs {
		abs, err := filepath.Abs(d.Path)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", d.Path, err)
		}
		f.Paths[i] = abs
	}
	return f, nil
}

// Documents returns the manifest entries as documents, in file order.
// Blank entries are dropped.
func (f *File) Documents() []types.Document {
	paths := make([]string, 0, len(f.Paths))
	for _, p := range f.Paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) && f.dir != "" {
			p = filepath.Join(f.dir, p)
		}
		paths = append(paths, p)
	}
	return types.DocumentsFromPaths(paths)
}
