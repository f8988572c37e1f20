// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "path/filepath"

// Document references one PDF on the local file system. It is defined at
// startup and never mutated.
type Document struct {
	// Path is the file-system path as given by the user (absolute or relative).
	Path string `json:"path" yaml:"path"`
}

// Name returns the final path segment, used in the document banner.
func (d Document) Name() string {
	return filepath.Base(d.Path)
}

// DocumentsFromPaths builds Document values from raw paths, dropping
// blank entries.
func DocumentsFromPaths(paths []string) []Document {
	docs := make([]Document, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		docs = append(docs, Document{Path: p})
	}
	return docs
}

// Outcome classifies how processing a single document ended.
type Outcome string

const (
	// OutcomeOK means text was extracted (possibly from zero pages).
	OutcomeOK Outcome = "ok"
	// OutcomeMissing means the path did not exist at check time.
	OutcomeMissing Outcome = "missing"
	// OutcomeFailed means the extraction backend returned an error.
	OutcomeFailed Outcome = "failed"
)

// Result holds the outcome of dumping one document.
type Result struct {
	Document Document
	Outcome  Outcome

	// Text is the composed page text; set only when Outcome is OutcomeOK.
	Text string

	// Err is the extraction error; set only when Outcome is OutcomeFailed.
	Err error

	// Pages is the number of pages reported by the backend.
	Pages int

	// TextPages is the number of pages that produced non-empty text.
	TextPages int
}
