// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dump prints the text of a batch of PDF documents, framing each
// document with a '#' banner and each page that has text with a '=' banner.
// Per-file failures are printed in place of the text and never stop the batch.
package dump

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pdiddy/pdf-dump/internal/extract"
	"github.com/pdiddy/pdf-dump/pkg/types"
)

const (
	documentRuleWidth = 100
	pageRuleWidth     = 80
)

var (
	documentRule = strings.Repeat("#", documentRuleWidth)
	pageRule     = strings.Repeat("=", pageRuleWidth)
)

// Summary holds the outcome counts of a batch run.
type Summary struct {
	OK      int
	Missing int
	Failed  int
}

// Total returns the number of documents processed.
func (s Summary) Total() int {
	return s.OK + s.Missing + s.Failed
}

// HasFailures reports whether any document was missing or failed extraction.
func (s Summary) HasFailures() bool {
	return s.Missing > 0 || s.Failed > 0
}

// Run dumps docs in order to w. It always processes every document and
// never returns an error; the summary is informational only.
func Run(ex extract.Extractor, docs []types.Document, w io.Writer, log *slog.Logger) Summary {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var sum Summary
	for _, d := range docs {
		WriteDocumentBanner(w, d)

		r := DumpFile(ex, d)
		WriteResult(w, r)

		switch r.Outcome {
		case types.OutcomeOK:
			sum.OK++
			log.Debug("dumped document", "path", d.Path, "pages", r.Pages, "text_pages", r.TextPages)
		case types.OutcomeMissing:
			sum.Missing++
			log.Warn("document not found", "path", d.Path)
		case types.OutcomeFailed:
			sum.Failed++
			log.Warn("document extraction failed", "path", d.Path, "error", r.Err)
		}
	}

	log.Info("dump complete",
		"total", sum.Total(), "ok", sum.OK, "missing", sum.Missing, "failed", sum.Failed)
	return sum
}

// DumpFile checks that d exists and extracts its pages. It does not write
// anything; the returned Result carries either the composed text or the
// reason there is none.
func DumpFile(ex extract.Extractor, d types.Document) types.Result {
	r := types.Result{Document: d}

	if _, err := os.Stat(d.Path); err != nil {
		r.Outcome = types.OutcomeMissing
		return r
	}

	pages, err := ex.Pages(d.Path)
	if err != nil {
		r.Outcome = types.OutcomeFailed
		r.Err = err
		return r
	}

	r.Outcome = types.OutcomeOK
	r.Pages = len(pages)
	r.Text, r.TextPages = ComposePages(pages)
	return r
}

// ComposePages joins page texts, each preceded by a PAGE banner numbered
// from 1. Pages with empty text get no banner and are left out. It also
// returns how many pages were written.
func ComposePages(pages []string) (string, int) {
	var b strings.Builder
	n := 0
	for i, text := range pages {
		if text == "" {
			continue
		}
		n++
		fmt.Fprintf(&b, "\n%s\nPAGE %d\n%s\n", pageRule, i+1, pageRule)
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), n
}

// WriteDocumentBanner writes the header block that opens each document
// section: two blank lines, the DOCUMENT banner, and one blank line.
func WriteDocumentBanner(w io.Writer, d types.Document) {
	fmt.Fprintf(w, "\n\n%s\n# DOCUMENT: %s\n%s\n\n", documentRule, d.Name(), documentRule)
}

// WriteResult writes the body of a document section.
func WriteResult(w io.Writer, r types.Result) {
	switch r.Outcome {
	case types.OutcomeMissing:
		fmt.Fprintf(w, "File not found: %s\n", r.Document.Path)
	case types.OutcomeFailed:
		fmt.Fprintf(w, "Error reading %s: %v\n", r.Document.Path, r.Err)
	default:
		fmt.Fprintf(w, "%s\n", r.Text)
	}
}
