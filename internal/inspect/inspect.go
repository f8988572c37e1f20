// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect reports page counts for a batch of PDF documents.
package inspect

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pdiddy/pdf-dump/pkg/types"
)

// Counter reports the number of pages in a PDF.
type Counter interface {
	PageCount(path string) (int, error)
}

// PDFCPU counts pages with github.com/pdfcpu/pdfcpu.
type PDFCPU struct{}

// PageCount reads the document's page tree and returns its page count.
func (PDFCPU) PageCount(path string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("pdfcpu panic: %v", r)
		}
	}()
	return api.PageCountFile(path)
}

// Report holds the outcome counts of an inspect run.
type Report struct {
	Documents int
	Pages     int
	Errors    int
}

// Run writes one tab-separated line per document to w: the document name
// followed by its page count or the reason it could not be counted.
func Run(c Counter, docs []types.Document, w io.Writer) Report {
	var rep Report
	for _, d := range docs {
		rep.Documents++
		if _, err := os.Stat(d.Path); err != nil {
			rep.Errors++
			fmt.Fprintf(w, "%s\tFile not found: %s\n", d.Name(), d.Path)
			continue
		}
		n, err := c.PageCount(d.Path)
		if err != nil {
			rep.Errors++
			fmt.Fprintf(w, "%s\terror: %v\n", d.Name(), err)
			continue
		}
		rep.Pages += n
		fmt.Fprintf(w, "%s\t%d pages\n", d.Name(), n)
	}
	return rep
}
