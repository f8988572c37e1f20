// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

const binPdftotext = "pdftotext"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) (stdout, stderr []byte, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Output(name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Pdftotext extracts text by running the poppler pdftotext binary, which
// separates pages with form feeds.
type Pdftotext struct {
	exec executor
}

// NewPdftotext returns a Pdftotext backend that runs the binary found on PATH.
func NewPdftotext() *Pdftotext {
	return &Pdftotext{exec: &osExecutor{}}
}

// Pages runs pdftotext on path and splits its output into pages.
func (p *Pdftotext) Pages(path string) ([]string, error) {
	if _, err := p.exec.LookPath(binPdftotext); err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", binPdftotext, err)
	}

	out, errOut, err := p.exec.Output(binPdftotext, "-layout", "-enc", "UTF-8", path, "-")
	if err != nil {
		if msg := strings.TrimSpace(string(errOut)); msg != "" {
			return nil, fmt.Errorf("%s: %s: %w", binPdftotext, msg, err)
		}
		return nil, fmt.Errorf("%s: %w", binPdftotext, err)
	}
	return splitPages(string(out)), nil
}

// splitPages splits pdftotext output on form feeds. pdftotext terminates
// every page with a form feed, so the empty tail segment is dropped.
func splitPages(text string) []string {
	pages := strings.Split(text, "\f")
	if n := len(pages); pages[n-1] == "" {
		pages = pages[:n-1]
	}
	return pages
}
