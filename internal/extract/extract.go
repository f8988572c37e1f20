// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns a PDF file into per-page plain text with pluggable
// backends. PDF parsing itself is delegated: the native backend uses
// github.com/ledongthuc/pdf and the pdftotext backend shells out to poppler.
package extract

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pdiddy/pdf-dump/pkg/types"
)

var (
	// ErrUnknownBackend is returned by New for an unrecognised backend name.
	ErrUnknownBackend = errors.New("unknown extraction backend")

	// ErrPanic marks a panic raised inside a PDF library and recovered here.
	ErrPanic = errors.New("pdf library panic")
)

// Extractor reads a PDF and returns the text of each page. Different
// backends (native reader, pdftotext) implement this interface.
type Extractor interface {
	// Pages returns one string per page in physical order, page 1 first.
	// A page without an extractable text layer yields "".
	Pages(path string) ([]string, error)
}

// PasswordFunc returns the password for the PDF at path, or "" when none
// is configured.
type PasswordFunc func(path string) string

// Options configures the extractors built by New.
type Options struct {
	Password PasswordFunc
	Logger   *slog.Logger
}

// New builds the extractor for backend. An empty backend selects the
// native reader.
func New(backend types.Backend, opts Options) (Extractor, error) {
	switch backend {
	case "", types.BackendNative:
		return &Native{Password: opts.Password}, nil
	case types.BackendPdftotext:
		return NewPdftotext(), nil
	case types.BackendAuto:
		return &Fallback{
			Primary:   &Native{Password: opts.Password},
			Secondary: NewPdftotext(),
			Logger:    opts.Logger,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want native, pdftotext, or auto)", ErrUnknownBackend, backend)
	}
}

// guard runs fn and converts a panic into an error wrapping ErrPanic.
func guard(fn func() ([]string, error)) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return fn()
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
