// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-dump/pkg/types"
)

// fakeExtractor returns canned pages or an error and counts calls.
type fakeExtractor struct {
	pages []string
	err   error
	calls int
}

func (f *fakeExtractor) Pages(path string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.pages, nil
}

func TestNew(t *testing.T) {
	tests := []struct {
		backend types.Backend
		want    any
	}{
		{backend: "", want: &Native{}},
		{backend: types.BackendNative, want: &Native{}},
		{backend: types.BackendPdftotext, want: &Pdftotext{}},
		{backend: types.BackendAuto, want: &Fallback{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			ex, err := New(tt.backend, Options{})
			require.NoError(t, err)
			assert.IsType(t, tt.want, ex)
		})
	}

	_, err := New("grobid", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownBackend))
}

func TestNewAutoWiresPassword(t *testing.T) {
	pw := func(string) string { return "secret" }
	ex, err := New(types.BackendAuto, Options{Password: pw})
	require.NoError(t, err)

	fb := ex.(*Fallback)
	native, ok := fb.Primary.(*Native)
	require.True(t, ok)
	require.NotNil(t, native.Password)
	assert.Equal(t, "secret", native.Password("x.pdf"))
	assert.IsType(t, &Pdftotext{}, fb.Secondary)
}

func TestFallback(t *testing.T) {
	t.Run("primary succeeds", func(t *testing.T) {
		primary := &fakeExtractor{pages: []string{"native"}}
		secondary := &fakeExtractor{pages: []string{"external"}}
		got, err := (&Fallback{Primary: primary, Secondary: secondary}).Pages("a.pdf")
		require.NoError(t, err)
		assert.Equal(t, []string{"native"}, got)
		assert.Equal(t, 0, secondary.calls)
	})

	t.Run("falls back on primary error", func(t *testing.T) {
		primary := &fakeExtractor{err: errors.New("unsupported filter")}
		secondary := &fakeExtractor{pages: []string{"external"}}
		got, err := (&Fallback{Primary: primary, Secondary: secondary}).Pages("a.pdf")
		require.NoError(t, err)
		assert.Equal(t, []string{"external"}, got)
	})

	t.Run("both fail reports primary", func(t *testing.T) {
		primaryErr := errors.New("unsupported filter")
		primary := &fakeExtractor{err: primaryErr}
		secondary := &fakeExtractor{err: errors.New("pdftotext not found on PATH")}
		_, err := (&Fallback{Primary: primary, Secondary: secondary}).Pages("a.pdf")
		require.Error(t, err)
		assert.True(t, errors.Is(err, primaryErr))
		assert.Contains(t, err.Error(), "fallback: pdftotext not found on PATH")
	})
}
