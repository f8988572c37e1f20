// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdf-dump/internal/pdftest"
)

func TestNativePages(t *testing.T) {
	dir := t.TempDir()
	path := pdftest.WriteFile(t, dir, "three.pdf", "Hello page one", "", "Page three text")

	pages, err := (&Native{}).Pages(path)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	assert.Contains(t, pages[0], "Hello page one")
	assert.Empty(t, pages[1], "page without text layer should yield empty text")
	assert.Contains(t, pages[2], "Page three text")
}

func TestNativePagesWithPassword(t *testing.T) {
	// An unencrypted file opens the same way when a password is configured.
	dir := t.TempDir()
	path := pdftest.WriteFile(t, dir, "plain.pdf", "visible")

	var asked string
	n := &Native{Password: func(p string) string {
		asked = p
		return "hunter2"
	}}
	pages, err := n.Pages(path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Contains(t, pages[0], "visible")
	assert.Equal(t, path, asked)
}

// writeEncrypted writes an RC4-128 encrypted PDF protected by userPW.
func writeEncrypted(t *testing.T, dir, userPW string, pages ...string) string {
	t.Helper()
	plain := pdftest.WriteFile(t, dir, "plain.pdf", pages...)
	out := filepath.Join(dir, "locked.pdf")

	conf := model.NewRC4Configuration(userPW, "owner-"+userPW, 128)
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false
	require.NoError(t, api.EncryptFile(plain, out, conf))
	return out
}

func TestNativePagesEncrypted(t *testing.T) {
	path := writeEncrypted(t, t.TempDir(), "crew-2024", "Confidential roster", "")

	tests := []struct {
		name     string
		password PasswordFunc
		wantErr  error
	}{
		{
			name:     "correct password",
			password: func(string) string { return "crew-2024" },
		},
		{
			name:     "wrong password",
			password: func(string) string { return "guess" },
			wantErr:  pdflib.ErrInvalidPassword,
		},
		{
			name:    "no password configured",
			wantErr: pdflib.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			n := &Native{}
			if tt.password != nil {
				n.Password = func(p string) string {
					calls++
					return tt.password(p)
				}
			}

			pages, err := n.Pages(path)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, pages)
			} else {
				require.NoError(t, err)
				require.Len(t, pages, 2)
				assert.Contains(t, pages[0], "Confidential roster")
				assert.Empty(t, pages[1])
			}
			if tt.password != nil {
				assert.Equal(t, 1, calls, "password should be looked up once per document")
			}
		})
	}
}

func TestNativePagesErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.pdf")
			},
		},
		{
			name: "not a pdf",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "notes.pdf")
				require.NoError(t, os.WriteFile(path, []byte("just some text, no header"), 0o644))
				return path
			},
		},
		{
			name: "truncated pdf",
			setup: func(t *testing.T) string {
				data := pdftest.Build("cut short")
				path := filepath.Join(t.TempDir(), "truncated.pdf")
				require.NoError(t, os.WriteFile(path, data[:len(data)/2], 0o644))
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := (&Native{}).Pages(tt.setup(t))
			require.Error(t, err)
			assert.Nil(t, pages)
		})
	}
}

func TestGuard(t *testing.T) {
	pages, err := guard(func() ([]string, error) {
		panic("malformed xref")
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPanic))
	assert.Contains(t, err.Error(), "malformed xref")
	assert.Nil(t, pages)

	pages, err = guard(func() ([]string, error) {
		return []string{"a"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, pages)
}
