// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Backend identifies the text extraction tool.
type Backend string

const (
	// BackendNative extracts text in-process with the Go PDF reader.
	BackendNative Backend = "native"
	// BackendPdftotext shells out to the poppler pdftotext binary.
	BackendPdftotext Backend = "pdftotext"
	// BackendAuto tries the native reader and falls back to pdftotext.
	BackendAuto Backend = "auto"
)

// DumpConfig holds settings for a dump or inspect run.
type DumpConfig struct {
	// Documents lists PDF paths in processing order.
	Documents []string `json:"documents" yaml:"documents"`

	// Backend selects the extraction tool (default native).
	Backend Backend `json:"backend" yaml:"backend"`

	// SecretsDir holds per-document PDF passwords (default ".secrets").
	SecretsDir string `json:"secrets_dir" yaml:"secrets_dir"`

	// Manifest is an optional YAML file listing documents.
	Manifest string `json:"manifest,omitempty" yaml:"manifest,omitempty"`
}
