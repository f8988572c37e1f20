package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-dump/internal/dump"
	"github.com/pdiddy/pdf-dump/internal/extract"
	"github.com/pdiddy/pdf-dump/internal/manifest"
	"github.com/pdiddy/pdf-dump/internal/secrets"
	"github.com/pdiddy/pdf-dump/pkg/types"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [paths...]",
	Short: "Print the text of PDF documents (same as running pdf-dump alone)",
	Long: `Dump extracts each document's text page by page and prints it to stdout
with document and page banners. Errors for individual documents are printed
in place of their text; the command still exits 0.`,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().String("save-manifest", "", "write the resolved document list to this YAML file before dumping")

	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg := configFrom(viper.GetViper())

	docs, err := resolveDocuments(args, cfg)
	if err != nil {
		return err
	}
	if err := saveManifest(cmd, docs); err != nil {
		return err
	}

	ex, err := newExtractor(cfg)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	dump.Run(ex, docs, out, logger)
	return out.Flush()
}

// resolveDocuments picks the document list: positional args win, then the
// manifest, then the configured list.
func resolveDocuments(args []string, cfg types.DumpConfig) ([]types.Document, error) {
	if len(args) > 0 {
		return types.DocumentsFromPaths(args), nil
	}
	if cfg.Manifest != "" {
		f, err := manifest.Read(cfg.Manifest)
		if err != nil {
			return nil, err
		}
		return f.Documents(), nil
	}
	return types.DocumentsFromPaths(cfg.Documents), nil
}

// newExtractor builds the configured backend with passwords from the
// secrets directory. An unreadable secrets directory leaves every document
// without a password.
func newExtractor(cfg types.DumpConfig) (extract.Extractor, error) {
	store, err := secrets.Load(cfg.SecretsDir, logger)
	if err != nil {
		logger.Warn("ignoring secrets directory", "dir", cfg.SecretsDir, "error", err)
		store = secrets.Store{}
	}
	if store.Len() > 0 {
		logger.Debug("loaded pdf passwords", "dir", cfg.SecretsDir, "count", store.Len())
	}
	return extract.New(cfg.Backend, extract.Options{
		Password: store.Password,
		Logger:   logger,
	})
}

func saveManifest(cmd *cobra.Command, docs []types.Document) error {
	path, _ := cmd.Flags().GetString("save-manifest")
	if path == "" {
		return nil
	}
	f, err := manifest.FromDocuments(docs)
	if err != nil {
		return fmt.Errorf("saving manifest: %w", err)
	}
	if err := manifest.Write(path, f); err != nil {
		return fmt.Errorf("saving manifest: %w", err)
	}
	logger.Info("saved manifest", "path", path, "documents", len(docs))
	return nil
}
