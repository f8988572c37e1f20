// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-dump CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-dump/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger writes diagnostics to stderr; stdout carries only document text.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// rootCmd dumps documents when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "pdf-dump [paths...]",
	Short: "Print the text of PDF documents with document and page banners",
	Long: `pdf-dump extracts the text of each PDF in order and prints it to stdout.
Every document opens with a '#' banner naming the file; every page that has
text opens with a '=' banner giving its page number. Pages without a text
layer are left out.

Documents come from the command line, else from --manifest, else from the
"documents" list in the config file. A missing or unreadable document is
reported inline and never changes the exit status.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(cmd.ErrOrStderr(), viper.GetBool("verbose"))
		return nil
	},
	RunE: runDump,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./pdf-dump.yaml or ~/.config/pdf-dump/pdf-dump.yaml)")
	pf.String("backend", string(types.BackendNative), "extraction backend: native, pdftotext, or auto")
	pf.String("secrets-dir", ".secrets", "directory holding PDF password files")
	pf.String("manifest", "", "YAML file listing documents to process")
	pf.BoolP("verbose", "v", false, "log per-document details to stderr")

	_ = viper.BindPFlag("backend", pf.Lookup("backend"))
	_ = viper.BindPFlag("secrets_dir", pf.Lookup("secrets-dir"))
	_ = viper.BindPFlag("manifest", pf.Lookup("manifest"))
	_ = viper.BindPFlag("verbose", pf.Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-dump")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-dump"))
		}
	}

	viper.SetEnvPrefix("PDF_DUMP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configFrom reads the dump settings out of v.
func configFrom(v *viper.Viper) types.DumpConfig {
	return types.DumpConfig{
		Documents:  v.GetStringSlice("documents"),
		Backend:    types.Backend(v.GetString("backend")),
		SecretsDir: v.GetString("secrets_dir"),
		Manifest:   v.GetString("manifest"),
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
