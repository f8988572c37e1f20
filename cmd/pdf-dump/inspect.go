package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-dump/internal/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [paths...]",
	Short: "Print the page count of each PDF document",
	Long: `Inspect reads each document's page tree with pdfcpu and prints one
tab-separated line per document: the file name and its page count, or the
reason it could not be read.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := resolveDocuments(args, configFrom(viper.GetViper()))
		if err != nil {
			return err
		}
		rep := inspect.Run(inspect.PDFCPU{}, docs, cmd.OutOrStdout())
		logger.Info("inspect complete", "documents", rep.Documents, "pages", rep.Pages, "errors", rep.Errors)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
