package main

import (
	"github.com/joho/godotenv"
	"github.com/mforsythe/bibgen/internal/pdfdoi"
	"github.com/spf13/cobra"
)

var pdfNoCache bool

func init() {
	rootCmd.AddCommand(pdfCmd)
	pdfCmd.Flags().BoolVar(&pdfNoCache, "no-cache", false, "Bypass the local CrossRef response cache")
}

var pdfCmd = &cobra.Command{
	Use:   "pdf <file>",
	Short: "Generate a BibTeX entry from a PDF file",
	Long: `Extract a DOI from the first pages of a PDF and generate a BibTeX
entry for it via the CrossRef registry.

Examples:
  bibgen pdf paper.pdf
  bibgen pdf paper.pdf --human`,
	Args: cobra.ExactArgs(1),
	RunE: runPDF,
}

func runPDF(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	path := args[0]
	d, err := pdfdoi.ExtractDOI(path)
	if err != nil {
		exitWithError(ExitError, "reading %s: %v", path, err)
	}
	if d == "" {
		exitWithError(ExitResolveError, "no DOI found in %s", path)
	}

	generateNoCache = generateNoCache || pdfNoCache
	generateEntry(d)
	return nil
}
