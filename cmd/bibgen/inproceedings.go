package main

import (
	"github.com/mforsythe/bibgen/internal/bibtex"
	"github.com/spf13/cobra"
)

var inprocFlags struct {
	key       string
	title     string
	authors   string
	booktitle string
	year      string
	pages     string
	location  string
	doi       string
}

func init() {
	rootCmd.AddCommand(inproceedingsCmd)
	inproceedingsCmd.Flags().StringVar(&inprocFlags.key, "key", "", "Citation key (required)")
	inproceedingsCmd.Flags().StringVar(&inprocFlags.title, "title", "", "Paper title (required)")
	inproceedingsCmd.Flags().StringVar(&inprocFlags.authors, "authors", "", "Comma-separated author names (required)")
	inproceedingsCmd.Flags().StringVar(&inprocFlags.booktitle, "booktitle", "", "Proceedings title (required)")
	inproceedingsCmd.Flags().StringVar(&inprocFlags.year, "year", "", "Publication year (required)")
	inproceedingsCmd.Flags().StringVar(&inprocFlags.pages, "pages", "", "Page range")
	inproceedingsCmd.Flags().StringVar(&inprocFlags.location, "location", "", "Conference location")
	inproceedingsCmd.Flags().StringVar(&inprocFlags.doi, "doi", "", "DOI")
	for _, name := range []string{"key", "title", "authors", "booktitle", "year"} {
		inproceedingsCmd.MarkFlagRequired(name)
	}
}

var inproceedingsCmd = &cobra.Command{
	Use:   "inproceedings",
	Short: "Build a conference paper entry from explicit fields",
	Long: `Build a BibTeX @inproceedings entry directly from field values,
without any registry lookup.

Examples:
  bibgen inproceedings --key doe2024analysis --title "Analysis of Something" \
    --authors "John Doe" --booktitle "Proceedings of Things" --year 2024 \
    --pages 34-45 --location "New York, NY" --human`,
	RunE: runInProceedings,
}

func runInProceedings(cmd *cobra.Command, args []string) error {
	entry := bibtex.NewInProceedings(
		inprocFlags.key, inprocFlags.title, inprocFlags.authors,
		inprocFlags.booktitle, inprocFlags.year, inprocFlags.pages,
		inprocFlags.location, inprocFlags.doi)

	outputEntry(EntryResult{
		Key:    entry.Key,
		Type:   entry.Type,
		DOI:    inprocFlags.doi,
		BibTeX: entry.String(),
	})
	return nil
}
