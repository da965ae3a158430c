package main

import (
	"github.com/mforsythe/bibgen/internal/bibtex"
	"github.com/spf13/cobra"
)

var articleFlags struct {
	key     string
	title   string
	authors string
	journal string
	year    string
	volume  string
	number  string
	pages   string
	doi     string
}

func init() {
	rootCmd.AddCommand(articleCmd)
	articleCmd.Flags().StringVar(&articleFlags.key, "key", "", "Citation key (required)")
	articleCmd.Flags().StringVar(&articleFlags.title, "title", "", "Article title (required)")
	articleCmd.Flags().StringVar(&articleFlags.authors, "authors", "", "Comma-separated author names (required)")
	articleCmd.Flags().StringVar(&articleFlags.journal, "journal", "", "Journal name (required)")
	articleCmd.Flags().StringVar(&articleFlags.year, "year", "", "Publication year (required)")
	articleCmd.Flags().StringVar(&articleFlags.volume, "volume", "", "Volume")
	articleCmd.Flags().StringVar(&articleFlags.number, "number", "", "Issue number")
	articleCmd.Flags().StringVar(&articleFlags.pages, "pages", "", "Page range")
	articleCmd.Flags().StringVar(&articleFlags.doi, "doi", "", "DOI")
	for _, name := range []string{"key", "title", "authors", "journal", "year"} {
		articleCmd.MarkFlagRequired(name)
	}
}

var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "Build a journal article entry from explicit fields",
	Long: `Build a BibTeX @article entry directly from field values, without
any registry lookup.

Examples:
  bibgen article --key doe2024analysis --title "Analysis of Something" \
    --authors "John Doe, Jane Smith" --journal "Journal of Things" \
    --year 2024 --volume 1 --number 2 --pages 34-45 --human`,
	RunE: runArticle,
}

func runArticle(cmd *cobra.Command, args []string) error {
	entry := bibtex.NewArticle(
		articleFlags.key, articleFlags.title, articleFlags.authors,
		articleFlags.journal, articleFlags.year, articleFlags.volume,
		articleFlags.number, articleFlags.pages, articleFlags.doi)

	outputEntry(EntryResult{
		Key:    entry.Key,
		Type:   entry.Type,
		DOI:    articleFlags.doi,
		BibTeX: entry.String(),
	})
	return nil
}
