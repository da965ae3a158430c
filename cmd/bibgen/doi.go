package main

import (
	"fmt"

	"github.com/mforsythe/bibgen/internal/doi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doiCmd)
}

// DOIResult is the JSON output for the doi command.
type DOIResult struct {
	URL string `json:"url"`
	DOI string `json:"doi"`
}

var doiCmd = &cobra.Command{
	Use:   "doi <url>",
	Short: "Extract a DOI from a publisher URL",
	Long: `Extract a DOI from a publisher URL without fetching any metadata.

Examples:
  bibgen doi https://doi.org/10.1038/nature12373
  bibgen doi https://example.com/article/doi:10.1234/example.123`,
	Args: cobra.ExactArgs(1),
	RunE: runDOI,
}

func runDOI(cmd *cobra.Command, args []string) error {
	url := args[0]
	d, ok := doi.Extract(url)
	if !ok {
		exitWithError(ExitResolveError, "no DOI found in %s", url)
	}

	if humanOutput {
		fmt.Println(d)
		return nil
	}
	return outputJSON(DOIResult{URL: url, DOI: d})
}
