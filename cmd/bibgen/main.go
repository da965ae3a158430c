// Package main provides the bibgen CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bibgen",
	Short: "BibTeX citation generator",
	Long: `bibgen generates BibTeX entries for academic works.

Entries can be generated from a DOI or publisher URL by querying the
CrossRef registry, or constructed directly from explicit field values.
All commands output JSON by default for easy integration with other
tools; use --human for plain BibTeX text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
