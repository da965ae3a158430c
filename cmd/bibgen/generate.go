package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mforsythe/bibgen/internal/cache"
	"github.com/mforsythe/bibgen/internal/config"
	"github.com/mforsythe/bibgen/internal/crossref"
	"github.com/mforsythe/bibgen/internal/doi"
	"github.com/mforsythe/bibgen/internal/generator"
	"github.com/spf13/cobra"
)

var generateNoCache bool

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().BoolVar(&generateNoCache, "no-cache", false, "Bypass the local CrossRef response cache")
}

var generateCmd = &cobra.Command{
	Use:   "generate <doi-or-url>",
	Short: "Generate a BibTeX entry from a DOI or URL",
	Long: `Generate a BibTeX entry by resolving a DOI or publisher URL against
the CrossRef registry.

The identifier may be a bare DOI or any URL containing one:

Examples:
  bibgen generate 10.1038/nature12373
  bibgen generate https://doi.org/10.1038/nature12373
  bibgen generate https://example.com/article/doi:10.1234/example.123
  bibgen generate 10.1038/nature12373 --human`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	generateEntry(args[0])
	return nil
}

// generateEntry runs the full pipeline for an identifier and prints the
// result, exiting on failure. Shared by generate and pdf.
func generateEntry(identifier string) {
	gen := generator.New(newFetcher())

	entry, err := gen.BuildFromIdentifier(context.Background(), identifier)
	if err != nil {
		if errors.Is(err, doi.ErrNoDOI) {
			exitWithError(ExitResolveError, "%v", err)
		}
		exitWithError(ExitAPIError, "%v", err)
	}

	entryDOI, _ := entry.FieldNamed("doi")
	outputEntry(EntryResult{
		Key:    entry.Key,
		Type:   entry.Type,
		DOI:    entryDOI,
		BibTeX: entry.String(),
	})
}

// newFetcher builds the CrossRef fetcher, wrapped with the response cache
// unless disabled by flag or config.
func newFetcher() generator.Fetcher {
	var opts []crossref.ClientOption
	if mailto := config.GetMailto(); mailto != "" {
		opts = append(opts, crossref.WithMailto(mailto))
	}
	if baseURL := config.GetAPIBaseURL(); baseURL != "" {
		opts = append(opts, crossref.WithBaseURL(baseURL))
	}
	client := crossref.NewClient(opts...)

	if generateNoCache || config.CacheDisabled() {
		return client
	}

	path := cache.DefaultPath()
	if path == "" {
		return client
	}
	db, err := cache.Open(path)
	if err != nil {
		// Cache trouble should not block generation
		fmt.Fprintf(os.Stderr, "warning: cache unavailable: %v\n", err)
		return client
	}
	return &cachedFetcher{client: client, db: db}
}

// cachedFetcher serves works records from the local cache, falling back
// to the CrossRef client on a miss and storing what it fetched.
type cachedFetcher struct {
	client *crossref.Client
	db     *cache.DB
}

func (c *cachedFetcher) FetchWork(ctx context.Context, d string) (*crossref.Work, error) {
	if raw, ok, err := c.db.Get(d); err == nil && ok {
		var work crossref.Work
		if json.Unmarshal(raw, &work) == nil {
			return &work, nil
		}
		// Corrupt cache entry: fall through to a fresh fetch
	}

	work, err := c.client.FetchWork(ctx, d)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(work); err == nil {
		if err := c.db.Put(d, raw); err != nil {
			fmt.Fprintf(os.Stderr, "warning: caching response: %v\n", err)
		}
	}

	return work, nil
}
