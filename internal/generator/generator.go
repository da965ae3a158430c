// Package generator composes identifier resolution, metadata fetching,
// mapping, and serialization into the public citation-generation API.
package generator

import (
	"context"
	"fmt"

	"github.com/mforsythe/bibgen/internal/bibtex"
	"github.com/mforsythe/bibgen/internal/crossref"
	"github.com/mforsythe/bibgen/internal/doi"
)

// Fetcher retrieves the raw registry record for a DOI. The concrete
// implementation is crossref.Client; tests substitute fakes.
type Fetcher interface {
	FetchWork(ctx context.Context, doi string) (*crossref.Work, error)
}

// Generator produces BibTeX entries from identifiers or explicit fields.
type Generator struct {
	fetcher Fetcher
}

// New creates a Generator backed by the given fetcher.
func New(fetcher Fetcher) *Generator {
	return &Generator{fetcher: fetcher}
}

// GenerateFromIdentifier resolves a DOI or URL, fetches its registry
// record, and renders a BibTeX entry. Resolution failures surface before
// any fetch is attempted; fetch failures are wrapped with the underlying
// cause preserved. One fetch per call, no retries.
func (g *Generator) GenerateFromIdentifier(ctx context.Context, identifier string) (string, error) {
	entry, err := g.BuildFromIdentifier(ctx, identifier)
	if err != nil {
		return "", err
	}
	return entry.String(), nil
}

// BuildFromIdentifier is GenerateFromIdentifier without the final
// serialization, for callers that want the structured entry.
func (g *Generator) BuildFromIdentifier(ctx context.Context, identifier string) (bibtex.Entry, error) {
	resolved, err := doi.Resolve(identifier)
	if err != nil {
		return bibtex.Entry{}, fmt.Errorf("resolving identifier %q: %w", identifier, err)
	}

	work, err := g.fetcher.FetchWork(ctx, resolved)
	if err != nil {
		return bibtex.Entry{}, fmt.Errorf("fetching metadata for %s: %w", resolved, err)
	}

	pub := crossref.MapWork(*work, resolved)
	return bibtex.Build(pub), nil
}

// ArticleFields holds the explicit field values for a manually
// constructed journal article entry. Authors is a raw comma-separated
// string.
type ArticleFields struct {
	CitationKey string
	Title       string
	Authors     string
	Journal     string
	Year        string
	Volume      string
	Number      string
	Pages       string
	DOI         string
}

// InProceedingsFields holds the explicit field values for a manually
// constructed conference paper entry. Authors is a raw comma-separated
// string.
type InProceedingsFields struct {
	CitationKey string
	Title       string
	Authors     string
	Booktitle   string
	Year        string
	Pages       string
	Location    string
	DOI         string
}

// CreateArticle renders a journal article entry from explicit fields,
// bypassing the fetch pipeline.
func CreateArticle(f ArticleFields) string {
	return bibtex.NewArticle(f.CitationKey, f.Title, f.Authors, f.Journal,
		f.Year, f.Volume, f.Number, f.Pages, f.DOI).String()
}

// CreateInProceedings renders a conference paper entry from explicit
// fields, bypassing the fetch pipeline.
func CreateInProceedings(f InProceedingsFields) string {
	return bibtex.NewInProceedings(f.CitationKey, f.Title, f.Authors, f.Booktitle,
		f.Year, f.Pages, f.Location, f.DOI).String()
}

// ExtractDOI exposes the URL-extraction step alone.
func ExtractDOI(url string) (string, bool) {
	return doi.Extract(url)
}
