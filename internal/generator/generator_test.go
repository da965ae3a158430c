package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mforsythe/bibgen/internal/crossref"
	"github.com/mforsythe/bibgen/internal/doi"
)

// fakeFetcher serves canned works records keyed by DOI.
type fakeFetcher struct {
	works map[string]*crossref.Work
	err   error
	calls int
}

func (f *fakeFetcher) FetchWork(ctx context.Context, d string) (*crossref.Work, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	work, ok := f.works[d]
	if !ok {
		return nil, crossref.ErrNotFound
	}
	return work, nil
}

func testWork() *crossref.Work {
	return &crossref.Work{
		DOI:            "10.1234/example.123",
		Type:           "journal-article",
		Title:          []string{"Test Article"},
		Author:         []crossref.Author{{Given: "John", Family: "Doe"}},
		PublishedPrint: crossref.DateParts{DateParts: [][]int{{2024}}},
		ContainerTitle: []string{"Test Journal"},
	}
}

func TestGenerateFromIdentifier_BareDOI(t *testing.T) {
	fetcher := &fakeFetcher{works: map[string]*crossref.Work{
		"10.1234/example.123": testWork(),
	}}
	gen := New(fetcher)

	got, err := gen.GenerateFromIdentifier(context.Background(), "10.1234/example.123")
	if err != nil {
		t.Fatalf("GenerateFromIdentifier() error = %v", err)
	}

	if !strings.HasPrefix(got, "@article{doe2024test,") {
		t.Errorf("entry should start with @article{doe2024test, got:\n%s", got)
	}
	if !strings.Contains(got, "author = {John Doe}") {
		t.Errorf("entry should contain author, got:\n%s", got)
	}
	if !strings.Contains(got, "journal = {Test Journal}") {
		t.Errorf("entry should contain journal, got:\n%s", got)
	}
	if !strings.Contains(got, "doi = {10.1234/example.123}") {
		t.Errorf("entry should contain doi, got:\n%s", got)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetch calls = %d, want exactly one fetch per resolution", fetcher.calls)
	}
}

func TestGenerateFromIdentifier_URL(t *testing.T) {
	fetcher := &fakeFetcher{works: map[string]*crossref.Work{
		"10.1234/example.123": testWork(),
	}}
	gen := New(fetcher)

	got, err := gen.GenerateFromIdentifier(context.Background(), "https://doi.org/10.1234/example.123")
	if err != nil {
		t.Fatalf("GenerateFromIdentifier() error = %v", err)
	}
	if !strings.HasPrefix(got, "@article{doe2024test,") {
		t.Errorf("entry should start with @article{doe2024test, got:\n%s", got)
	}
}

func TestGenerateFromIdentifier_UnresolvableURL(t *testing.T) {
	fetcher := &fakeFetcher{}
	gen := New(fetcher)

	_, err := gen.GenerateFromIdentifier(context.Background(), "https://invalid-url.com")
	if !errors.Is(err, doi.ErrNoDOI) {
		t.Fatalf("GenerateFromIdentifier() error = %v, want ErrNoDOI", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetch calls = %d, resolution failure must not reach the fetcher", fetcher.calls)
	}
}

func TestGenerateFromIdentifier_FetchErrorWrapped(t *testing.T) {
	fetcher := &fakeFetcher{err: crossref.ErrNetworkError}
	gen := New(fetcher)

	_, err := gen.GenerateFromIdentifier(context.Background(), "10.1234/example.123")
	if !errors.Is(err, crossref.ErrNetworkError) {
		t.Fatalf("GenerateFromIdentifier() error = %v, want wrapped network error", err)
	}
	if !strings.Contains(err.Error(), "10.1234/example.123") {
		t.Errorf("error should name the DOI, got: %v", err)
	}
}

func TestGenerateFromIdentifier_ProceedingsKind(t *testing.T) {
	work := testWork()
	work.Type = "proceedings-article"
	work.ContainerTitle = []string{"Proceedings of Things"}
	fetcher := &fakeFetcher{works: map[string]*crossref.Work{
		"10.1234/example.123": work,
	}}
	gen := New(fetcher)

	got, err := gen.GenerateFromIdentifier(context.Background(), "10.1234/example.123")
	if err != nil {
		t.Fatalf("GenerateFromIdentifier() error = %v", err)
	}
	if !strings.HasPrefix(got, "@inproceedings{") {
		t.Errorf("entry should be @inproceedings, got:\n%s", got)
	}
	if !strings.Contains(got, "booktitle = {Proceedings of Things}") {
		t.Errorf("entry should contain booktitle, got:\n%s", got)
	}
}

func TestGenerateFromIdentifier_SparseRecord(t *testing.T) {
	// Registry records can be nearly empty; generation still succeeds
	// with degraded fields.
	fetcher := &fakeFetcher{works: map[string]*crossref.Work{
		"10.1234/sparse": {},
	}}
	gen := New(fetcher)

	got, err := gen.GenerateFromIdentifier(context.Background(), "10.1234/sparse")
	if err != nil {
		t.Fatalf("GenerateFromIdentifier() error = %v", err)
	}
	if !strings.HasPrefix(got, "@misc{unknownuntitled,") {
		t.Errorf("sparse record should degrade to placeholders, got:\n%s", got)
	}
	if !strings.Contains(got, "doi = {10.1234/sparse}") {
		t.Errorf("entry should keep the resolved DOI, got:\n%s", got)
	}
}

func TestCreateArticle(t *testing.T) {
	got := CreateArticle(ArticleFields{
		CitationKey: "doe2024analysis",
		Title:       "Analysis of Something",
		Authors:     "John Doe, Jane Smith",
		Journal:     "Journal of Things",
		Year:        "2024",
		Volume:      "1",
		Number:      "2",
		Pages:       "34-45",
		DOI:         "10.1234/example.123",
	})

	if !strings.HasPrefix(got, "@article{doe2024analysis,") {
		t.Errorf("CreateArticle() should produce @article, got:\n%s", got)
	}
	if !strings.Contains(got, "author = {John Doe and Jane Smith}") {
		t.Errorf("CreateArticle() should format authors, got:\n%s", got)
	}
}

func TestCreateInProceedings(t *testing.T) {
	got := CreateInProceedings(InProceedingsFields{
		CitationKey: "doe2024analysis",
		Title:       "Analysis of Something",
		Authors:     "John Doe",
		Booktitle:   "Proceedings of Things",
		Year:        "2024",
		Location:    "New York, NY",
	})

	if !strings.HasPrefix(got, "@inproceedings{doe2024analysis,") {
		t.Errorf("CreateInProceedings() should produce @inproceedings, got:\n%s", got)
	}
	if !strings.Contains(got, "address = {New York, NY}") {
		t.Errorf("CreateInProceedings() should map location to address, got:\n%s", got)
	}
}

func TestExtractDOI(t *testing.T) {
	if got, ok := ExtractDOI("https://doi.org/10.1234/example.123"); !ok || got != "10.1234/example.123" {
		t.Errorf("ExtractDOI() = %q, %v", got, ok)
	}
	if _, ok := ExtractDOI("https://invalid-url.com"); ok {
		t.Error("ExtractDOI() should report absent for URL without DOI")
	}
}
