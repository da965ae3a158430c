// Package bibtex builds and serializes BibTeX entries.
package bibtex

import (
	"strings"

	"github.com/mforsythe/bibgen/internal/publication"
)

// Kind is the closed set of entry kinds the builder produces.
type Kind int

const (
	// KindArticle is a journal article entry.
	KindArticle Kind = iota
	// KindInProceedings is a conference paper entry.
	KindInProceedings
	// KindGeneric is the fallback for registry types with no dedicated
	// mapping; it carries the raw registry type as the entry-type name.
	KindGeneric
)

// Registry type tags with dedicated entry kinds.
const (
	typeJournalArticle     = "journal-article"
	typeProceedingsArticle = "proceedings-article"
)

// Placeholder tokens used when citation-key inputs are missing.
const (
	placeholderAuthor = "unknown"
	placeholderTitle  = "untitled"
)

// Entry is a typed BibTeX entry: a kind, the entry-type name that will be
// printed, a citation key, and an ordered field list.
type Entry struct {
	Kind Kind
	Type string
	Key  string
	// Fields holds name/value pairs in emission order. Empty values are
	// kept here and skipped at render time.
	Fields []Field
}

// String renders the entry as BibTeX text.
func (e Entry) String() string {
	return Render(e.Type, e.Key, e.Fields)
}

// FieldNamed returns the value of the named field and whether it is
// present with a non-empty value.
func (e Entry) FieldNamed(name string) (string, bool) {
	for _, f := range e.Fields {
		if f.Name == name && f.Value != "" {
			return f.Value, true
		}
	}
	return "", false
}

// Build selects an entry kind for a normalized publication and assembles
// its citation key and ordered field mapping.
func Build(pub publication.Publication) Entry {
	key := CiteKey(pub)
	author := FormatAuthorList(pub.Authors)

	switch pub.Type {
	case typeJournalArticle:
		return Entry{
			Kind:   KindArticle,
			Type:   "article",
			Key:    key,
			Fields: articleFields(author, pub),
		}
	case typeProceedingsArticle:
		return Entry{
			Kind: KindInProceedings,
			Type: "inproceedings",
			Key:  key,
			Fields: []Field{
				{"author", author},
				{"title", pub.Title},
				{"booktitle", pub.ContainerTitle},
				{"year", pub.Year},
				{"pages", pub.Pages},
				{"address", pub.Location},
				{"doi", pub.DOI},
			},
		}
	default:
		entryType := pub.Type
		if entryType == "" {
			entryType = "misc"
		}
		return Entry{
			Kind:   KindGeneric,
			Type:   entryType,
			Key:    key,
			Fields: articleFields(author, pub),
		}
	}
}

// articleFields is the field order shared by article entries and the
// generic fallback: author, title, journal, year, volume, number, pages,
// doi.
func articleFields(author string, pub publication.Publication) []Field {
	return []Field{
		{"author", author},
		{"title", pub.Title},
		{"journal", pub.ContainerTitle},
		{"year", pub.Year},
		{"volume", pub.Volume},
		{"number", pub.Issue},
		{"pages", pub.Pages},
		{"doi", pub.DOI},
	}
}

// CiteKey derives a citation key from the first author's family name, the
// year, and the first word of the title, all lowercased. Missing authors
// or title degrade to placeholder tokens instead of failing; keys are not
// checked for collisions (caller's concern).
func CiteKey(pub publication.Publication) string {
	family := placeholderAuthor
	if len(pub.Authors) > 0 {
		// Family name is the token after the last space in "Given Family".
		if parts := strings.Fields(pub.Authors[0]); len(parts) > 0 {
			family = strings.ToLower(parts[len(parts)-1])
		}
	}

	word := placeholderTitle
	if parts := strings.Fields(pub.Title); len(parts) > 0 {
		word = strings.ToLower(parts[0])
	}

	return family + pub.Year + word
}

// NewArticle builds a journal article entry from explicit field values.
// The authors argument is a raw comma-separated string.
func NewArticle(citationKey, title, authors, journal, year, volume, number, pages, doi string) Entry {
	return Entry{
		Kind: KindArticle,
		Type: "article",
		Key:  citationKey,
		Fields: []Field{
			{"author", FormatAuthors(authors)},
			{"title", title},
			{"journal", journal},
			{"year", year},
			{"volume", volume},
			{"number", number},
			{"pages", pages},
			{"doi", doi},
		},
	}
}

// NewInProceedings builds a conference paper entry from explicit field
// values. The authors argument is a raw comma-separated string.
func NewInProceedings(citationKey, title, authors, booktitle, year, pages, location, doi string) Entry {
	return Entry{
		Kind: KindInProceedings,
		Type: "inproceedings",
		Key:  citationKey,
		Fields: []Field{
			{"author", FormatAuthors(authors)},
			{"title", title},
			{"booktitle", booktitle},
			{"year", year},
			{"pages", pages},
			{"address", location},
			{"doi", doi},
		},
	}
}
