package crossref

import (
	"fmt"
	"strconv"

	"github.com/mforsythe/bibgen/internal/publication"
)

// MapWork converts a CrossRef works record into a normalized publication.
// It is a pure function with no failure path: partial registry data
// degrades individual fields to empty rather than erroring, and the
// downstream builder tolerates whatever survives.
func MapWork(work Work, doi string) publication.Publication {
	pub := publication.Publication{
		DOI:     doi,
		Type:    work.Type,
		Authors: mapAuthors(work.Author),
		Volume:  work.Volume,
		Issue:   work.Issue,
		Pages:   work.Page,
	}

	if len(work.Title) > 0 {
		pub.Title = work.Title[0]
	}
	if len(work.ContainerTitle) > 0 {
		pub.ContainerTitle = work.ContainerTitle[0]
	}
	if year := work.PublishedPrint.Year(); year != 0 {
		pub.Year = strconv.Itoa(year)
	}

	return pub
}

// mapAuthors renders registry authors as "Given Family" strings in
// registry order. Missing given or family names render as empty strings;
// the author still occupies its position in the sequence.
func mapAuthors(authors []Author) []string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, fmt.Sprintf("%s %s", a.Given, a.Family))
	}
	return names
}
