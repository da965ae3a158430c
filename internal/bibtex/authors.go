package bibtex

import "strings"

// JoinAuthors joins author names with the BibTeX "and" separator,
// stripping surrounding whitespace from each name. This is the single
// join primitive shared by the list and comma-string adapters.
func JoinAuthors(names []string) string {
	trimmed := make([]string, len(names))
	for i, name := range names {
		trimmed[i] = strings.TrimSpace(name)
	}
	return strings.Join(trimmed, " and ")
}

// FormatAuthorList formats a pre-split author sequence (the shape the
// registry mapper produces).
func FormatAuthorList(names []string) string {
	return JoinAuthors(names)
}

// FormatAuthors formats a raw comma-separated author string (the shape
// manual construction callers supply).
func FormatAuthors(authors string) string {
	return JoinAuthors(strings.Split(authors, ","))
}
