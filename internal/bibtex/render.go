package bibtex

import (
	"fmt"
	"strings"
)

// Field is a single name/value pair in a BibTeX entry. Entries carry an
// ordered slice of fields rather than a map so that emission order is
// fixed and output is byte-identical for identical input.
type Field struct {
	Name  string
	Value string
}

// Render serializes an entry type, citation key, and ordered field list
// into BibTeX text. Fields with empty values are skipped entirely; no
// empty "name = {}" lines are emitted. Values are inserted verbatim with
// no escaping of BibTeX special characters, a known limitation.
func Render(entryType, citationKey string, fields []Field) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType, citationKey))
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", f.Name, f.Value))
	}

	return strings.TrimSuffix(b.String(), ",\n") + "\n}"
}
