// Package publication defines the normalized record for a published work.
package publication

// Publication is the normalized view of a registry metadata record.
// All fields are plain strings; an empty string means the registry did
// not provide the value. Authors are "Given Family" strings in registry
// order, which is both the printed order and the order used to pick the
// first author for citation-key derivation.
type Publication struct {
	DOI     string   `json:"doi"`
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Year    string   `json:"year"`
	Type    string   `json:"type"` // Raw registry type tag, e.g. "journal-article"

	// Optional venue details
	ContainerTitle string `json:"container_title,omitempty"`
	Volume         string `json:"volume,omitempty"`
	Issue          string `json:"issue,omitempty"`
	Pages          string `json:"pages,omitempty"`
	Location       string `json:"location,omitempty"` // Never set by registry mapping
}
