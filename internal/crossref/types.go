package crossref

// Work is the loosely-structured CrossRef works record. Every field is
// optional in practice; consumers must tolerate any of them being absent.
type Work struct {
	DOI            string    `json:"DOI"`
	Type           string    `json:"type"`
	Title          []string  `json:"title"`
	Author         []Author  `json:"author"`
	PublishedPrint DateParts `json:"published-print"`
	ContainerTitle []string  `json:"container-title"`
	Volume         string    `json:"volume"`
	Issue          string    `json:"issue"`
	Page           string    `json:"page"`
	Publisher      string    `json:"publisher"`
}

// Author is a CrossRef author record.
type Author struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

// DateParts is CrossRef's nested date encoding: the first element of the
// first inner list is the year.
type DateParts struct {
	DateParts [][]int `json:"date-parts"`
}

// Year returns the year from the first date-parts entry, or 0 if absent.
func (d DateParts) Year() int {
	if len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return 0
	}
	return d.DateParts[0][0]
}

// worksEnvelope is the wrapper CrossRef puts around a works response.
type worksEnvelope struct {
	Status  string `json:"status"`
	Message Work   `json:"message"`
}
