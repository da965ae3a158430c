package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// EntryResult is the JSON output for commands that produce a BibTeX entry.
type EntryResult struct {
	Key    string `json:"key"`
	Type   string `json:"type"`
	DOI    string `json:"doi,omitempty"`
	BibTeX string `json:"bibtex"`
}

// outputEntry prints an entry result in the selected format. Human output
// is the BibTeX text itself.
func outputEntry(result EntryResult) {
	if humanOutput {
		fmt.Println(result.BibTeX)
		return
	}
	outputJSON(result)
}
