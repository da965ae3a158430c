// Package doi resolves free-form identifiers (bare DOIs or publisher
// URLs) to canonical DOI strings.
package doi

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoDOI is returned when no DOI can be extracted from a URL.
var ErrNoDOI = errors.New("no DOI found in URL")

// DOIs appear in many URL shapes across publisher sites. A prioritized
// regex cascade covers the common encodings without a full URL parser;
// first match wins.
//
//  1. doi.org resolver links: doi.org/10.1234/suffix
//  2. a doi: marker anywhere in the string
//  3. a bare prefix/suffix pattern embedded without a marker
var doiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`doi\.org/([^/\s]+/[^/\s]+)`),
	regexp.MustCompile(`doi:([^/\s]+/[^/\s]+)`),
	regexp.MustCompile(`([0-9]+\.[0-9]+/[^/\s]+)`),
}

// Extract attempts to pull a DOI out of a URL. It reports ok=false when
// none of the known patterns match.
func Extract(url string) (string, bool) {
	for _, pattern := range doiPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Resolve turns a free-form identifier into a DOI. Anything that does not
// look like a URL is assumed to already be a DOI and returned unchanged;
// no DOI syntax validation happens here. URLs go through Extract, and a
// URL with no recognizable DOI fails with ErrNoDOI.
func Resolve(identifier string) (string, error) {
	if !looksLikeURL(identifier) {
		return identifier, nil
	}
	d, ok := Extract(identifier)
	if !ok {
		return "", ErrNoDOI
	}
	return d, nil
}

// looksLikeURL reports whether the identifier begins with an http(s)
// scheme.
func looksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
