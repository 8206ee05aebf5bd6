package extract

import (
	"regexp"
	"strings"
)

// exampleMarker matches placeholder hints like "Example: zavegepant" or
// "e.g. example: CRISPR". The first token after the marker is the term.
var exampleMarker = regexp.MustCompile(`(?i)example\s*:\s*(\S+)`)

// deriveTerm pulls a default search term out of placeholder-style hint
// text. Returns "" when no marker is present.
func deriveTerm(hint string) string {
	m := exampleMarker.FindStringSubmatch(hint)
	if m == nil {
		return ""
	}
	return strings.Trim(m[1], `.,;:'")`)
}
