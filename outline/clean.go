package outline

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// CleanText normalizes a fragment's text for scoring: NFKC normalization,
// line breaks replaced by spaces, whitespace collapsed, and trimmed.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// CleanForOutput normalizes text for the serialized outline. A single
// trailing space is appended; this is an output-format convention of the
// outline consumers, not a semantic requirement.
func CleanForOutput(s string) string {
	s = CleanText(s)
	if s != "" && !strings.HasSuffix(s, " ") {
		s += " "
	}
	return s
}
