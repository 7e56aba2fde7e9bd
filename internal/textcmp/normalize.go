package textcmp

import (
	"regexp"
	"strings"
)

// whitespacePattern matches runs of whitespace for collapsing.
var whitespacePattern = regexp.MustCompile(`\s+`)

// Normalize canonicalizes dialogue text for comparison: forced line break
// markers (\N) become single spaces, whitespace runs collapse to one space,
// and leading/trailing whitespace is trimmed.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, `\N`, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
