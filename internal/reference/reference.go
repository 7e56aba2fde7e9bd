// Package reference extracts cross-episode reference markers from subtitle
// event lines. Two independent grammars exist: an explicit tag naming a
// target folder and event ordinals (MARKER-NN-[L1,L2,...]), and a bare
// keyword followed by a 1-3 digit episode number whose surrounding line
// text becomes the search payload.
package reference

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultMarker is the explicit-tag literal used when none is configured.
const DefaultMarker = "CR"

// DefaultKeywords are the keyword-mode literals used when none are configured.
var DefaultKeywords = []string{"replay", "preview"}

// Explicit is a parsed explicit-mode reference tag.
type Explicit struct {
	// Folder is the target folder identifier, zero-padded to width 2.
	Folder string
	// Ordinals are 1-based positions in the target file's event sequence.
	Ordinals []int
}

// Descriptor renders the tag the way it is reported, e.g. "CR-03-[5,6]".
func (e Explicit) Descriptor(marker string) string {
	parts := make([]string, len(e.Ordinals))
	for i, n := range e.Ordinals {
		parts[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("%s-%s-[%s]", marker, e.Folder, strings.Join(parts, ","))
}

// Keyword is a parsed keyword-mode reference.
type Keyword struct {
	// Word is the matched keyword, lowercased.
	Word string
	// Folder is the target folder identifier, zero-padded to width 2.
	Folder string
}

// Descriptor renders the reference the way it is reported, e.g. "preview 12".
func (k Keyword) Descriptor() string {
	return k.Word + " " + k.Folder
}

// ExplicitMatcher finds explicit reference tags for a configured marker.
type ExplicitMatcher struct {
	pattern *regexp.Regexp
}

// NewExplicitMatcher compiles the tag grammar MARKER-NN-[L1,L2,...] for the
// given marker literal. An empty marker falls back to DefaultMarker.
func NewExplicitMatcher(marker string) *ExplicitMatcher {
	marker = strings.TrimSpace(marker)
	if marker == "" {
		marker = DefaultMarker
	}
	pattern := regexp.MustCompile(regexp.QuoteMeta(marker) + `-(\d+)-\[([0-9,\s]+)\]`)
	return &ExplicitMatcher{pattern: pattern}
}

// Find extracts the first explicit reference tag from the line. Malformed
// payloads (empty bracket list, non-integer entries) yield no reference.
func (m *ExplicitMatcher) Find(line string) (Explicit, bool) {
	match := m.pattern.FindStringSubmatch(line)
	if match == nil {
		return Explicit{}, false
	}
	ordinals, ok := parseOrdinals(match[2])
	if !ok {
		return Explicit{}, false
	}
	return Explicit{Folder: PadFolder(match[1]), Ordinals: ordinals}, true
}

// KeywordMatcher finds keyword references for a configured keyword set.
type KeywordMatcher struct {
	pattern *regexp.Regexp
}

// NewKeywordMatcher compiles the keyword grammar: any configured keyword,
// case-insensitive, followed by whitespace and a 1-3 digit number. An empty
// set falls back to DefaultKeywords.
func NewKeywordMatcher(keywords []string) *KeywordMatcher {
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			cleaned = append(cleaned, regexp.QuoteMeta(kw))
		}
	}
	if len(cleaned) == 0 {
		for _, kw := range DefaultKeywords {
			cleaned = append(cleaned, regexp.QuoteMeta(kw))
		}
	}
	pattern := regexp.MustCompile(`(?i)(` + strings.Join(cleaned, "|") + `)\s+(\d{1,3})`)
	return &KeywordMatcher{pattern: pattern}
}

// Find extracts the first keyword reference from the line.
func (m *KeywordMatcher) Find(line string) (Keyword, bool) {
	match := m.pattern.FindStringSubmatch(line)
	if match == nil {
		return Keyword{}, false
	}
	return Keyword{
		Word:   strings.ToLower(match[1]),
		Folder: PadFolder(match[2]),
	}, true
}

// PadFolder zero-pads a numeric folder identifier to a minimum width of 2.
func PadFolder(folder string) string {
	for len(folder) < 2 {
		folder = "0" + folder
	}
	return folder
}

func parseOrdinals(payload string) ([]int, bool) {
	parts := strings.Split(payload, ",")
	ordinals := make([]int, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || value < 1 {
			return nil, false
		}
		ordinals = append(ordinals, value)
	}
	if len(ordinals) == 0 {
		return nil, false
	}
	return ordinals, true
}
