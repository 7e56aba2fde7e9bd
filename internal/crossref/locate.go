package crossref

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"subcheck/internal/subfile"
	"subcheck/internal/textcmp"
)

// subtitleFiles lists the .ass files of a folder. The listing order is
// whatever filepath.Glob yields; a missing folder simply lists nothing.
func subtitleFiles(folder string) []string {
	files, err := filepath.Glob(filepath.Join(folder, "*.ass"))
	if err != nil {
		return nil
	}
	return files
}

// FindByOrdinals resolves an explicit reference: the first file in the
// target folder whose event sequence yields text for every requested
// ordinal wins. Returns the file's base name and the space-joined text.
func FindByOrdinals(folder string, ordinals []int) (string, string, bool) {
	for _, path := range subtitleFiles(folder) {
		if text, ok := subfile.OrdinalTexts(path, ordinals); ok {
			return filepath.Base(path), text, true
		}
	}
	return "", "", false
}

// TextHit is a free-text locator match: the file's base name, the raw
// extracted dialogue text, and the raw 1-based file line number.
type TextHit struct {
	File string
	Text string
	Line int
}

// FindByText resolves a free-text reference against every Dialogue line of
// every file in the target folder. An exact normalized match wins
// immediately (first seen). Otherwise the best containment match wins:
// score is len(shorter)/len(longer) for whichever direction contains the
// other, and only a strictly greater score replaces the current best, so
// ties keep the earlier candidate. An empty query never matches.
func FindByText(folder, query string) (TextHit, bool) {
	normQuery := textcmp.Normalize(query)
	if normQuery == "" {
		return TextHit{}, false
	}

	var best TextHit
	var bestScore float64
	for _, path := range subtitleFiles(folder) {
		base := filepath.Base(path)
		for i, line := range subfile.ReadLines(path) {
			if !strings.Contains(line, "Dialogue:") {
				continue
			}
			text, ok := subfile.DisplayText(line)
			if !ok || text == "" {
				continue
			}
			normTarget := textcmp.Normalize(text)
			if normTarget == normQuery {
				return TextHit{File: base, Text: text, Line: i + 1}, true
			}
			if score, ok := containmentScore(normQuery, normTarget); ok && score > bestScore {
				bestScore = score
				best = TextHit{File: base, Text: text, Line: i + 1}
			}
		}
	}
	if bestScore > 0 {
		return best, true
	}
	return TextHit{}, false
}

// containmentScore rates how much of the longer string the shorter one
// covers when one normalized string contains the other.
func containmentScore(query, target string) (float64, bool) {
	queryLen := utf8.RuneCountInString(query)
	targetLen := utf8.RuneCountInString(target)
	switch {
	case targetLen > 0 && strings.Contains(target, query):
		return float64(queryLen) / float64(targetLen), true
	case queryLen > 0 && strings.Contains(query, target):
		return float64(targetLen) / float64(queryLen), true
	default:
		return 0, false
	}
}
