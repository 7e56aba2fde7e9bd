// Package glossary flags words in a text that nearly match a glossary term
// without equaling it. Near misses are usually typos or unapproved variant
// spellings of established terminology.
package glossary

import (
	"regexp"
	"strings"

	"subcheck/internal/textcmp"
)

// DefaultThreshold is the similarity floor for reporting a near miss.
const DefaultThreshold = 80.0

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}'-]*`)

// Finding is one near-miss occurrence: a word close to a glossary term but
// not identical to it.
type Finding struct {
	// Term is the glossary entry that was nearly matched.
	Term string
	// Word is the offending word as it appears in the text.
	Word string
	// Line is the 1-based line number of the occurrence.
	Line int
	// Score is the similarity between word and term in [0,100).
	Score float64
	// Context is a short excerpt of the line around the word.
	Context string
}

// Check scans text for words whose similarity to any glossary term meets the
// threshold without being an exact (case-insensitive) match. A threshold of
// zero or below uses DefaultThreshold. Findings are ordered by line, then by
// position within the line.
func Check(terms []string, text string, threshold float64) []Finding {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	cleaned := normalizeTerms(terms)
	if len(cleaned) == 0 {
		return nil
	}

	var findings []Finding
	for lineIdx, line := range strings.Split(text, "\n") {
		for _, loc := range wordPattern.FindAllStringIndex(line, -1) {
			word := line[loc[0]:loc[1]]
			lowered := strings.ToLower(word)
			for _, term := range cleaned {
				if lowered == term {
					continue
				}
				score := textcmp.Similarity(lowered, term)
				if score < threshold {
					continue
				}
				findings = append(findings, Finding{
					Term:    term,
					Word:    word,
					Line:    lineIdx + 1,
					Score:   score,
					Context: excerpt(line, loc[0], loc[1]),
				})
			}
		}
	}
	return findings
}

// normalizeTerms lowercases and trims terms, dropping empties and duplicates
// while preserving first-seen order.
func normalizeTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	cleaned := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		cleaned = append(cleaned, term)
	}
	return cleaned
}

const contextRadius = 20

// excerpt returns up to contextRadius bytes of the line on either side of
// the word, snapped to rune boundaries.
func excerpt(line string, start, end int) string {
	from := start - contextRadius
	if from < 0 {
		from = 0
	}
	for from > 0 && !isRuneStart(line[from]) {
		from--
	}
	to := end + contextRadius
	if to > len(line) {
		to = len(line)
	}
	for to < len(line) && !isRuneStart(line[to]) {
		to++
	}
	return strings.TrimSpace(line[from:to])
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
