package crossref

import "subcheck/internal/textcmp"

// Result is one reference resolution outcome. Target fields are set if and
// only if a target was located; Similarity is present only alongside a
// target. Results are never mutated after creation.
type Result struct {
	Folder    string
	File      string
	Line      int
	Reference string
	Text      string

	TargetFolder string
	TargetFile   string
	TargetLines  []int
	TargetLine   int
	TargetText   string

	Similarity *float64
	Status     textcmp.Status
}

// Found reports whether a target was located for this result.
func (r Result) Found() bool {
	return r.Status != textcmp.StatusNotFound
}

// Summary tallies results by classification status.
type Summary struct {
	Total     int
	Exact     int
	Similar   int
	Different int
	NotFound  int
}

// Summarize partitions results by status.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case textcmp.StatusExact:
			s.Exact++
		case textcmp.StatusSimilar:
			s.Similar++
		case textcmp.StatusDifferent:
			s.Different++
		case textcmp.StatusNotFound:
			s.NotFound++
		}
	}
	return s
}

// HasIssues reports whether any result is Different or NotFound.
func HasIssues(results []Result) bool {
	for _, r := range results {
		if r.Status == textcmp.StatusDifferent || r.Status == textcmp.StatusNotFound {
			return true
		}
	}
	return false
}
