package crossref

import (
	"fmt"

	"subcheck/internal/textcmp"
)

// Filter selects which results a report displays.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterMatched   Filter = "matched"
	FilterExact     Filter = "exact"
	FilterSimilar   Filter = "similar"
	FilterDifferent Filter = "different"
	FilterNotFound  Filter = "not-found"
)

// ParseFilter validates a filter name from the CLI.
func ParseFilter(value string) (Filter, error) {
	switch Filter(value) {
	case FilterAll, FilterMatched, FilterExact, FilterSimilar, FilterDifferent, FilterNotFound:
		return Filter(value), nil
	default:
		return "", fmt.Errorf("filter: unsupported value %q (use all, matched, exact, similar, different, or not-found)", value)
	}
}

// Apply returns the results the filter selects, preserving order. Matched
// selects every result with a located target, regardless of classification.
func (f Filter) Apply(results []Result) []Result {
	if f == FilterAll || f == "" {
		return results
	}
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if f.selects(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (f Filter) selects(r Result) bool {
	switch f {
	case FilterMatched:
		return r.Found()
	case FilterExact:
		return r.Status == textcmp.StatusExact
	case FilterSimilar:
		return r.Status == textcmp.StatusSimilar
	case FilterDifferent:
		return r.Status == textcmp.StatusDifferent
	case FilterNotFound:
		return r.Status == textcmp.StatusNotFound
	default:
		return true
	}
}
