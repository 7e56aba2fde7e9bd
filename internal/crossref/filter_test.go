package crossref

import (
	"testing"

	"subcheck/internal/textcmp"
)

func sampleResults() []Result {
	score := func(v float64) *float64 { return &v }
	return []Result{
		{Reference: "CR-01-[1]", Status: textcmp.StatusExact, Similarity: score(100), TargetFile: "a.ass"},
		{Reference: "CR-02-[1]", Status: textcmp.StatusSimilar, Similarity: score(96), TargetFile: "b.ass"},
		{Reference: "CR-03-[1]", Status: textcmp.StatusDifferent, Similarity: score(40), TargetFile: "c.ass"},
		{Reference: "CR-04-[1]", Status: textcmp.StatusNotFound},
	}
}

func TestParseFilter(t *testing.T) {
	for _, name := range []string{"all", "matched", "exact", "similar", "different", "not-found"} {
		if _, err := ParseFilter(name); err != nil {
			t.Errorf("ParseFilter(%q) = %v", name, err)
		}
	}
	if _, err := ParseFilter("bogus"); err == nil {
		t.Error("ParseFilter must reject unknown names")
	}
	if _, err := ParseFilter("Exact"); err == nil {
		t.Error("filter names are case sensitive")
	}
}

func TestFilterApply(t *testing.T) {
	results := sampleResults()

	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"CR-01-[1]", "CR-02-[1]", "CR-03-[1]", "CR-04-[1]"}},
		{FilterMatched, []string{"CR-01-[1]", "CR-02-[1]", "CR-03-[1]"}},
		{FilterExact, []string{"CR-01-[1]"}},
		{FilterSimilar, []string{"CR-02-[1]"}},
		{FilterDifferent, []string{"CR-03-[1]"}},
		{FilterNotFound, []string{"CR-04-[1]"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got := tt.filter.Apply(results)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.want))
			}
			for i, r := range got {
				if r.Reference != tt.want[i] {
					t.Errorf("result %d = %q, want %q", i, r.Reference, tt.want[i])
				}
			}
		})
	}
}

func TestFilterApplyEmptyDefaultsToAll(t *testing.T) {
	results := sampleResults()
	if got := Filter("").Apply(results); len(got) != len(results) {
		t.Errorf("empty filter kept %d of %d results", len(got), len(results))
	}
}

func TestSummarize(t *testing.T) {
	results := sampleResults()
	summary := Summarize(results)
	if summary.Total != 4 || summary.Exact != 1 || summary.Similar != 1 ||
		summary.Different != 1 || summary.NotFound != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if !HasIssues(results) {
		t.Error("different and not-found results must count as issues")
	}

	clean := []Result{
		{Status: textcmp.StatusExact},
		{Status: textcmp.StatusSimilar},
	}
	if HasIssues(clean) {
		t.Error("exact and similar results are not issues")
	}
}
