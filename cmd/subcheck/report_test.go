package main

import (
	"io"
	"strings"
	"testing"

	"subcheck/internal/crossref"
	"subcheck/internal/textcmp"
)

func sampleReportResults() []crossref.Result {
	score := func(v float64) *float64 { return &v }
	return []crossref.Result{
		{
			Folder: "01", File: "ep01.ass", Line: 12,
			Reference: "CR-03-[5,6]", Text: "Hello world",
			TargetFolder: "03", TargetFile: "ep03.ass", TargetLines: []int{5, 6},
			TargetText: "Hello world",
			Similarity: score(100), Status: textcmp.StatusExact,
		},
		{
			Folder: "01", File: "ep01.ass", Line: 30,
			Reference: "preview 04", Text: "see you next time",
			TargetFolder: "04", TargetFile: "ep04.ass", TargetLine: 88,
			TargetText: "and see you next time folks",
			Similarity: score(76.6), Status: textcmp.StatusDifferent,
		},
		{
			Folder: "02", File: "ep02.ass", Line: 3,
			Reference: "CR-07-[2]", Text: "gone",
			TargetFolder: "07", Status: textcmp.StatusNotFound,
		},
	}
}

func TestRenderReportFieldCoverage(t *testing.T) {
	results := sampleReportResults()
	var sb strings.Builder
	renderReport(&sb, plainStyle{}, results, crossref.Summarize(results))
	out := sb.String()

	for _, want := range []string{
		"01/ep01.ass:12",
		"CR-03-[5,6]",
		"03/ep03.ass:5,6",
		"100.0",
		"04/ep04.ass:88",
		"07/?",
		"exact",
		"different",
		"not-found",
		"total=3 exact=1 similar=0 different=1 not-found=1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReportReviewDetails(t *testing.T) {
	results := sampleReportResults()
	var sb strings.Builder
	renderReport(&sb, plainStyle{}, results, crossref.Summarize(results))
	out := sb.String()

	if !strings.Contains(out, "Review needed:") {
		t.Fatalf("report missing review section:\n%s", out)
	}
	if !strings.Contains(out, "source: see you next time") {
		t.Errorf("report missing mismatch source text:\n%s", out)
	}
	if !strings.Contains(out, "target: and see you next time folks") {
		t.Errorf("report missing mismatch target text:\n%s", out)
	}
	if !strings.Contains(out, "target: (not found)") {
		t.Errorf("report missing not-found placeholder:\n%s", out)
	}
	// Exact matches need no review.
	if strings.Contains(out, "source: Hello world") {
		t.Errorf("exact match listed for review:\n%s", out)
	}
}

func TestResultTableColumns(t *testing.T) {
	results := sampleReportResults()
	out := resultTable(results, plainStyle{})

	for _, header := range []string{"Source", "Reference", "Status", "Sim", "Target"} {
		if !strings.Contains(out, header) {
			t.Errorf("table missing %q header:\n%s", header, out)
		}
	}
	// Absent similarity renders as a dash, present as one decimal.
	if !strings.Contains(out, "-") || !strings.Contains(out, "76.6") {
		t.Errorf("table missing similarity cells:\n%s", out)
	}
}

func TestResultTableCarriesStatusDecoration(t *testing.T) {
	results := sampleReportResults()
	out := resultTable(results, ansiStyle{})
	if !strings.Contains(out, ansiGreen+"exact"+ansiReset) {
		t.Errorf("table missing decorated status:\n%s", out)
	}
}

func TestRenderReportEmpty(t *testing.T) {
	var sb strings.Builder
	renderReport(&sb, plainStyle{}, nil, crossref.Summary{})
	if !strings.Contains(sb.String(), "No references found.") {
		t.Errorf("empty report = %q", sb.String())
	}
}

func TestSimilarityCellAbsent(t *testing.T) {
	if got := similarityCell(crossref.Result{}); got != "-" {
		t.Errorf("similarityCell = %q, want -", got)
	}
}

func TestAnsiStyleStatusColors(t *testing.T) {
	style := ansiStyle{}
	if got := style.status(textcmp.StatusExact); !strings.Contains(got, ansiGreen) {
		t.Errorf("exact status = %q, want green", got)
	}
	if got := style.status(textcmp.StatusSimilar); !strings.Contains(got, ansiYellow) {
		t.Errorf("similar status = %q, want yellow", got)
	}
	for _, status := range []textcmp.Status{textcmp.StatusDifferent, textcmp.StatusNotFound} {
		if got := style.status(status); !strings.Contains(got, ansiRed) {
			t.Errorf("%s status = %q, want red", status, got)
		}
	}
}

func TestStyleForNonTerminal(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Error("non-file writers must not colorize")
	}
	if _, ok := styleFor(io.Discard).(plainStyle); !ok {
		t.Error("non-terminal output must use the plain style")
	}
}
