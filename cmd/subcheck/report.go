package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"subcheck/internal/crossref"
	"subcheck/internal/textcmp"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// reportStyle decorates report fragments. The renderer never branches on
// output mode itself; swapping the style is the only difference between
// terminal and plain output.
type reportStyle interface {
	status(status textcmp.Status) string
	header(title string) string
}

type plainStyle struct{}

func (plainStyle) status(status textcmp.Status) string { return string(status) }
func (plainStyle) header(title string) string          { return title }

type ansiStyle struct{}

func (ansiStyle) status(status textcmp.Status) string {
	switch status {
	case textcmp.StatusExact:
		return ansiGreen + string(status) + ansiReset
	case textcmp.StatusSimilar:
		return ansiYellow + string(status) + ansiReset
	case textcmp.StatusDifferent, textcmp.StatusNotFound:
		return ansiRed + string(status) + ansiReset
	default:
		return string(status)
	}
}

func (ansiStyle) header(title string) string {
	return ansiBlue + title + ansiReset
}

func styleFor(writer io.Writer) reportStyle {
	if shouldColorize(writer) {
		return ansiStyle{}
	}
	return plainStyle{}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderReport writes the result table, mismatch details, and the summary
// line for a cross-reference run.
func renderReport(w io.Writer, style reportStyle, results []crossref.Result, summary crossref.Summary) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No references found.")
		return
	}

	fmt.Fprintln(w, resultTable(results, style))

	writeMismatchDetails(w, style, results)

	fmt.Fprintf(w, "%s total=%d exact=%d similar=%d different=%d not-found=%d\n",
		style.header("Summary:"),
		summary.Total, summary.Exact, summary.Similar, summary.Different, summary.NotFound)
}

// resultTable renders the fixed result columns. The status column carries
// the style's decoration and the similarity column is right-aligned so the
// scores line up.
func resultTable(results []crossref.Result, style reportStyle) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Source", "Reference", "Status", "Sim", "Target"})
	for _, r := range results {
		tw.AppendRow(table.Row{
			sourceCell(r),
			r.Reference,
			style.status(r.Status),
			similarityCell(r),
			targetCell(r),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// writeMismatchDetails prints source and target text side by side for every
// result that needs human review.
func writeMismatchDetails(w io.Writer, style reportStyle, results []crossref.Result) {
	printed := false
	for _, r := range results {
		if r.Status != textcmp.StatusDifferent && r.Status != textcmp.StatusNotFound {
			continue
		}
		if !printed {
			fmt.Fprintln(w, style.header("Review needed:"))
			printed = true
		}
		fmt.Fprintf(w, "  %s (%s)\n", sourceCell(r), r.Reference)
		fmt.Fprintf(w, "    source: %s\n", r.Text)
		if r.Found() {
			fmt.Fprintf(w, "    target: %s\n", r.TargetText)
		} else {
			fmt.Fprintln(w, "    target: (not found)")
		}
	}
	if printed {
		fmt.Fprintln(w)
	}
}

func sourceCell(r crossref.Result) string {
	return fmt.Sprintf("%s/%s:%d", r.Folder, r.File, r.Line)
}

func similarityCell(r crossref.Result) string {
	if r.Similarity == nil {
		return "-"
	}
	return strconv.FormatFloat(*r.Similarity, 'f', 1, 64)
}

func targetCell(r crossref.Result) string {
	if !r.Found() {
		return r.TargetFolder + "/?"
	}
	location := r.TargetFolder + "/" + r.TargetFile
	if len(r.TargetLines) > 0 {
		parts := make([]string, len(r.TargetLines))
		for i, n := range r.TargetLines {
			parts[i] = strconv.Itoa(n)
		}
		return location + ":" + strings.Join(parts, ",")
	}
	if r.TargetLine > 0 {
		return location + ":" + strconv.Itoa(r.TargetLine)
	}
	return location
}
