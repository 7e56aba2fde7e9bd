package crossref

import (
	"path/filepath"
	"testing"

	"subcheck/internal/testsupport"
)

func TestFindByOrdinalsFirstQualifyingFileWins(t *testing.T) {
	folder := t.TempDir()
	// a.ass has only two events, so ordinal 3 disqualifies it.
	testsupport.WriteSubtitle(t, filepath.Join(folder, "a.ass"),
		testsupport.Dialogue("one"),
		testsupport.Dialogue("two"),
	)
	testsupport.WriteSubtitle(t, filepath.Join(folder, "b.ass"),
		testsupport.Dialogue("uno"),
		testsupport.Dialogue("dos"),
		testsupport.Dialogue("tres"),
	)

	file, text, ok := FindByOrdinals(folder, []int{1, 3})
	if !ok {
		t.Fatal("expected a match")
	}
	if file != "b.ass" {
		t.Errorf("file = %q, want b.ass", file)
	}
	if text != "uno tres" {
		t.Errorf("text = %q, want %q", text, "uno tres")
	}
}

func TestFindByOrdinalsDeterministic(t *testing.T) {
	folder := t.TempDir()
	testsupport.WriteSubtitle(t, filepath.Join(folder, "a.ass"),
		testsupport.Dialogue("alpha"),
		testsupport.Dialogue("beta"),
	)
	testsupport.WriteSubtitle(t, filepath.Join(folder, "b.ass"),
		testsupport.Dialogue("gamma"),
		testsupport.Dialogue("delta"),
	)

	firstFile, firstText, _ := FindByOrdinals(folder, []int{2})
	for i := 0; i < 5; i++ {
		file, text, ok := FindByOrdinals(folder, []int{2})
		if !ok || file != firstFile || text != firstText {
			t.Fatalf("lookup not deterministic: (%q, %q) vs (%q, %q)", file, text, firstFile, firstText)
		}
	}
}

func TestFindByOrdinalsMissingFolder(t *testing.T) {
	if _, _, ok := FindByOrdinals(filepath.Join(t.TempDir(), "absent"), []int{1}); ok {
		t.Error("missing folder must yield no match")
	}
}

func TestFindByOrdinalsEmptyFolder(t *testing.T) {
	if _, _, ok := FindByOrdinals(t.TempDir(), []int{1}); ok {
		t.Error("folder without subtitle files must yield no match")
	}
}

func TestFindByTextExactShortCircuits(t *testing.T) {
	folder := t.TempDir()
	testsupport.WriteSubtitle(t, filepath.Join(folder, "ep.ass"),
		testsupport.Dialogue("something long containing the whole query text right here"),
		testsupport.Dialogue("the whole query text"),
	)

	hit, ok := FindByText(folder, "the whole query text")
	if !ok {
		t.Fatal("expected a match")
	}
	if hit.Text != "the whole query text" {
		t.Errorf("hit.Text = %q, exact match should win over containment", hit.Text)
	}
}

func TestFindByTextExactAfterNormalization(t *testing.T) {
	folder := t.TempDir()
	testsupport.WriteSubtitle(t, filepath.Join(folder, "ep.ass"),
		testsupport.Dialogue(`the  whole\Nquery text`),
	)

	hit, ok := FindByText(folder, "the whole query text")
	if !ok {
		t.Fatal("expected a normalized exact match")
	}
	if hit.Line == 0 {
		t.Error("hit should carry the raw file line number")
	}
}

func TestFindByTextBestContainment(t *testing.T) {
	folder := t.TempDir()
	// The query appears inside both candidates; the shorter candidate
	// covers more of itself and must win.
	testsupport.WriteSubtitle(t, filepath.Join(folder, "ep.ass"),
		testsupport.Dialogue("one two three four five six seven eight"),
		testsupport.Dialogue("zz one two three zz"),
	)

	hit, ok := FindByText(folder, "one two three")
	if !ok {
		t.Fatal("expected a containment match")
	}
	if hit.Text != "zz one two three zz" {
		t.Errorf("hit.Text = %q, want the tighter containment", hit.Text)
	}
}

func TestFindByTextCandidateInsideQuery(t *testing.T) {
	folder := t.TempDir()
	testsupport.WriteSubtitle(t, filepath.Join(folder, "ep.ass"),
		testsupport.Dialogue("two three"),
	)

	hit, ok := FindByText(folder, "one two three four")
	if !ok {
		t.Fatal("expected a reverse containment match")
	}
	if hit.Text != "two three" {
		t.Errorf("hit.Text = %q", hit.Text)
	}
}

func TestFindByTextTieKeepsEarlier(t *testing.T) {
	folder := t.TempDir()
	// Both candidates contain the query at identical lengths; the first
	// seen must be kept.
	testsupport.WriteSubtitle(t, filepath.Join(folder, "ep.ass"),
		testsupport.Dialogue("aa hello world bb"),
		testsupport.Dialogue("cc hello world dd"),
	)

	hit, ok := FindByText(folder, "hello world")
	if !ok {
		t.Fatal("expected a match")
	}
	if hit.Text != "aa hello world bb" {
		t.Errorf("hit.Text = %q, tie should keep the earlier candidate", hit.Text)
	}
}

func TestFindByTextEmptyQuery(t *testing.T) {
	folder := t.TempDir()
	testsupport.WriteSubtitle(t, filepath.Join(folder, "ep.ass"),
		testsupport.Dialogue("anything"),
	)

	if _, ok := FindByText(folder, "   "); ok {
		t.Error("empty search text must never match")
	}
}

func TestFindByTextNoMatch(t *testing.T) {
	folder := t.TempDir()
	testsupport.WriteSubtitle(t, filepath.Join(folder, "ep.ass"),
		testsupport.Dialogue("completely unrelated"),
	)

	if _, ok := FindByText(folder, "no overlap whatsoever here"); ok {
		t.Error("expected no match")
	}
}
