package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteSubtitle writes a minimal .ass file whose event block contains the
// given event lines (already prefixed with Dialogue:/Comment:).
func WriteSubtitle(t testing.TB, path string, events ...string) {
	t.Helper()

	var b strings.Builder
	b.WriteString("[Script Info]\n")
	b.WriteString("Title: fixture\n")
	b.WriteString("\n")
	b.WriteString("[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for _, event := range events {
		b.WriteString(event)
		b.WriteString("\n")
	}
	WriteFile(t, path, b.String())
}

// Dialogue builds a Dialogue: event line carrying the given display text.
func Dialogue(text string) string {
	return "Dialogue: 0,0:00:01.00,0:00:03.00,Default,,0,0,0,," + text
}

// Comment builds a Comment: event line carrying the given display text.
func Comment(text string) string {
	return "Comment: 0,0:00:01.00,0:00:03.00,Default,,0,0,0,," + text
}
