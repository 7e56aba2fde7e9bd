package subfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBytes(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestReadLinesUTF8(t *testing.T) {
	path := writeBytes(t, "plain.ass", []byte("first\nsecond\n"))
	lines := ReadLines(path)
	if len(lines) != 2 || lines[0] != "first" || lines[1] != "second" {
		t.Errorf("ReadLines() = %v", lines)
	}
}

func TestReadLinesUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("first\nsecond\n")...)
	path := writeBytes(t, "bom.ass", data)
	lines := ReadLines(path)
	if len(lines) != 2 || lines[0] != "first" {
		t.Errorf("ReadLines() = %v, BOM should be stripped", lines)
	}
}

func TestReadLinesLatin1Fallback(t *testing.T) {
	// 0xE9 is é in Latin-1 but an invalid UTF-8 sequence.
	path := writeBytes(t, "latin1.ass", []byte{'c', 'a', 'f', 0xE9, '\n'})
	lines := ReadLines(path)
	if len(lines) != 1 || lines[0] != "café" {
		t.Errorf("ReadLines() = %v, want [café]", lines)
	}
}

func TestReadLinesCRLF(t *testing.T) {
	path := writeBytes(t, "crlf.ass", []byte("first\r\nsecond\r\n"))
	lines := ReadLines(path)
	if len(lines) != 2 || lines[0] != "first" || lines[1] != "second" {
		t.Errorf("ReadLines() = %v", lines)
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	lines := ReadLines(filepath.Join(t.TempDir(), "absent.ass"))
	if lines != nil {
		t.Errorf("ReadLines(missing) = %v, want nil", lines)
	}
}

func TestReadLinesEmptyFile(t *testing.T) {
	path := writeBytes(t, "empty.ass", nil)
	lines := ReadLines(path)
	if len(lines) != 0 {
		t.Errorf("ReadLines(empty) = %v, want empty", lines)
	}
}
