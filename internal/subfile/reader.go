package subfile

import (
	"bytes"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// legacyDecoders is the fallback order after the UTF-8 probes. Latin-1
// accepts every byte sequence, so Windows-1252 only matters if the probe
// order is ever reconfigured; it is kept to match the documented chain.
var legacyDecoders = []*charmap.Charmap{
	charmap.ISO8859_1,
	charmap.Windows1252,
}

// ReadLines reads a subtitle file and returns its decoded lines. The
// encoding probe tries UTF-8 with BOM, plain UTF-8, then the legacy
// single-byte encodings in order; the first decoder that accepts the file
// wins. Unreadable or undecodable files yield a nil slice, never an error.
func ReadLines(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	text, ok := decode(data)
	if !ok {
		return nil
	}
	return splitLines(text)
}

func decode(data []byte) (string, bool) {
	if bytes.HasPrefix(data, utf8BOM) {
		body := data[len(utf8BOM):]
		if utf8.Valid(body) {
			return string(body), true
		}
	}
	if utf8.Valid(data) {
		return string(data), true
	}
	for _, cm := range legacyDecoders {
		decoded, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		return string(decoded), true
	}
	return "", false
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	// A trailing newline produces one empty final element; drop it so line
	// counts match the file's visible lines.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
