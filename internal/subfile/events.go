package subfile

import "strings"

const (
	eventsHeader     = "[Events]"
	formatPrefix     = "Format:"
	dialoguePrefix   = "Dialogue:"
	commentPrefix    = "Comment:"
	fieldSeparator   = ",,"
	minDisplayFields = 2
)

// EventLines returns the ordered Dialogue:/Comment: lines of the file's
// event block. Only lines appearing after the [Events] section header and
// a subsequent Format: declaration count; dialogue-like lines before either
// marker are ignored. A file readable under no known encoding yields nil.
func EventLines(path string) []string {
	lines := ReadLines(path)
	if len(lines) == 0 {
		return nil
	}

	var events []string
	inEvents := false
	foundFormat := false
	for _, line := range lines {
		if strings.Contains(line, eventsHeader) {
			inEvents = true
			continue
		}
		if !inEvents {
			continue
		}
		if strings.HasPrefix(line, formatPrefix) {
			foundFormat = true
			continue
		}
		if foundFormat && (strings.HasPrefix(line, dialoguePrefix) || strings.HasPrefix(line, commentPrefix)) {
			events = append(events, line)
		}
	}
	return events
}

// DisplayText extracts the display text of an event line: the substring
// after the last two-comma field separator, trimmed. Lines with fewer than
// two separator-delimited fields carry no usable text and return ("", false).
func DisplayText(line string) (string, bool) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) < minDisplayFields {
		return "", false
	}
	return strings.TrimSpace(parts[len(parts)-1]), true
}

// OrdinalTexts joins the display text of the requested 1-based event
// ordinals with single spaces. Every requested ordinal must fall inside the
// event range and carry usable text; otherwise ("", false) is returned.
func OrdinalTexts(path string, ordinals []int) (string, bool) {
	if len(ordinals) == 0 {
		return "", false
	}
	events := EventLines(path)
	texts := make([]string, 0, len(ordinals))
	for _, ordinal := range ordinals {
		if ordinal < 1 || ordinal > len(events) {
			return "", false
		}
		text, ok := DisplayText(events[ordinal-1])
		if !ok || text == "" {
			return "", false
		}
		texts = append(texts, text)
	}
	return strings.Join(texts, " "), true
}
