package journal

import (
	"fmt"
	"strings"
)

// EncodeBullet renders the canonical bullet line for e. It is the inverse of
// DecodeBullet: decode(encode(e)) == e for any entry whose tags are already
// normalized and whose text is trimmed.
func EncodeBullet(e Entry) string {
	var b strings.Builder

	if e.Done {
		b.WriteString(donePrefix)
	} else {
		b.WriteString(openPrefix)
	}

	if e.Kind == Meeting {
		if e.Duration != 0 && e.Duration != DefaultDuration {
			fmt.Fprintf(&b, "[mtg %s %d] ", e.Start, e.Duration)
		} else {
			fmt.Fprintf(&b, "[mtg %s] ", e.Start)
		}
	}

	if m := e.Priority.Marker(); m != "" {
		b.WriteString(m)
		b.WriteString(" ")
	}

	b.WriteString(e.Text)
	for _, t := range e.Tags {
		b.WriteString(" #")
		b.WriteString(t)
	}
	return b.String()
}

// EncodeLines renders the bullet line followed by one note line per note.
func EncodeLines(e Entry) []string {
	lines := make([]string, 0, 1+len(e.Notes))
	lines = append(lines, EncodeBullet(e))
	for _, n := range e.Notes {
		lines = append(lines, "  "+notePrefix+n)
	}
	return lines
}
