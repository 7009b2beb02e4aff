package journal

import "strings"

// LineKind classifies one raw line of a day file.
type LineKind int

const (
	LineOther LineKind = iota
	LineBullet
	LineNote
)

// Line is the classification of a single raw line. For bullets, Rest is the
// remainder after the checkbox; for notes, Rest is the trimmed note text.
type Line struct {
	Kind LineKind
	Done bool
	Rest string
}

const (
	openPrefix = "- [ ] "
	donePrefix = "- [x] "
	notePrefix = "- note: "
)

// Classify is a total function: no line content is ever an error. Anything
// that is not a bullet or a note line passes through as LineOther.
func Classify(raw string) Line {
	trimmed := strings.TrimLeft(raw, " \t")
	if rest, ok := strings.CutPrefix(trimmed, openPrefix); ok {
		return Line{Kind: LineBullet, Rest: rest}
	}
	if rest, ok := strings.CutPrefix(trimmed, donePrefix); ok {
		return Line{Kind: LineBullet, Done: true, Rest: rest}
	}
	if strings.HasPrefix(raw, "  ") {
		if rest, ok := strings.CutPrefix(trimmed, notePrefix); ok {
			return Line{Kind: LineNote, Rest: strings.TrimSpace(rest)}
		}
	}
	return Line{Kind: LineOther}
}

// DecodeBullet parses a bullet remainder (everything after the checkbox)
// into an Entry. ID and Done are left for the caller; decoding never fails.
// A malformed meeting prefix degrades to a Task with the raw prefix kept in
// the text, so hand-edited files stay usable.
func DecodeBullet(rest string) Entry {
	e := Entry{Kind: Task}

	if body, ok := strings.CutPrefix(rest, "[mtg "); ok {
		if end := strings.IndexByte(body, ']'); end >= 0 {
			if start, dur, ok := parseMeetingSpec(body[:end]); ok {
				e.Kind = Meeting
				e.Start = start
				e.Duration = dur
				rest = strings.TrimLeft(body[end+1:], " \t")
			}
		}
	}

	for p := High; p >= Low; p-- {
		if stripped, ok := strings.CutPrefix(rest, p.Marker()+" "); ok {
			e.Priority = p
			rest = stripped
			break
		}
	}

	e.Text, e.Tags = splitTrailingTags(rest)
	return e
}

// parseMeetingSpec parses the inside of a [mtg ...] prefix: "HH:MM" with an
// optional integer minute duration. Anything else is not a meeting spec.
func parseMeetingSpec(spec string) (ClockTime, int, bool) {
	parts := strings.Fields(spec)
	if len(parts) == 0 || len(parts) > 2 {
		return ClockTime{}, 0, false
	}
	start, ok := ParseClock(parts[0])
	if !ok {
		return ClockTime{}, 0, false
	}
	dur := DefaultDuration
	if len(parts) == 2 {
		n, ok := atoiDigits(parts[1])
		if !ok || n == 0 {
			return ClockTime{}, 0, false
		}
		dur = n
	}
	return start, dur, true
}

// splitTrailingTags strips the trailing contiguous run of #tokens from s,
// scanning right to left and stopping at the first non-tag token. Interior
// #tokens stay part of the text; only the title is trimmed.
func splitTrailingTags(s string) (string, []string) {
	rest := strings.TrimRight(s, " \t")
	var toks []string
	for rest != "" {
		idx := strings.LastIndexAny(rest, " \t")
		tok := rest[idx+1:]
		if len(tok) < 2 || tok[0] != '#' {
			break
		}
		toks = append(toks, tok[1:])
		if idx < 0 {
			rest = ""
			break
		}
		rest = strings.TrimRight(rest[:idx], " \t")
	}

	// toks were collected right-to-left; restore appearance order, then
	// lowercase and dedupe keeping the first occurrence.
	for i, j := 0, len(toks)-1; i < j; i, j = i+1, j-1 {
		toks[i], toks[j] = toks[j], toks[i]
	}
	return strings.TrimSpace(rest), NormalizeTags(toks)
}

// Located pairs a decoded Entry with its position in the raw line sequence.
// Line is the index of the bullet line; Span counts the bullet plus its
// contiguous note lines.
type Located struct {
	Entry
	Line int
	Span int
}

// ParseLines derives the entry view from a day's raw lines. IDs are
// assigned 1-based in the order bullets appear, exactly as a reader
// enumerating the file top to bottom would count them.
func ParseLines(lines []string) []Located {
	var out []Located
	id := 0
	for i := 0; i < len(lines); i++ {
		c := Classify(lines[i])
		if c.Kind != LineBullet {
			continue
		}
		id++
		e := DecodeBullet(c.Rest)
		e.Done = c.Done
		e.ID = id

		span := 1
		for i+span < len(lines) {
			n := Classify(lines[i+span])
			if n.Kind != LineNote {
				break
			}
			e.Notes = append(e.Notes, n.Rest)
			span++
		}
		out = append(out, Located{Entry: e, Line: i, Span: span})
		i += span - 1
	}
	return out
}
