package segment

import (
	"strings"
	"unicode"
)

// Kind identifies the presentation role of a classified line.
type Kind int

const (
	KindPlain Kind = iota
	KindHeading
	KindBullet
	KindCallout
	KindSeparator
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindBullet:
		return "bullet"
	case KindCallout:
		return "callout"
	case KindSeparator:
		return "separator"
	default:
		return "plain"
	}
}

// Segment is one classified unit of presentable content. Text is already
// trimmed and stripped of its classification marker; separators carry no text.
type Segment struct {
	Kind Kind
	Text string
}

// Classify maps a raw script line to its segment. It is total: every input
// yields a segment and no input is an error.
func Classify(line string) Segment {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Segment{Kind: KindPlain}
	}

	if isSeparator(trimmed) {
		return Segment{Kind: KindSeparator}
	}

	if strings.HasPrefix(trimmed, "#") {
		content := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		if content != "" {
			return Segment{Kind: KindHeading, Text: content}
		}
		// A bare run of # marks falls through to the remaining rules.
	}

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return Segment{Kind: KindBullet, Text: strings.TrimLeftFunc(trimmed[2:], unicode.IsSpace)}
	}

	if strings.HasPrefix(trimmed, ">") {
		content := strings.TrimLeftFunc(strings.TrimLeft(trimmed, ">"), unicode.IsSpace)
		return Segment{Kind: KindCallout, Text: content}
	}

	return Segment{Kind: KindPlain, Text: trimmed}
}

// ClassifyLines classifies every line in order. The result always has exactly
// one segment per input line.
func ClassifyLines(lines []string) []Segment {
	segments := make([]Segment, len(lines))
	for i, line := range lines {
		segments[i] = Classify(line)
	}
	return segments
}

func isSeparator(trimmed string) bool {
	runes := []rune(trimmed)
	if len(runes) < 3 {
		return false
	}
	for _, r := range runes {
		switch r {
		case '-', '–', '=':
		default:
			return false
		}
	}
	return true
}
