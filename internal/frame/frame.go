// Package frame composes the fixed-width bordered lines of a presentation
// frame. Every function is pure: the interactive session decides when and how
// often to repaint, frame decides only what a repaint looks like.
package frame

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"retrobeam/internal/segment"
	"retrobeam/internal/theme"
)

const (
	reset     = "\x1b[0m"
	bold      = "\x1b[1m"
	italic    = "\x1b[3m"
	underline = "\x1b[4m"
)

// FullReveal renders the complete content region in one pass.
const FullReveal = -1

const truncationMark = '›'

// look is the per-kind presentation table: decorated text, color token,
// inline style prefix and reveal pacing.
type look struct {
	text  string
	color string
	style string
	delay time.Duration
}

func lookFor(seg segment.Segment, pal theme.Palette) look {
	switch seg.Kind {
	case segment.KindHeading:
		return look{
			text:  strings.ToUpper(seg.Text),
			color: pal.Glow,
			style: bold + underline,
			delay: 35 * time.Millisecond,
		}
	case segment.KindBullet:
		return look{
			text:  "• " + seg.Text,
			color: pal.Accent,
			delay: 45 * time.Millisecond,
		}
	case segment.KindCallout:
		return look{
			text:  "❝ " + seg.Text + " ❞",
			color: pal.Glow,
			style: italic,
			delay: 38 * time.Millisecond,
		}
	default:
		color := pal.Accent
		if seg.Text == "" {
			color = pal.Dim
		}
		return look{text: seg.Text, color: color, delay: 55 * time.Millisecond}
	}
}

// Delay returns the per-character reveal pacing for a segment kind.
// Separators never animate and report zero.
func Delay(kind segment.Kind) time.Duration {
	if kind == segment.KindSeparator {
		return 0
	}
	return lookFor(segment.Segment{Kind: kind}, theme.Palette{}).delay
}

// ContentLength reports how many glyphs the content region of a line holds
// after decoration and truncation, i.e. the number of reveal steps a full
// animation takes. Separators report zero.
func ContentLength(seg segment.Segment, index, width int) int {
	if seg.Kind == segment.KindSeparator {
		return 0
	}
	glyphs := []rune(lookFor(seg, theme.Palette{}).text)
	return len(truncate(glyphs, available(width, prefixFor(index))))
}

// Line renders one segment as one frame line of exactly width columns (glyph
// count; wide glyphs intentionally count as one, matching the source script
// grammar). reveal limits how many content glyphs are visible; FullReveal or
// any count at or past the content length yields the final line. The final
// line is identical whether reached by successive reveals or in one pass.
func Line(seg segment.Segment, index, width int, pal theme.Palette, reveal int) string {
	prefix := prefixFor(index)
	avail := available(width, prefix)

	var b strings.Builder
	b.WriteString(pal.Dim)
	b.WriteString(prefix)
	b.WriteString(reset)

	if seg.Kind == segment.KindSeparator {
		b.WriteString(pal.Dim)
		b.WriteString(strings.Repeat("─", avail))
		b.WriteString(reset)
	} else {
		l := lookFor(seg, pal)
		glyphs := truncate([]rune(l.text), avail)
		shown := glyphs
		if reveal >= 0 && reveal < len(glyphs) {
			shown = glyphs[:reveal]
		}

		if avail > 0 && (len(glyphs) > 0 || l.style != "") {
			b.WriteString(l.style)
			b.WriteString(l.color)
			b.WriteString(string(shown))
			b.WriteString(reset)
		}

		if pad := avail - len(shown); pad > 0 {
			b.WriteString(pal.Dim)
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(reset)
		}
	}

	b.WriteString(pal.Dim)
	b.WriteString("│")
	b.WriteString(reset)
	return b.String()
}

// Top renders the upper frame rail.
func Top(width int, pal theme.Palette) string {
	return pal.Dim + "╭" + strings.Repeat("─", saturate(width-2)) + "╮" + reset
}

// Bottom renders the lower frame rail.
func Bottom(width int, pal theme.Palette) string {
	return pal.Dim + "╰" + strings.Repeat("─", saturate(width-2)) + "╯" + reset
}

// TitleRule renders the centered session title rule above the frame.
func TitleRule(title string, width int, pal theme.Palette) string {
	label := fmt.Sprintf("╢ %s ╟", strings.ToUpper(title))
	fill := saturate(width - utf8.RuneCountInString(label))
	left := fill / 2
	right := fill - left
	return pal.Dim + strings.Repeat("═", left) + reset +
		pal.Glow + label + reset +
		pal.Dim + strings.Repeat("═", right) + reset
}

// EmptyNotice renders the single frame body line shown when the script holds
// no lines at all.
func EmptyNotice(width int, pal theme.Palette) string {
	const prefix = "│ SYS :: "
	avail := available(width, prefix)
	glyphs := truncate([]rune("(script holds no content)"), avail)

	var b strings.Builder
	b.WriteString(pal.Dim)
	b.WriteString(prefix)
	b.WriteString(reset)
	if avail > 0 {
		b.WriteString(italic)
		b.WriteString(pal.Dim)
		b.WriteString(string(glyphs))
		b.WriteString(reset)
	}
	if pad := avail - len(glyphs); pad > 0 {
		b.WriteString(pal.Dim)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(reset)
	}
	b.WriteString(pal.Dim)
	b.WriteString("│")
	b.WriteString(reset)
	return b.String()
}

func prefixFor(index int) string {
	return fmt.Sprintf("│ %03d :: ", index+1)
}

// available is the number of content columns between the label and the
// right border, measured in glyphs and saturating at zero.
func available(width int, prefix string) int {
	return saturate(width - utf8.RuneCountInString(prefix) - 1)
}

// truncate caps content at avail glyphs. Overlong content keeps avail-1
// glyphs and ends in the truncation mark so the right border stays put.
func truncate(glyphs []rune, avail int) []rune {
	if len(glyphs) <= avail {
		return glyphs
	}
	if avail <= 0 {
		return nil
	}
	out := make([]rune, avail)
	copy(out, glyphs[:avail-1])
	out[avail-1] = truncationMark
	return out
}

func saturate(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
