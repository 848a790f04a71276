// Package balloon builds the bordered speech or thought balloon rendered
// above a cow figure.
package balloon

import (
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// The column budget is 40 cells; the border glyphs and padding take two on
// each side.
const (
	columnBudget = 40
	borderCells  = 4
	wrapLimit    = columnBudget - borderCells
)

type glyphSet struct {
	only   [2]string
	first  [2]string
	middle [2]string
	last   [2]string
}

var (
	sayGlyphs = glyphSet{
		only:   [2]string{"<", ">"},
		first:  [2]string{"/", "\\"},
		middle: [2]string{"|", "|"},
		last:   [2]string{"\\", "/"},
	}
	thinkGlyphs = glyphSet{
		only:   [2]string{"(", ")"},
		first:  [2]string{"(", ")"},
		middle: [2]string{"(", ")"},
		last:   [2]string{"(", ")"},
	}
)

// Render wraps text to the fixed column budget and returns the bordered
// balloon. Thought balloons use parenthesis sides on every line regardless of
// line count.
func Render(text string, think bool) string {
	lines := wrapText(text)

	width := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}

	set := sayGlyphs
	if think {
		set = thinkGlyphs
	}

	out := make([]string, 0, len(lines)+2)
	out = append(out, " "+strings.Repeat("_", width+2))

	last := len(lines) - 1
	for i, line := range lines {
		var pair [2]string
		switch {
		case last == 0:
			pair = set.only
		case i == 0:
			pair = set.first
		case i == last:
			pair = set.last
		default:
			pair = set.middle
		}
		out = append(out, pair[0]+" "+padRight(line, width)+" "+pair[1])
	}

	out = append(out, " "+strings.Repeat("-", width+2))
	return strings.Join(out, "\n")
}

// wrapText sanitizes the text, soft-wraps at whitespace, and force-breaks
// words longer than the limit. Breaks always land on code point boundaries.
func wrapText(text string) []string {
	wrapped := wordwrap.String(sanitize(text), wrapLimit)
	wrapped = wrap.String(wrapped, wrapLimit)
	return strings.Split(wrapped, "\n")
}

// sanitize repairs malformed UTF-8 by replacing each invalid byte with U+FFFD
// and normalizes line endings.
func sanitize(text string) string {
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}
	return strings.ReplaceAll(text, "\r\n", "\n")
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
