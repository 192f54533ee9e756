package ficread

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Wrap fills text into lines no wider than width terminal cells.
// Whitespace runs are collapsed. The first line starts with indent, later
// lines with hangingIndent; both count towards width. Words longer than a
// line are broken. Returns nil when text has no words.
func Wrap(text string, width int, indent, hangingIndent string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	s := strings.Join(words, " ")

	// The first line has its own width, so it is filled alone and the
	// remainder is filled again at the hanging width.
	first := fill(s, avail(width, indent))[0]
	lines := []string{indent + first}

	rest := strings.TrimLeft(strings.TrimPrefix(s, first), " ")
	if rest == "" {
		return lines
	}
	for _, line := range fill(rest, avail(width, hangingIndent)) {
		lines = append(lines, hangingIndent+line)
	}
	return lines
}

// fill word-wraps s at limit cells, hard-breaking words that do not fit.
func fill(s string, limit int) []string {
	filled := wrap.String(wordwrap.String(s, limit), limit)
	lines := strings.Split(filled, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

func avail(width int, prefix string) int {
	return max(width-runewidth.StringWidth(prefix), 1)
}
