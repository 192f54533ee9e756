package ficread

import (
	"fmt"
	"strings"
)

// Width limits for formatted output.
const (
	DefaultWidth = 80
	MinWidth     = 20
)

// Margins subtracted from the formatter width before wrapping.
const (
	summaryMargin = 6
	chapterMargin = 4
)

const maxFandoms = 2

// Formatter lays out works and chapters as fixed-width plain text.
type Formatter struct {
	// Width is the terminal width in columns.
	Width int
}

// NewFormatter returns a Formatter for the given terminal width.
// Widths of zero or less select DefaultWidth; positive widths are raised
// to MinWidth.
func NewFormatter(width int) *Formatter {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Formatter{Width: max(width, MinWidth)}
}

// FormatWorks renders a numbered listing of works.
func (f *Formatter) FormatWorks(works []*Work) string {
	if len(works) == 0 {
		return "No works found.\n"
	}

	var b strings.Builder
	rule := strings.Repeat("=", f.Width)
	fmt.Fprintf(&b, "%s\nFound %d works:\n%s\n", rule, len(works), rule)

	for i, w := range works {
		b.WriteString("\n")
		for _, line := range Wrap(fmt.Sprintf("%d. %s", i+1, w.Title), f.Width, "", "   ") {
			b.WriteString(line + "\n")
		}
		fmt.Fprintf(&b, "   By: %s\n", strings.Join(w.Authors, ", "))

		if len(w.Fandoms) > 0 {
			shown := w.Fandoms[:min(len(w.Fandoms), maxFandoms)]
			fandoms := strings.Join(shown, ", ")
			if extra := len(w.Fandoms) - len(shown); extra > 0 {
				fandoms += fmt.Sprintf(" (+%d more)", extra)
			}
			fmt.Fprintf(&b, "   Fandom: %s\n", fandoms)
		}

		fmt.Fprintf(&b, "   Rating: %s\n", w.Rating)
		if len(w.Warnings) > 0 {
			fmt.Fprintf(&b, "   Warnings: %s\n", strings.Join(w.Warnings, ", "))
		}

		fmt.Fprintf(&b, "   Stats: %s kudos | %s words | %s chapters | %s hits\n",
			w.Kudos, w.Words, w.Chapters, w.Hits)

		if len(w.Tags) > 0 {
			tags := w.Tags[:min(len(w.Tags), MaxTags)]
			fmt.Fprintf(&b, "   Tags: %s\n", strings.Join(tags, ", "))
		}

		if w.Summary != "" {
			for _, line := range Wrap(w.Summary, f.Width-summaryMargin, "   > ", "     ") {
				b.WriteString(line + "\n")
			}
		}

		fmt.Fprintf(&b, "   Link: %s\n", w.URL)
		b.WriteString(strings.Repeat("-", f.Width) + "\n")
	}

	return b.String()
}

// FormatChapter renders a chapter with a header, wrapped paragraphs and,
// for multi-chapter works, a navigation footer.
func (f *Formatter) FormatChapter(c *Chapter) string {
	var b strings.Builder
	rule := strings.Repeat("=", f.Width)

	b.WriteString(rule + "\n")
	for _, line := range Wrap(c.Title, f.Width, "", "") {
		b.WriteString(line + "\n")
	}
	for _, line := range Wrap("By "+c.Author, f.Width, "", "   ") {
		b.WriteString(line + "\n")
	}
	if c.Total > 1 {
		fmt.Fprintf(&b, "Chapter %d of %d\n", c.Number, c.Total)
	}
	b.WriteString(rule + "\n\n")

	width := max(f.Width-chapterMargin, MinWidth-chapterMargin)
	for _, p := range c.Paragraphs() {
		for _, line := range Wrap(p, width, "", "") {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	if c.Total > 1 {
		b.WriteString("\n" + rule + "\n")
		var hints []string
		if c.Number < c.Total {
			hints = append(hints, fmt.Sprintf("Next: use --chapter %d to read the next chapter", c.Number+1))
		}
		if c.Number > 1 {
			hints = append(hints, fmt.Sprintf("Previous: use --chapter %d to read the previous chapter", c.Number-1))
		}
		for _, hint := range hints {
			for _, line := range Wrap(hint, f.Width, "", "  ") {
				b.WriteString(line + "\n")
			}
		}
		b.WriteString(rule + "\n")
	}

	return b.String()
}
