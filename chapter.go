package ficread

import "strings"

// Chapter is one chapter of a work, reconstructed as plain text.
type Chapter struct {
	Title  string
	Author string

	// Number is the 1-based chapter index; Total is the chapter count.
	Number int
	Total  int

	// Text holds the reconstructed body. Paragraphs are separated by blank
	// lines; single newlines inside a paragraph are soft breaks.
	Text string
}

// Paragraphs returns the chapter body split into paragraphs.
func (c *Chapter) Paragraphs() []string {
	return SplitParagraphs(c.Text)
}

// ChapterParser extracts chapters and chapter indexes from work pages.
type ChapterParser interface {
	// ParseChapter extracts the metadata and reconstructed body of the
	// chapter shown on a work page.
	ParseChapter(html string) (*Chapter, error)

	// ParseChapterIndex returns the absolute URLs of every chapter listed
	// on a work's chapter index page, in reading order.
	ParseChapterIndex(html string) ([]string, error)
}

// SplitParagraphs splits text on blank lines. Lines inside a paragraph are
// trimmed and joined with single spaces. Empty paragraphs are dropped.
func SplitParagraphs(text string) []string {
	var (
		paragraphs []string
		current    []string
	)
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = current[:0]
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return paragraphs
}
