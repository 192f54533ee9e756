package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ficread"
)

// Ensure ChapterParser implements ficread.ChapterParser at compile time.
var _ ficread.ChapterParser = (*ChapterParser)(nil)

// Selectors for the chapter body, most specific first.
var chapterBodySelectors = []string{
	"#chapters div.userstuff[role='article']",
	"#chapters div.userstuff",
	"div.userstuff",
}

// ChapterParser extracts chapters from archive work pages.
type ChapterParser struct {
	baseURL string
}

// NewChapterParser creates a ChapterParser resolving links against baseURL.
func NewChapterParser(baseURL string) *ChapterParser {
	return &ChapterParser{baseURL: baseURL}
}

// ParseChapter extracts the chapter shown on a work page. Missing title or
// author resolve to defaults and a missing body yields empty text. The
// chapter number defaults to 1.
func (p *ChapterParser) ParseChapter(html string) (*ficread.Chapter, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ficread.Errorf(ficread.EINVALID, "failed to parse HTML: %v", err)
	}
	root := doc.Selection

	c := &ficread.Chapter{
		Title:  text(root, "h2.title", ficread.UnknownTitle),
		Author: text(root, "a[rel='author']", ficread.UnknownAuthor),
		Number: 1,
		Total:  countChapters(root),
	}
	for _, selector := range chapterBodySelectors {
		if body, ok := first(root, selector); ok {
			c.Text = Reconstruct(body)
			break
		}
	}
	return c, nil
}

// ParseChapterIndex returns the chapter links of a work's navigation page.
func (p *ChapterParser) ParseChapterIndex(html string) ([]string, error) {
	base, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, ficread.Errorf(ficread.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ficread.Errorf(ficread.EINVALID, "failed to parse HTML: %v", err)
	}

	links := []string{}
	doc.Find("ol.chapter li a[href]").Each(func(_ int, a *goquery.Selection) {
		ref, err := url.Parse(strings.TrimSpace(a.AttrOr("href", "")))
		if err != nil {
			return
		}
		links = append(links, base.ResolveReference(ref).String())
	})
	return links, nil
}

// countChapters reads the chapter count from, in order, the chapter
// selector, a chapter list, or the "published/total" stat. Defaults to 1.
func countChapters(root *goquery.Selection) int {
	if n := root.Find("#chapter_index option").Length(); n > 0 {
		return n
	}
	if n := root.Find("ol.chapter li").Length(); n > 0 {
		return n
	}
	stat := text(root, "dl.stats dd.chapters", "")
	published, _, _ := strings.Cut(stat, "/")
	if n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(published), ",", "")); err == nil && n > 0 {
		return n
	}
	return 1
}
