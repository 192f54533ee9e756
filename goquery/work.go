package goquery

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ficread"
)

// Ensure WorkParser implements ficread.WorkParser at compile time.
var _ ficread.WorkParser = (*WorkParser)(nil)

// WorkParser extracts works from archive search result pages.
type WorkParser struct {
	baseURL string
}

// NewWorkParser creates a WorkParser resolving work links against baseURL.
func NewWorkParser(baseURL string) *WorkParser {
	return &WorkParser{baseURL: baseURL}
}

// ParseSearch extracts every work list item on the page in document order.
//
// Each item is extracted independently. An item without a heading title
// link cannot identify a work and is skipped; every other missing part of an
// item resolves to its default.
func (p *WorkParser) ParseSearch(html string) (*ficread.SearchPage, error) {
	base, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, ficread.Errorf(ficread.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ficread.Errorf(ficread.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &ficread.SearchPage{
		Works:   []*ficread.Work{},
		HasNext: doc.Find("ol.pagination li.next a[href]").Length() > 0,
	}
	doc.Find("li.work").Each(func(_ int, item *goquery.Selection) {
		work, err := parseWork(item, base)
		if err != nil {
			page.Skipped++
			return
		}
		page.Works = append(page.Works, work)
	})

	return page, nil
}

func parseWork(item *goquery.Selection, base *url.URL) (*ficread.Work, error) {
	heading, ok := first(item, "h4.heading")
	if !ok {
		return nil, ficread.Errorf(ficread.ENOTFOUND, "work heading not found")
	}
	link, ok := first(heading, "a:not([rel='author'])")
	if !ok {
		return nil, ficread.Errorf(ficread.ENOTFOUND, "work title link not found")
	}
	href, ok := link.Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return nil, ficread.Errorf(ficread.ENOTFOUND, "work title link has no href")
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return nil, ficread.Errorf(ficread.EINVALID, "invalid work link %q: %v", href, err)
	}

	title := strings.TrimSpace(link.Text())
	if title == "" {
		title = ficread.UnknownTitle
	}

	authors := texts(heading, "a[rel='author']")
	if len(authors) == 0 {
		authors = []string{ficread.UnknownAuthor}
	}

	rating := attr(item, "ul.required-tags span.rating", "title")
	if rating == "" {
		rating = ficread.NotRated
	}

	tags := texts(item, "ul.tags a.tag")
	if len(tags) > ficread.MaxTags {
		tags = tags[:ficread.MaxTags]
	}

	var summary string
	if block, ok := first(item, "blockquote.userstuff"); ok {
		summary = truncate(strings.Join(strings.Fields(Reconstruct(block)), " "), ficread.MaxSummaryLength)
	}

	return &ficread.Work{
		Title:    title,
		Authors:  authors,
		Fandoms:  texts(item, "h5.fandoms a"),
		Rating:   rating,
		Warnings: attrs(item, "ul.required-tags span.warnings", "title"),
		Kudos:    text(item, "dl.stats dd.kudos", ficread.NotAvailable),
		Words:    text(item, "dl.stats dd.words", ficread.NotAvailable),
		Chapters: text(item, "dl.stats dd.chapters", ficread.NotAvailable),
		Hits:     text(item, "dl.stats dd.hits", ficread.NotAvailable),
		Summary:  summary,
		Tags:     tags,
		URL:      base.ResolveReference(ref).String(),
	}, nil
}

// truncate cuts s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n])) + "..."
}
