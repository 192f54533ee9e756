// Package archive coordinates fetching and parsing to search the archive
// and read chapters. Each call is independent; the caller keeps any page
// cursor across searches.
package archive

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/ficread"
)

// Service searches the archive and reads chapters.
type Service struct {
	BaseURL  string
	Fetcher  ficread.Fetcher
	Works    ficread.WorkParser
	Chapters ficread.ChapterParser
}

// Search fetches and parses one page of search results.
func (s *Service) Search(ctx context.Context, q *ficread.SearchQuery) (*ficread.SearchPage, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	searchURL := strings.TrimRight(s.BaseURL, "/") + "/works/search?" + q.Values().Encode()
	html, err := s.Fetcher.Fetch(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("fetching search results: %w", err)
	}
	return s.Works.ParseSearch(html)
}

// Read fetches chapter number (1-based) of the work at workURL. URLs
// pointing at a single chapter are read relative to their work.
//
// The first chapter is read from the work page itself. Later chapters are
// located through the work's chapter index.
func (s *Service) Read(ctx context.Context, workURL string, number int) (*ficread.Chapter, error) {
	if number < 1 {
		return nil, ficread.Errorf(ficread.EINVALID, "chapter must be at least 1, got %d", number)
	}
	work, err := WorkURL(workURL)
	if err != nil {
		return nil, err
	}

	if number == 1 {
		html, err := s.Fetcher.Fetch(ctx, work)
		if err != nil {
			return nil, fmt.Errorf("fetching work: %w", err)
		}
		c, err := s.Chapters.ParseChapter(html)
		if err != nil {
			return nil, err
		}
		c.Number = 1
		return c, nil
	}

	index, err := s.Fetcher.Fetch(ctx, work+"/navigate")
	if err != nil {
		return nil, fmt.Errorf("fetching chapter index: %w", err)
	}
	links, err := s.Chapters.ParseChapterIndex(index)
	if err != nil {
		return nil, err
	}
	if number > len(links) {
		return nil, ficread.Errorf(ficread.EINVALID, "chapter %d requested but the work has %d", number, len(links))
	}

	html, err := s.Fetcher.Fetch(ctx, links[number-1])
	if err != nil {
		return nil, fmt.Errorf("fetching chapter %d: %w", number, err)
	}
	c, err := s.Chapters.ParseChapter(html)
	if err != nil {
		return nil, err
	}
	c.Number = number
	c.Total = len(links)
	return c, nil
}

// WorkURL reduces a work or chapter URL to the work's URL, e.g.
// https://host/works/1/chapters/2?view_adult=true → https://host/works/1.
// URLs without a works segment are returned without query or fragment.
func WorkURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", ficread.Errorf(ficread.EINVALID, "invalid work URL %q", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+1 < len(segments); i++ {
		if segments[i] == "works" && segments[i+1] != "" {
			u.Path = "/works/" + segments[i+1]
			u.RawPath = ""
			break
		}
	}
	return strings.TrimRight(u.String(), "/"), nil
}
