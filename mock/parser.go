package mock

import "github.com/fwojciec/ficread"

var (
	_ ficread.WorkParser    = (*WorkParser)(nil)
	_ ficread.ChapterParser = (*ChapterParser)(nil)
)

// WorkParser is a mock implementation of ficread.WorkParser.
type WorkParser struct {
	ParseSearchFn func(html string) (*ficread.SearchPage, error)
}

func (p *WorkParser) ParseSearch(html string) (*ficread.SearchPage, error) {
	return p.ParseSearchFn(html)
}

// ChapterParser is a mock implementation of ficread.ChapterParser.
type ChapterParser struct {
	ParseChapterFn      func(html string) (*ficread.Chapter, error)
	ParseChapterIndexFn func(html string) ([]string, error)
}

func (p *ChapterParser) ParseChapter(html string) (*ficread.Chapter, error) {
	return p.ParseChapterFn(html)
}

func (p *ChapterParser) ParseChapterIndex(html string) ([]string, error) {
	return p.ParseChapterIndexFn(html)
}
