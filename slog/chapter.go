package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/ficread"
)

// Ensure LoggingChapterParser implements ficread.ChapterParser.
var _ ficread.ChapterParser = (*LoggingChapterParser)(nil)

// LoggingChapterParser wraps a ChapterParser and logs what was found.
type LoggingChapterParser struct {
	next   ficread.ChapterParser
	logger *slog.Logger
}

// NewLoggingChapterParser creates a new LoggingChapterParser.
func NewLoggingChapterParser(next ficread.ChapterParser, logger *slog.Logger) *LoggingChapterParser {
	return &LoggingChapterParser{next: next, logger: logger}
}

// ParseChapter delegates to the wrapped parser and logs the chapter found.
func (p *LoggingChapterParser) ParseChapter(html string) (c *ficread.Chapter, err error) {
	defer func(begin time.Time) {
		var title string
		var total, paragraphs int
		if c != nil {
			title, total, paragraphs = c.Title, c.Total, len(c.Paragraphs())
		}
		if err == nil && paragraphs == 0 {
			p.logger.Warn("chapter has no text", "title", title)
		}
		p.logger.Info("parse chapter",
			"title", title,
			"total", total,
			"paragraphs", paragraphs,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseChapter(html)
}

// ParseChapterIndex delegates to the wrapped parser and logs the number of
// chapters listed.
func (p *LoggingChapterParser) ParseChapterIndex(html string) (links []string, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse chapter index",
			"chapters", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseChapterIndex(html)
}
