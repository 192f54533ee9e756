package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/ficread"
)

// Ensure LoggingWorkParser implements ficread.WorkParser.
var _ ficread.WorkParser = (*LoggingWorkParser)(nil)

// LoggingWorkParser wraps a WorkParser and logs how many items were
// extracted and skipped.
type LoggingWorkParser struct {
	next   ficread.WorkParser
	logger *slog.Logger
}

// NewLoggingWorkParser creates a new LoggingWorkParser.
func NewLoggingWorkParser(next ficread.WorkParser, logger *slog.Logger) *LoggingWorkParser {
	return &LoggingWorkParser{next: next, logger: logger}
}

// ParseSearch delegates to the wrapped parser and logs the outcome.
func (p *LoggingWorkParser) ParseSearch(html string) (page *ficread.SearchPage, err error) {
	defer func(begin time.Time) {
		var works, skipped int
		if page != nil {
			works, skipped = len(page.Works), page.Skipped
		}
		if skipped > 0 {
			p.logger.Warn("skipped unreadable work items", "skipped", skipped)
		}
		p.logger.Info("parse search",
			"works", works,
			"skipped", skipped,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseSearch(html)
}
