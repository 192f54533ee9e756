// Package slog provides logging decorators for ficread services.
package slog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/ficread"
)

// Ensure LoggingFetcher implements ficread.Fetcher.
var _ ficread.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs each archive request with the
// kind of page requested. A response that is still the consent
// interstitial is logged as a warning.
type LoggingFetcher struct {
	next   ficread.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next ficread.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		gated := err == nil && strings.Contains(html, ficread.ConsentMarker)
		if gated {
			f.logger.Warn("consent page returned", "url", url)
		}
		f.logger.Info("fetch",
			"url", url,
			"page", pageKind(url),
			"bytes", len(html),
			"gated", gated,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// pageKind names the archive page a URL points at.
func pageKind(url string) string {
	path, _, _ := strings.Cut(url, "?")
	switch {
	case strings.HasSuffix(path, "/works/search"):
		return "search"
	case strings.HasSuffix(path, "/navigate"):
		return "index"
	case strings.Contains(path, "/chapters/"):
		return "chapter"
	case strings.Contains(path, "/works/"):
		return "work"
	}
	return "other"
}
