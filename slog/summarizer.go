package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/siteqa"
)

// Ensure LoggingSummarizer implements siteqa.Summarizer.
var _ siteqa.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with per-page logging.
type LoggingSummarizer struct {
	next   siteqa.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next siteqa.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize logs the page being summarized and delegates to the wrapped
// summarizer.
func (s *LoggingSummarizer) Summarize(ctx context.Context, pageURL, text string) (summary *siteqa.PageSummary, err error) {
	defer func(begin time.Time) {
		topics := 0
		if summary != nil {
			topics = len(summary.Topics)
		}
		s.logger.Info("summarize",
			"url", pageURL,
			"chars", len(text),
			"topics", topics,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, pageURL, text)
}
