package mock

import (
	"context"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of siteqa.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, pageURL, text string) (*siteqa.PageSummary, error)
}

func (s *Summarizer) Summarize(ctx context.Context, pageURL, text string) (*siteqa.PageSummary, error) {
	return s.SummarizeFn(ctx, pageURL, text)
}
