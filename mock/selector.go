package mock

import (
	"context"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.PageSelector = (*PageSelector)(nil)

// PageSelector is a mock implementation of siteqa.PageSelector.
type PageSelector struct {
	SelectFn func(ctx context.Context, question string, summaries []*siteqa.PageSummary) (*siteqa.SelectionResult, error)
}

func (s *PageSelector) Select(ctx context.Context, question string, summaries []*siteqa.PageSummary) (*siteqa.SelectionResult, error) {
	return s.SelectFn(ctx, question, summaries)
}
