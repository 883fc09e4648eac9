package mock

import (
	"context"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.Completer = (*Completer)(nil)

// Completer is a mock implementation of siteqa.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, req siteqa.CompletionRequest) (*siteqa.CompletionResponse, error)
}

func (c *Completer) Complete(ctx context.Context, req siteqa.CompletionRequest) (*siteqa.CompletionResponse, error) {
	return c.CompleteFn(ctx, req)
}
