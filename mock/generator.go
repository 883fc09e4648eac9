package mock

import (
	"context"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.AnswerGenerator = (*AnswerGenerator)(nil)

// AnswerGenerator is a mock implementation of siteqa.AnswerGenerator.
type AnswerGenerator struct {
	GenerateFn func(ctx context.Context, question, contextText string) (*siteqa.AnswerResult, error)
}

func (g *AnswerGenerator) Generate(ctx context.Context, question, contextText string) (*siteqa.AnswerResult, error) {
	return g.GenerateFn(ctx, question, contextText)
}
