// Package query answers questions against a built site index: page
// selection, context assembly, and answer generation.
package query

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/siteqa"
	"github.com/google/uuid"
)

// DefaultMaxContextChars bounds the context assembled for one question.
const DefaultMaxContextChars = 180000

// DefaultTimeout bounds the end-to-end handling of one question.
const DefaultTimeout = 2 * time.Minute

// Processor answers questions against an IndexState. Selector and Generator
// are required. Questions are independent: the processor only reads the
// index, so concurrent calls are safe.
type Processor struct {
	Selector        siteqa.PageSelector
	Generator       siteqa.AnswerGenerator
	MaxContextChars int
	Timeout         time.Duration
	Logger          *slog.Logger
}

// Answer runs the full question pipeline: select relevant pages, assemble
// their text into a bounded context, and generate a grounded answer. An
// empty selection still produces an answer reporting that nothing relevant
// was found.
func (p *Processor) Answer(ctx context.Context, question string, state *siteqa.IndexState) (*siteqa.AnswerResult, error) {
	if question == "" {
		return nil, siteqa.Errorf(siteqa.EINVALID, "question required")
	}
	if state == nil || state.Len() == 0 {
		return nil, siteqa.Errorf(siteqa.EINVALID, "no pages indexed")
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("question_id", uuid.NewString())

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	selection, err := p.Selector.Select(ctx, question, state.Summaries())
	if err != nil {
		return nil, siteqa.Errorf(siteqa.ErrorCode(err), "page selection: %s", siteqa.ErrorMessage(err))
	}
	logger.Info("pages selected", "count", len(selection.URLs), "rationale", selection.Rationale)

	maxChars := p.MaxContextChars
	if maxChars <= 0 {
		maxChars = DefaultMaxContextChars
	}
	contextText, included := siteqa.BuildContext(selection.URLs, state, maxChars)
	logger.Info("context built", "sources", len(included), "chars", len(contextText))

	result, err := p.Generator.Generate(ctx, question, contextText)
	if err != nil {
		return nil, siteqa.Errorf(siteqa.ErrorCode(err), "answer generation: %s", siteqa.ErrorMessage(err))
	}
	logger.Info("answer generated", "citations", len(result.CitedURLs), "tokens", result.TokensUsed)
	return result, nil
}
