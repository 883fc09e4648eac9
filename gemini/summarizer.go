package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/siteqa"
)

// MaxSummaryInputChars bounds the page text sent to the summarization
// prompt. Longer pages are sampled with SmartTruncate.
const MaxSummaryInputChars = 15000

const summarySystemPrompt = `You summarize web pages for a question-answering index.
Given the text of one page, produce a JSON object with:
- "topics": the main topics the page covers
- "key_points": the most important facts or statements on the page
- "potential_questions": questions this page could answer
- "summary": a concise paragraph describing what the page is about
Base everything strictly on the provided text. All four fields are required.`

// Ensure Summarizer implements siteqa.Summarizer at compile time.
var _ siteqa.Summarizer = (*Summarizer)(nil)

// Summarizer produces structured page summaries with Gemini.
type Summarizer struct {
	completer siteqa.Completer
	policy    siteqa.RetryPolicy
	usage     *Usage
}

// NewSummarizer creates a Summarizer. A nil usage counter disables usage
// tracking.
func NewSummarizer(completer siteqa.Completer, policy siteqa.RetryPolicy, usage *Usage) *Summarizer {
	return &Summarizer{completer: completer, policy: policy, usage: usage}
}

// Summarize returns a validated summary of the page's cleaned text. Transient
// provider failures and unusable model output are retried under the policy.
func (s *Summarizer) Summarize(ctx context.Context, pageURL, text string) (*siteqa.PageSummary, error) {
	if pageURL == "" {
		return nil, siteqa.Errorf(siteqa.EINVALID, "page URL required")
	}
	if text == "" {
		return nil, siteqa.Errorf(siteqa.EINVALID, "page text required")
	}

	text = SmartTruncate(text, MaxSummaryInputChars)
	req := siteqa.CompletionRequest{
		SystemPrompt: summarySystemPrompt,
		UserPrompt:   fmt.Sprintf("Page URL: %s\n\nPage text:\n%s", pageURL, text),
		Shape:        siteqa.ShapeSummary,
	}

	var summary *siteqa.PageSummary
	err := s.policy.Do(ctx, func(ctx context.Context) error {
		resp, err := s.completer.Complete(ctx, req)
		if err != nil {
			return err
		}
		if s.usage != nil {
			s.usage.Add(resp.InputTokens, resp.OutputTokens)
		}
		summary, err = parseSummary(pageURL, resp.Text)
		return err
	})
	if err != nil {
		return nil, siteqa.Errorf(siteqa.ErrorCode(err), "summarize %s: %s", pageURL, siteqa.ErrorMessage(err))
	}
	return summary, nil
}

// parseSummary decodes and validates the model's summary output.
// Unusable output is EINTERNAL so the retry policy treats it as transient.
func parseSummary(pageURL, text string) (*siteqa.PageSummary, error) {
	var wire struct {
		Topics             []string `json:"topics"`
		KeyPoints          []string `json:"key_points"`
		PotentialQuestions []string `json:"potential_questions"`
		Summary            string   `json:"summary"`
	}
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, siteqa.Errorf(siteqa.EINTERNAL, "unparsable summary response: %v", err)
	}
	summary := &siteqa.PageSummary{
		URL:                pageURL,
		Topics:             wire.Topics,
		KeyPoints:          wire.KeyPoints,
		CandidateQuestions: wire.PotentialQuestions,
		Synopsis:           wire.Summary,
	}
	if err := summary.Validate(); err != nil {
		return nil, siteqa.Errorf(siteqa.EINTERNAL, "incomplete summary response: %s", siteqa.ErrorMessage(err))
	}
	return summary, nil
}
