package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/siteqa"
)

const selectionSystemPrompt = `You select pages from a website index that are relevant to a question.
You are given one summary per page: its URL, topics, key points, the
questions it could answer, and a synopsis.
Return a JSON object with:
- "relevant_urls": the URLs of the pages needed to answer the question,
  most relevant first, using only URLs that appear in the summaries
- "reasoning": a brief explanation of the selection
If no page is relevant, return an empty "relevant_urls" list.`

// Ensure Selector implements siteqa.PageSelector at compile time.
var _ siteqa.PageSelector = (*Selector)(nil)

// Selector chooses question-relevant pages with Gemini.
type Selector struct {
	completer siteqa.Completer
	policy    siteqa.RetryPolicy
	usage     *Usage
}

// NewSelector creates a Selector. A nil usage counter disables usage
// tracking.
func NewSelector(completer siteqa.Completer, policy siteqa.RetryPolicy, usage *Usage) *Selector {
	return &Selector{completer: completer, policy: policy, usage: usage}
}

// Select returns the subset of summarized pages relevant to the question,
// preserving the model's relevance ordering. URLs the model returns that are
// not present in summaries are discarded.
func (s *Selector) Select(ctx context.Context, question string, summaries []*siteqa.PageSummary) (*siteqa.SelectionResult, error) {
	if question == "" {
		return nil, siteqa.Errorf(siteqa.EINVALID, "question required")
	}
	if len(summaries) == 0 {
		return &siteqa.SelectionResult{}, nil
	}

	req := siteqa.CompletionRequest{
		SystemPrompt: selectionSystemPrompt,
		UserPrompt:   fmt.Sprintf("Question: %s\n\nPage summaries:\n%s", question, summaryDigest(summaries)),
		Shape:        siteqa.ShapeSelection,
	}

	var result *siteqa.SelectionResult
	err := s.policy.Do(ctx, func(ctx context.Context) error {
		resp, err := s.completer.Complete(ctx, req)
		if err != nil {
			return err
		}
		if s.usage != nil {
			s.usage.Add(resp.InputTokens, resp.OutputTokens)
		}
		result, err = parseSelection(resp.Text, summaries)
		return err
	})
	if err != nil {
		return nil, siteqa.Errorf(siteqa.ErrorCode(err), "select pages: %s", siteqa.ErrorMessage(err))
	}
	return result, nil
}

// parseSelection decodes the model's selection and filters it to URLs that
// actually exist in the index. The model's output is untrusted.
func parseSelection(text string, summaries []*siteqa.PageSummary) (*siteqa.SelectionResult, error) {
	var wire struct {
		RelevantURLs []string `json:"relevant_urls"`
		Reasoning    string   `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, siteqa.Errorf(siteqa.EINTERNAL, "unparsable selection response: %v", err)
	}

	known := make(map[string]bool, len(summaries))
	for _, summary := range summaries {
		known[summary.URL] = true
	}

	result := &siteqa.SelectionResult{Rationale: wire.Reasoning}
	seen := make(map[string]bool, len(wire.RelevantURLs))
	for _, u := range wire.RelevantURLs {
		if !known[u] || seen[u] {
			continue
		}
		seen[u] = true
		result.URLs = append(result.URLs, u)
	}
	return result, nil
}

// summaryDigest renders summaries as the compact prompt block the selection
// call reads.
func summaryDigest(summaries []*siteqa.PageSummary) string {
	var sb strings.Builder
	for i, summary := range summaries {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "URL: %s\n", summary.URL)
		fmt.Fprintf(&sb, "Topics: %s\n", strings.Join(summary.Topics, ", "))
		if len(summary.KeyPoints) > 0 {
			fmt.Fprintf(&sb, "Key points: %s\n", strings.Join(summary.KeyPoints, "; "))
		}
		if len(summary.CandidateQuestions) > 0 {
			fmt.Fprintf(&sb, "Can answer: %s\n", strings.Join(summary.CandidateQuestions, "; "))
		}
		fmt.Fprintf(&sb, "Summary: %s\n", summary.Synopsis)
	}
	return sb.String()
}
