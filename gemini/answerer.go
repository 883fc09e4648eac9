package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/siteqa"
)

const answerSystemPrompt = `You answer questions about a website using only the provided context.
The context contains the text of relevant pages, each introduced by a
"[Source: url]" line.
Return a JSON object with:
- "answer": the answer, grounded strictly in the context; if the context is
  empty or does not contain the answer, say that no relevant content was
  found on the site instead of guessing
- "confidence": how well the context supports the answer, from 0 to 1
- "sources_used": the source URLs the answer actually draws on`

// Ensure Answerer implements siteqa.AnswerGenerator at compile time.
var _ siteqa.AnswerGenerator = (*Answerer)(nil)

// Answerer generates grounded answers with Gemini.
type Answerer struct {
	completer siteqa.Completer
	policy    siteqa.RetryPolicy
	usage     *Usage
}

// NewAnswerer creates an Answerer. A nil usage counter disables usage
// tracking.
func NewAnswerer(completer siteqa.Completer, policy siteqa.RetryPolicy, usage *Usage) *Answerer {
	return &Answerer{completer: completer, policy: policy, usage: usage}
}

// Generate answers the question from contextText alone. Cited URLs the model
// invents are discarded; only URLs whose source blocks appear in contextText
// survive into the result.
func (a *Answerer) Generate(ctx context.Context, question, contextText string) (*siteqa.AnswerResult, error) {
	if question == "" {
		return nil, siteqa.Errorf(siteqa.EINVALID, "question required")
	}

	req := siteqa.CompletionRequest{
		SystemPrompt: answerSystemPrompt,
		UserPrompt:   fmt.Sprintf("Question: %s\n\nContext:\n%s", question, contextText),
		Shape:        siteqa.ShapeAnswer,
	}
	sources := contextSources(contextText)

	var result *siteqa.AnswerResult
	err := a.policy.Do(ctx, func(ctx context.Context) error {
		resp, err := a.completer.Complete(ctx, req)
		if err != nil {
			return err
		}
		if a.usage != nil {
			a.usage.Add(resp.InputTokens, resp.OutputTokens)
		}
		result, err = parseAnswer(resp.Text, sources)
		if err != nil {
			return err
		}
		result.TokensUsed = resp.InputTokens + resp.OutputTokens
		return nil
	})
	if err != nil {
		return nil, siteqa.Errorf(siteqa.ErrorCode(err), "generate answer: %s", siteqa.ErrorMessage(err))
	}
	return result, nil
}

// parseAnswer decodes the model's answer and filters its citations to
// sources that were actually in the prompt.
func parseAnswer(text string, sources map[string]bool) (*siteqa.AnswerResult, error) {
	var wire struct {
		Answer      string   `json:"answer"`
		Confidence  float64  `json:"confidence"`
		SourcesUsed []string `json:"sources_used"`
	}
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, siteqa.Errorf(siteqa.EINTERNAL, "unparsable answer response: %v", err)
	}
	if wire.Answer == "" {
		return nil, siteqa.Errorf(siteqa.EINTERNAL, "empty answer response")
	}

	result := &siteqa.AnswerResult{Answer: wire.Answer}
	seen := make(map[string]bool, len(wire.SourcesUsed))
	for _, u := range wire.SourcesUsed {
		if !sources[u] || seen[u] {
			continue
		}
		seen[u] = true
		result.CitedURLs = append(result.CitedURLs, u)
	}
	return result, nil
}

// contextSources extracts the URLs of the "[Source: url]" blocks present in
// a prompt context.
func contextSources(contextText string) map[string]bool {
	sources := make(map[string]bool)
	for _, line := range strings.Split(contextText, "\n") {
		rest, ok := strings.CutPrefix(line, "[Source: ")
		if !ok {
			continue
		}
		url, ok := strings.CutSuffix(rest, "]")
		if !ok {
			continue
		}
		sources[url] = true
	}
	return sources
}
