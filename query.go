package siteqa

import "context"

// SelectionResult holds the pages an LLM call judged relevant to a question.
// It is ephemeral, produced once per question.
type SelectionResult struct {
	// URLs are the selected page URLs in the order the model returned them.
	URLs []string

	// Rationale is the model's explanation of the selection, kept for logging.
	Rationale string
}

// AnswerResult holds a generated answer and its provenance.
type AnswerResult struct {
	Answer     string   `json:"answer"`
	CitedURLs  []string `json:"citedUrls"`
	TokensUsed int      `json:"tokensUsed"`
}

// Summarizer produces a structured summary for a page's cleaned text.
type Summarizer interface {
	// Summarize retries transient failures internally and returns
	// EINTERNAL if the model's output remains unusable after the
	// retry budget is exhausted.
	Summarize(ctx context.Context, pageURL, text string) (*PageSummary, error)
}

// PageSelector chooses which indexed pages are relevant to a question.
type PageSelector interface {
	// Select returns a subset of the URLs present in summaries.
	// URLs the model invents are discarded; an empty selection is a
	// valid result, not an error.
	Select(ctx context.Context, question string, summaries []*PageSummary) (*SelectionResult, error)
}

// AnswerGenerator answers a question grounded in the supplied context text.
type AnswerGenerator interface {
	// Generate instructs the model to report that no relevant content
	// was found when contextText is empty, rather than inventing an
	// answer.
	Generate(ctx context.Context, question, contextText string) (*AnswerResult, error)
}
