package siteqa

import "context"

// ResponseShape identifies the structured response contract a completion
// must follow. Each LLM call site in the pipeline has its own shape.
type ResponseShape int

const (
	// ShapeSummary is the page summarization response: topics, key
	// points, candidate questions, and a synopsis.
	ShapeSummary ResponseShape = iota

	// ShapeSelection is the page selection response: relevant URLs and
	// the model's reasoning.
	ShapeSelection

	// ShapeAnswer is the answer generation response: answer text,
	// confidence, and the sources used.
	ShapeAnswer
)

// CompletionRequest is a single structured-output completion call.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Shape        ResponseShape
}

// CompletionResponse holds the model's raw structured output and the token
// usage the provider reported for the call.
type CompletionResponse struct {
	// Text is the model's output, constrained to the requested shape's
	// JSON schema. Callers still validate it: the constraint is a
	// request, and the model's output is untrusted.
	Text string

	InputTokens  int
	OutputTokens int
}

// Completer is the external LLM completion capability consumed by the
// summarization, page selection, and answer generation call sites.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
