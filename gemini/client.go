// Package gemini implements the siteqa LLM call sites using Google Gemini:
// the completion capability itself plus the summarizer, page selector, and
// answer generator built on it.
package gemini

import (
	"context"

	"github.com/fwojciec/siteqa"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for all structured completions.
const DefaultModel = "gemini-2.5-flash"

// Ensure Client implements siteqa.Completer at compile time.
var _ siteqa.Completer = (*Client)(nil)

// Client implements the LLM completion capability with Gemini's constrained
// JSON output.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Completer backed by the given Gemini client.
// An empty model selects DefaultModel.
func NewClient(client *genai.Client, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{client: client, model: model}
}

// Complete runs a single structured completion. Provider failures surface
// as EUNAVAILABLE so callers' retry policies treat them as transient.
func (c *Client) Complete(ctx context.Context, req siteqa.CompletionRequest) (*siteqa.CompletionResponse, error) {
	temp := float32(0.2)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   schemaFor(req.Shape),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.UserPrompt}},
		}},
		config,
	)
	if err != nil {
		return nil, siteqa.Errorf(siteqa.EUNAVAILABLE, "gemini completion: %v", err)
	}
	if result == nil {
		return nil, siteqa.Errorf(siteqa.EINTERNAL, "gemini returned nil result")
	}

	resp := &siteqa.CompletionResponse{Text: result.Text()}
	if usage := result.UsageMetadata; usage != nil {
		resp.InputTokens = int(usage.PromptTokenCount)
		resp.OutputTokens = int(usage.CandidatesTokenCount)
	}
	return resp, nil
}

// schemaFor returns the Gemini response schema for a shape. Field names
// match the JSON the call sites unmarshal.
func schemaFor(shape siteqa.ResponseShape) *genai.Schema {
	stringArray := &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}

	switch shape {
	case siteqa.ShapeSummary:
		return &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"topics":              stringArray,
				"key_points":          stringArray,
				"potential_questions": stringArray,
				"summary":             {Type: genai.TypeString},
			},
			Required: []string{"topics", "key_points", "potential_questions", "summary"},
		}
	case siteqa.ShapeSelection:
		return &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"relevant_urls": stringArray,
				"reasoning":     {Type: genai.TypeString},
			},
			Required: []string{"relevant_urls", "reasoning"},
		}
	case siteqa.ShapeAnswer:
		return &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"answer":       {Type: genai.TypeString},
				"confidence":   {Type: genai.TypeNumber},
				"sources_used": stringArray,
			},
			Required: []string{"answer", "confidence", "sources_used"},
		}
	default:
		return nil
	}
}
