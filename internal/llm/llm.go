// Package llm wraps the Gemini generation backend and the timeout, retry,
// and race policies layered around it.
package llm

import (
	"context"
	"os"

	"google.golang.org/genai"

	"newsgen/internal/core"
)

// Generation defaults mirrored from the backend configs used per endpoint.
const (
	DefaultTemperature = float32(1.2)
	DefaultTopP        = float32(1.0)

	// TitleMaxOutputTokens bounds title list generation.
	TitleMaxOutputTokens = int32(2048)
	// NewsMaxOutputTokens bounds full article generation.
	NewsMaxOutputTokens = int32(65536)

	responseMIMEType = "text/plain"
)

// Options carries the per-request generation config forwarded to the backend.
// Zero-valued fields are omitted from the outbound config.
type Options struct {
	Temperature     float32 // Sampling temperature (0 omits)
	TopP            float32 // Nucleus sampling (0 omits)
	TopK            float32 // Top-k sampling (0 omits)
	MaxOutputTokens int32   // Output token cap (0 omits)
}

// TitleOptions returns the generation options used by the titles endpoint.
func TitleOptions() Options {
	return Options{
		Temperature:     DefaultTemperature,
		TopP:            DefaultTopP,
		MaxOutputTokens: TitleMaxOutputTokens,
	}
}

// NewsOptions returns the generation options used by the news endpoint.
func NewsOptions() Options {
	return Options{
		Temperature:     DefaultTemperature,
		TopP:            DefaultTopP,
		MaxOutputTokens: NewsMaxOutputTokens,
	}
}

// Payload is one outbound generation request.
type Payload struct {
	Model             string  // Resolved model id
	Prompt            string  // User prompt text
	SystemInstruction string  // Optional persona/constraints preamble
	Options           Options // Generation config
}

// Generator is the single outbound dependency of the request orchestrator.
// Handlers depend on this interface so tests can count and fake backend
// calls.
type Generator interface {
	GenerateText(ctx context.Context, payload Payload) (string, error)
}

// Client is the Gemini-backed Generator.
type Client struct {
	gClient *genai.Client
}

// NewClient creates a Gemini client. The API key is taken from the argument
// or, when empty, from the GEMINI_API_KEY environment variable. A missing key
// is a ConfigurationError raised before any network call; the key itself
// never appears in errors or logs.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, core.NewConfigurationError("gemini API key is not configured: set GEMINI_API_KEY or ai.gemini.api_key")
	}

	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, core.NewConfigurationError("failed to create Gemini client")
	}

	return &Client{gClient: gClient}, nil
}

// GenerateText performs exactly one GenerateContent call and returns the raw
// text of the first candidate. Absent candidates or parts collapse to an
// empty string rather than an error; transport and backend failures come back
// as BackendError.
func (c *Client) GenerateText(ctx context.Context, payload Payload) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: payload.Prompt}},
		Role:  "user",
	}}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: responseMIMEType,
	}
	if payload.Options.Temperature > 0 {
		config.Temperature = genai.Ptr(payload.Options.Temperature)
	}
	if payload.Options.TopP > 0 {
		config.TopP = genai.Ptr(payload.Options.TopP)
	}
	if payload.Options.TopK > 0 {
		config.TopK = genai.Ptr(payload.Options.TopK)
	}
	if payload.Options.MaxOutputTokens > 0 {
		config.MaxOutputTokens = payload.Options.MaxOutputTokens
	}
	if payload.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(payload.SystemInstruction, "")
	}

	resp, err := c.gClient.Models.GenerateContent(ctx, payload.Model, contents, config)
	if err != nil {
		return "", core.WrapBackendError("generation backend call failed", err)
	}

	return firstCandidateText(resp), nil
}

// firstCandidateText extracts candidates[0].content.parts[0..n].text with
// explicit presence checks, so that absent optional fields become "" instead
// of a nil dereference.
func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}
	text := ""
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	return text
}
