package clients

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/km-arc/diaita/app/dto"
	"github.com/km-arc/diaita/framework/config"
)

// GeminiKeyHeader carries the Gemini API key.
const GeminiKeyHeader = "x-goog-api-key"

// ErrEmptyAnswer is returned when the model produced no text.
var ErrEmptyAnswer = errors.New("clients: gemini returned no text")

// GeminiClient talks to a generateContent endpoint. The configured base URL
// is the full ":generateContent" URL of the model.
type GeminiClient struct {
	rest *RestClient
}

func NewGeminiClient(cfg config.GeminiConfig, opts ...Option) *GeminiClient {
	return &GeminiClient{rest: NewRestClient("gemini", cfg.BaseURL, GeminiKeyHeader, cfg.APIKey, opts...)}
}

// Rest exposes the underlying client.
func (c *GeminiClient) Rest() *RestClient { return c.rest }

// Model is the model name embedded in the base URL ("models/<name>:..."),
// or "" when the URL does not follow that shape.
func (c *GeminiClient) Model() string {
	_, rest, found := strings.Cut(c.rest.BaseURL(), "/models/")
	if !found {
		return ""
	}
	name, _, _ := strings.Cut(rest, ":")
	return name
}

// AskQuestion returns the first part of the first candidate.
func (c *GeminiClient) AskQuestion(ctx context.Context, prompt string, cfg *dto.GenerationConfig, systemInstruction string) (string, error) {
	var out dto.GeminiResponse
	if err := c.rest.PostJSON(ctx, c.rest.BaseURL(), dto.NewGeminiRequest(prompt, cfg, systemInstruction), &out); err != nil {
		return "", err
	}
	text, ok := out.FirstText()
	if !ok {
		return "", ErrEmptyAnswer
	}
	return text, nil
}

// AskQuestionStream requests server-sent events and returns the concatenated
// text of every chunk. onChunk, if non-nil, sees each piece as it arrives.
func (c *GeminiClient) AskQuestionStream(ctx context.Context, prompt string, cfg *dto.GenerationConfig, systemInstruction string, onChunk func(string)) (string, error) {
	resp, err := c.rest.Send(ctx, http.MethodPost, StreamURL(c.rest.BaseURL()),
		dto.NewGeminiRequest(prompt, cfg, systemInstruction), "text/event-stream")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var sb strings.Builder
	err = readEvents(resp.Body, func(text string) {
		sb.WriteString(text)
		if onChunk != nil {
			onChunk(text)
		}
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.rest.Name(), err)
	}
	if sb.Len() == 0 {
		return "", ErrEmptyAnswer
	}
	return sb.String(), nil
}

// StreamURL turns a ":generateContent" URL into its SSE streaming twin.
func StreamURL(base string) string {
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	return strings.Replace(base, ":generateContent", ":streamGenerateContent", 1) + "?alt=sse"
}
