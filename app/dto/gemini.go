package dto

// GeminiRequest is the generateContent request body.
type GeminiRequest struct {
	Contents          []GeminiContent    `json:"contents"`
	GenerationConfig  *GenerationConfig  `json:"generationConfig,omitempty"`
	SystemInstruction *SystemInstruction `json:"systemInstruction,omitempty"`
}

// NewGeminiRequest builds a single-turn request. An empty systemInstruction
// is omitted.
func NewGeminiRequest(prompt string, cfg *GenerationConfig, systemInstruction string) GeminiRequest {
	req := GeminiRequest{
		Contents:         []GeminiContent{{Parts: []GeminiPart{{Text: prompt}}}},
		GenerationConfig: cfg,
	}
	if systemInstruction != "" {
		req.SystemInstruction = &SystemInstruction{Parts: []GeminiPart{{Text: systemInstruction}}}
	}
	return req
}

type GenerationConfig struct {
	Temperature      *float64        `json:"temperature,omitempty"`
	TopK             *int            `json:"topK,omitempty"`
	TopP             *float64        `json:"topP,omitempty"`
	MaxOutputTokens  *int            `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   *ResponseSchema `json:"responseSchema,omitempty"`
}

type ResponseSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]SchemaProperty `json:"properties,omitempty"`
	Required   []string                  `json:"required,omitempty"`
}

type SchemaProperty struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type SystemInstruction struct {
	Parts []GeminiPart `json:"parts"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

type GeminiResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
}

type GeminiCandidate struct {
	Content GeminiContent `json:"content"`
}

// Text concatenates the text of every part of every candidate.
func (r GeminiResponse) Text() string {
	var n int
	for _, c := range r.Candidates {
		for _, p := range c.Content.Parts {
			n += len(p.Text)
		}
	}
	buf := make([]byte, 0, n)
	for _, c := range r.Candidates {
		for _, p := range c.Content.Parts {
			buf = append(buf, p.Text...)
		}
	}
	return string(buf)
}

// FirstText is the first part of the first candidate, if any.
func (r GeminiResponse) FirstText() (string, bool) {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", false
	}
	return r.Candidates[0].Content.Parts[0].Text, true
}
