package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Generate generates content based on the prompt.
func (g *geminiImpl) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateWithOptions(ctx, prompt, GenerateOptions{})
}

// GenerateWithOptions generates content with a system instruction, sampling options and optional JSON mode.
func (g *geminiImpl) GenerateWithOptions(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini: API key is required")
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("gemini: rate limiter: %w", err)
	}
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	body, statusCode, err := g.httpClient.Post(ctx, url, buildRequest(prompt, opts), nil)
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}

	if statusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal Gemini response: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}

func buildRequest(prompt string, opts GenerateOptions) Request {
	req := Request{
		Contents: []Content{
			{
				Role:  "user",
				Parts: []Part{{Text: prompt}},
			},
		},
	}
	if opts.SystemInstruction != "" {
		req.SystemInstruction = &Content{Parts: []Part{{Text: opts.SystemInstruction}}}
	}
	if opts.Temperature != nil || opts.MaxOutputTokens > 0 || opts.JSON {
		cfg := &GenerationConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxOutputTokens,
		}
		if opts.JSON {
			cfg.ResponseMimeType = mimeTypeJSON
		}
		req.GenerationConfig = cfg
	}
	return req
}
