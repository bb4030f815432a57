package voyage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingAPIKey = errors.New("voyage: API key is required")
	ErrNoInput       = errors.New("voyage: at least one text is required")
	ErrBadStatus     = errors.New("voyage: unexpected status")
	ErrBadResponse   = errors.New("voyage: malformed response")
)

// Embed embeds search queries. The result is ordered like texts.
func (v *voyageImpl) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if v.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if len(texts) == 0 {
		return nil, ErrNoInput
	}

	body, statusCode, err := v.httpClient.Post(ctx, v.endpoint, Request{
		Input:     texts,
		Model:     Model,
		InputType: InputTypeQuery,
	}, map[string]string{"Authorization": "Bearer " + v.apiKey})
	if err != nil {
		return nil, fmt.Errorf("voyage: post: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w %d: %s", ErrBadStatus, statusCode, truncate(body, 256))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return orderByIndex(resp.Data, len(texts))
}

func orderByIndex(data []Embedding, n int) ([][]float32, error) {
	if len(data) != n {
		return nil, fmt.Errorf("%w: expected %d embeddings, got %d", ErrBadResponse, n, len(data))
	}
	out := make([][]float32, n)
	for _, item := range data {
		if item.Index < 0 || item.Index >= n || out[item.Index] != nil {
			return nil, fmt.Errorf("%w: bad embedding index %d", ErrBadResponse, item.Index)
		}
		if len(item.Embedding) == 0 {
			return nil, fmt.Errorf("%w: empty embedding at %d", ErrBadResponse, item.Index)
		}
		out[item.Index] = item.Embedding
	}
	return out, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
