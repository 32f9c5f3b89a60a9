// Package sentiment provides a client for the external sentiment-analysis
// microservice. The service is best-effort from the application's point of
// view: callers fall back to Neutral() when a call fails.
package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Result is a sentiment classification for a piece of text.
type Result struct {
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"sentimentScore"`
}

// Neutral returns the fallback classification used when the service is
// unreachable or returns garbage.
func Neutral() Result {
	return Result{Sentiment: "neutral", Score: 0}
}

// Analyzer classifies a sentence. Implemented by Client and by test stubs.
type Analyzer interface {
	Analyze(ctx context.Context, sentence string) (Result, error)
}

// Client calls the sentiment service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the service at baseURL. A single attempt is
// made per call with an explicit timeout; retries are the caller's decision.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

type analyzeRequest struct {
	Sentence string `json:"sentence"`
}

// Analyze posts the sentence to {baseURL}/sentiment and decodes the result.
func (c *Client) Analyze(ctx context.Context, sentence string) (Result, error) {
	body, err := json.Marshal(analyzeRequest{Sentence: sentence})
	if err != nil {
		return Result{}, fmt.Errorf("encode sentiment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sentiment", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build sentiment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("sentiment request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("sentiment service returned status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("decode sentiment response: %w", err)
	}
	if result.Sentiment == "" {
		return Result{}, fmt.Errorf("sentiment service returned empty label")
	}
	return result, nil
}
