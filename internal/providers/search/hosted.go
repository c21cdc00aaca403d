package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	stderrors "handbag-explorer/internal/common/errors"
	"handbag-explorer/internal/common/httpclient"
	"handbag-explorer/internal/common/logger"
	"handbag-explorer/internal/common/metrics"
	"handbag-explorer/internal/models"
)

// HostedProvider talks to the hosted neural search API. It always
// requests page text and highlights so the normalization layer has
// something to extract from.
type HostedProvider struct {
	baseURL    string
	apiKey     string
	maxRetries int
	client     *httpclient.Client
	logger     logger.Logger
}

// NewHostedProvider returns a provider for the hosted search API.
func NewHostedProvider(baseURL, apiKey string, timeout time.Duration, maxRetries int, log logger.Logger) *HostedProvider {
	return &HostedProvider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		maxRetries: maxRetries,
		client:     httpclient.NewClient(timeout),
		logger:     log,
	}
}

type hostedRequest struct {
	Query          string            `json:"query"`
	NumResults     int               `json:"numResults"`
	Type           string            `json:"type"`
	IncludeDomains []string          `json:"includeDomains,omitempty"`
	Livecrawl      string            `json:"livecrawl,omitempty"`
	Text           hostedTextOpts    `json:"text"`
	Highlights     hostedHLOpts      `json:"highlights"`
}

type hostedTextOpts struct {
	MaxCharacters int `json:"maxCharacters"`
}

type hostedHLOpts struct {
	NumSentences int `json:"numSentences"`
}

type hostedResponse struct {
	Results []struct {
		URL        string   `json:"url"`
		Title      string   `json:"title"`
		Text       string   `json:"text"`
		Image      string   `json:"image"`
		Highlights []string `json:"highlights"`
	} `json:"results"`
}

// Search queries the hosted API with retries and exponential backoff.
func (p *HostedProvider) Search(ctx context.Context, query string, numResults int) ([]models.RawResult, error) {
	body, err := json.Marshal(hostedRequest{
		Query:          query,
		NumResults:     numResults,
		Type:           "neural",
		IncludeDomains: RetailerDomains,
		Livecrawl:      "always",
		Text:           hostedTextOpts{MaxCharacters: 1500},
		Highlights:     hostedHLOpts{NumSentences: 3},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	start := time.Now()
	defer func() {
		metrics.ProviderCallDuration.WithLabelValues("search").Observe(time.Since(start).Seconds())
	}()

	var lastErr error
	for attempt := 1; attempt <= p.maxRetries+1; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			p.logger.Warn("Retrying search provider call", map[string]interface{}{
				"attempt": attempt,
				"backoff": backoff.String(),
			})

			select {
			case <-ctx.Done():
				metrics.ProviderCallsTotal.WithLabelValues("search", "timeout").Inc()
				return nil, stderrors.NewSearchTimeoutError()
			case <-time.After(backoff):
			}
		}

		results, err := p.doSearch(ctx, body)
		if err == nil {
			metrics.ProviderCallsTotal.WithLabelValues("search", "success").Inc()
			return results, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			metrics.ProviderCallsTotal.WithLabelValues("search", "timeout").Inc()
			return nil, stderrors.NewSearchTimeoutError()
		}
	}

	metrics.ProviderCallsTotal.WithLabelValues("search", "error").Inc()
	return nil, stderrors.NewSearchQueryFailedError(lastErr)
}

func (p *HostedProvider) doSearch(ctx context.Context, body []byte) ([]models.RawResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search provider returned status %d: %s", resp.StatusCode, string(payload))
	}

	var parsed hostedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]models.RawResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		results = append(results, models.RawResult{
			URL:        r.URL,
			Title:      r.Title,
			Text:       r.Text,
			Image:      r.Image,
			Highlights: r.Highlights,
		})
	}
	return results, nil
}
