package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	stderrors "handbag-explorer/internal/common/errors"
	"handbag-explorer/internal/common/httpclient"
	"handbag-explorer/internal/common/metrics"
)

// PineconeStore talks to a Pinecone-compatible index over its REST
// data-plane API.
type PineconeStore struct {
	baseURL string
	apiKey  string
	client  *httpclient.Client
}

// NewPineconeStore points at an index host, e.g.
// https://luxury-handbags-abc123.svc.us-east-1.pinecone.io.
func NewPineconeStore(baseURL, apiKey string, timeout time.Duration) *PineconeStore {
	return &PineconeStore{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  httpclient.NewClient(timeout),
	}
}

// Upsert writes records into the index.
func (s *PineconeStore) Upsert(ctx context.Context, records []Record) error {
	payload := map[string]interface{}{"vectors": records}
	return s.post(ctx, "/vectors/upsert", payload, nil)
}

// Query returns the topK nearest records, optionally narrowed by a
// metadata filter using the $eq/$gte/$lte operator syntax.
func (s *PineconeStore) Query(ctx context.Context, vector []float32, topK int, filter map[string]interface{}) ([]Match, error) {
	payload := map[string]interface{}{
		"vector":          vector,
		"topK":            topK,
		"includeMetadata": true,
	}
	if len(filter) > 0 {
		payload["filter"] = filter
	}

	var parsed struct {
		Matches []Match `json:"matches"`
	}
	if err := s.post(ctx, "/query", payload, &parsed); err != nil {
		return nil, err
	}
	return parsed.Matches, nil
}

// Fetch retrieves one record with its vector, or nil when the id is
// not indexed.
func (s *PineconeStore) Fetch(ctx context.Context, id string) (*Record, error) {
	endpoint := s.baseURL + "/vectors/fetch?ids=" + url.QueryEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Api-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("vector", "error").Inc()
		return nil, stderrors.NewVectorQueryFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderCallsTotal.WithLabelValues("vector", "error").Inc()
		return nil, stderrors.NewVectorQueryFailedError(fmt.Errorf("vector index returned status %d", resp.StatusCode))
	}

	var parsed struct {
		Vectors map[string]Record `json:"vectors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode fetch response: %w", err)
	}

	metrics.ProviderCallsTotal.WithLabelValues("vector", "success").Inc()
	record, ok := parsed.Vectors[id]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (s *PineconeStore) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal vector request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", s.apiKey)

	start := time.Now()
	resp, err := s.client.Do(req)
	metrics.ProviderCallDuration.WithLabelValues("vector").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("vector", "error").Inc()
		return stderrors.NewVectorQueryFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderCallsTotal.WithLabelValues("vector", "error").Inc()
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return stderrors.NewVectorQueryFailedError(fmt.Errorf("vector index returned status %d: %s", resp.StatusCode, string(payload)))
	}

	metrics.ProviderCallsTotal.WithLabelValues("vector", "success").Inc()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode vector response: %w", err)
		}
	}
	return nil
}
