package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	stderrors "handbag-explorer/internal/common/errors"
	"handbag-explorer/internal/common/logger"
	"handbag-explorer/internal/common/metrics"
	"handbag-explorer/internal/models"
)

// ElasticProvider serves searches from a self-managed index of scraped
// listing pages. Documents share the raw result shape, so the
// normalization pipeline downstream is identical to the hosted path.
type ElasticProvider struct {
	client *elasticsearch.Client
	index  string
	logger logger.Logger
}

// NewElasticProvider connects to the configured Elasticsearch cluster.
func NewElasticProvider(addresses []string, username, password, index string, log logger.Logger) (*ElasticProvider, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addresses,
		Username:  username,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	return &ElasticProvider{
		client: client,
		index:  index,
		logger: log,
	}, nil
}

type esDoc struct {
	URL        string   `json:"url"`
	Title      string   `json:"title"`
	Text       string   `json:"text"`
	Image      string   `json:"image"`
	Highlights []string `json:"highlights"`
}

type esSearchResponse struct {
	Hits struct {
		Hits []struct {
			Source esDoc `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search runs a relevance query over page titles and text.
func (p *ElasticProvider) Search(ctx context.Context, query string, numResults int) ([]models.RawResult, error) {
	body := map[string]interface{}{
		"size": numResults,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"title^2", "text"},
			},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("failed to encode search query: %w", err)
	}

	start := time.Now()
	res, err := p.client.Search(
		p.client.Search.WithContext(ctx),
		p.client.Search.WithIndex(p.index),
		p.client.Search.WithBody(&buf),
	)
	metrics.ProviderCallDuration.WithLabelValues("elasticsearch").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("elasticsearch", "error").Inc()
		return nil, stderrors.NewSearchQueryFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		metrics.ProviderCallsTotal.WithLabelValues("elasticsearch", "error").Inc()
		return nil, stderrors.NewSearchQueryFailedError(fmt.Errorf("elasticsearch returned %s", res.Status()))
	}

	var parsed esSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("elasticsearch", "error").Inc()
		return nil, fmt.Errorf("failed to decode elasticsearch response: %w", err)
	}

	metrics.ProviderCallsTotal.WithLabelValues("elasticsearch", "success").Inc()

	results := make([]models.RawResult, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		results = append(results, models.RawResult{
			URL:        hit.Source.URL,
			Title:      hit.Source.Title,
			Text:       hit.Source.Text,
			Image:      hit.Source.Image,
			Highlights: hit.Source.Highlights,
		})
	}

	p.logger.Debug("Elasticsearch query completed", map[string]interface{}{
		"query":   query,
		"results": len(results),
	})

	return results, nil
}
