package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handbag-explorer/internal/common/logger"
	"handbag-explorer/internal/models"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name     string
		filters  models.SearchFilters
		expected string
	}{
		{
			name:     "brand dominates free text",
			filters:  models.SearchFilters{Query: "timeless classic", Brands: []string{"Chanel"}},
			expected: "Chanel handbag bag for sale",
		},
		{
			name:     "free text query",
			filters:  models.SearchFilters{Query: "quilted flap"},
			expected: "quilted flap luxury handbag for sale price",
		},
		{
			name:     "generic fallback",
			filters:  models.SearchFilters{},
			expected: "luxury designer handbag for sale price authentic",
		},
		{
			name:     "bag type suffix",
			filters:  models.SearchFilters{Brands: []string{"Gucci"}, BagTypes: []string{"tote", "clutch"}},
			expected: "Gucci handbag bag for sale tote",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildQuery(tt.filters))
		})
	}
}

func TestHostedProviderSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("x-api-key"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "chanel flap", req["query"])
		assert.Equal(t, float64(25), req["numResults"])
		assert.Equal(t, "neural", req["type"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{
					"url":        "https://www.fashionphile.com/p/chanel-flap-123456",
					"title":      "Chanel Classic Flap",
					"text":       "Pre-owned flap $8,200",
					"image":      "https://cdn.fashionphile.com/product/flap.jpg",
					"highlights": []string{"black lambskin"},
				},
			},
		})
	}))
	defer server.Close()

	provider := NewHostedProvider(server.URL, "secret-key", 5*time.Second, 2, logger.NewTestLogger(t))

	results, err := provider.Search(context.Background(), "chanel flap", 25)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Chanel Classic Flap", results[0].Title)
	assert.Equal(t, []string{"black lambskin"}, results[0].Highlights)
}

func TestHostedProviderRetriesThenFails(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	provider := NewHostedProvider(server.URL, "secret-key", 5*time.Second, 2, logger.NewTestLogger(t))

	_, err := provider.Search(context.Background(), "chanel flap", 25)
	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestHostedProviderRetriesThenSucceeds(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"results": []interface{}{}})
	}))
	defer server.Close()

	provider := NewHostedProvider(server.URL, "secret-key", 5*time.Second, 2, logger.NewTestLogger(t))

	results, err := provider.Search(context.Background(), "anything", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 2, calls)
}
