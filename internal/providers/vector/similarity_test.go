package vector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handbag-explorer/internal/common/logger"
	"handbag-explorer/internal/models"
)

type stubStore struct {
	upserted  []Record
	matches   []Match
	fetched   map[string]Record
	lastTopK  int
	lastQuery []float32
	lastFilt  map[string]interface{}
}

func (s *stubStore) Upsert(_ context.Context, records []Record) error {
	s.upserted = append(s.upserted, records...)
	return nil
}

func (s *stubStore) Query(_ context.Context, vector []float32, topK int, filter map[string]interface{}) ([]Match, error) {
	s.lastQuery = vector
	s.lastTopK = topK
	s.lastFilt = filter
	return s.matches, nil
}

func (s *stubStore) Fetch(_ context.Context, id string) (*Record, error) {
	if r, ok := s.fetched[id]; ok {
		return &r, nil
	}
	return nil, nil
}

type stubEmbedder struct {
	vector []float32
}

func (s *stubEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return s.vector, nil
}

func match(id, title string, price float64) Match {
	return Match{
		ID:    id,
		Score: 0.9,
		Metadata: map[string]interface{}{
			"title":            title,
			"brand":            "Chanel",
			"bag_type":         "Flap",
			"retailer":         "Fashionphile",
			"retailer_country": "US",
			"price_amount":     price,
			"price_currency":   "USD",
			"image_url":        "https://cdn.example.com/img.jpg",
			"product_url":      "https://example.com/p/1",
			"scraped_at":       time.Now().UTC().Format(time.RFC3339),
		},
	}
}

func TestSimilarityServiceDisabled(t *testing.T) {
	svc := NewSimilarityService(nil, nil, logger.NewTestLogger(t))

	assert.False(t, svc.Enabled())
	assert.NoError(t, svc.Index(context.Background(), models.Listing{}))

	results, err := svc.SimilarByID(context.Background(), "x", 5)
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestIndexStoresMetadata(t *testing.T) {
	store := &stubStore{}
	svc := NewSimilarityService(store, &stubEmbedder{vector: []float32{0.1, 0.2}}, logger.NewTestLogger(t))

	amount := 8200.0
	listing := models.Listing{
		ID:              "abc",
		Title:           "Chanel Classic Flap",
		Brand:           "Chanel",
		BagType:         "Flap",
		Retailer:        "Fashionphile",
		RetailerCountry: "US",
		Price:           models.Price{Amount: &amount, Currency: "USD"},
		ScrapedAt:       time.Now().UTC(),
	}

	require.NoError(t, svc.Index(context.Background(), listing))
	require.Len(t, store.upserted, 1)

	rec := store.upserted[0]
	assert.Equal(t, "abc", rec.ID)
	assert.Equal(t, []float32{0.1, 0.2}, rec.Values)
	assert.Equal(t, "Chanel", rec.Metadata["brand"])
	assert.Equal(t, 8200.0, rec.Metadata["price_amount"])
}

func TestSimilarByTextBuildsFilter(t *testing.T) {
	minPrice := 1000.0
	maxPrice := 5000.0
	store := &stubStore{matches: []Match{match("a", "Chanel Classic Flap", 8200)}}
	svc := NewSimilarityService(store, &stubEmbedder{vector: []float32{1}}, logger.NewTestLogger(t))

	results, err := svc.SimilarByText(context.Background(), "black flap", 10, QueryFilters{
		Brand:    "Chanel",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, map[string]interface{}{"$eq": "Chanel"}, store.lastFilt["brand"])
	assert.Equal(t, map[string]interface{}{"$gte": 1000.0, "$lte": 5000.0}, store.lastFilt["price_amount"])
	assert.Equal(t, 10, store.lastTopK)
	assert.Equal(t, "$8,200", results[0].PriceDisplay)
}

func TestSimilarByIDExcludesAnchor(t *testing.T) {
	store := &stubStore{
		fetched: map[string]Record{
			"anchor": {ID: "anchor", Values: []float32{0.5}},
		},
		matches: []Match{
			match("anchor", "Anchor Bag", 1000),
			match("n1", "Neighbor One", 2000),
			match("n2", "Neighbor Two", 0),
			match("n3", "Neighbor Three", 3000),
		},
	}
	svc := NewSimilarityService(store, &stubEmbedder{vector: []float32{1}}, logger.NewTestLogger(t))

	results, err := svc.SimilarByID(context.Background(), "anchor", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 3, store.lastTopK)
	assert.Equal(t, []float32{0.5}, store.lastQuery)
	assert.Equal(t, "n1", results[0].ID)
	assert.Equal(t, "n2", results[1].ID)

	// Zero stored amount round-trips to an unpriced listing.
	assert.Nil(t, results[1].Price.Amount)
	assert.Equal(t, "Price on request", results[1].PriceDisplay)
}

func TestSimilarByIDUnknownAnchor(t *testing.T) {
	store := &stubStore{fetched: map[string]Record{}}
	svc := NewSimilarityService(store, &stubEmbedder{vector: []float32{1}}, logger.NewTestLogger(t))

	results, err := svc.SimilarByID(context.Background(), "missing", 5)
	assert.NoError(t, err)
	assert.Empty(t, results)
}
