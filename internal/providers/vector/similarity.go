package vector

import (
	"context"
	"fmt"
	"time"

	"handbag-explorer/internal/common/logger"
	"handbag-explorer/internal/models"
	"handbag-explorer/internal/normalize/currency"
	"handbag-explorer/internal/providers/ai"
)

// QueryFilters narrow a similarity query via indexed metadata.
type QueryFilters struct {
	Brand           string
	BagType         string
	RetailerCountry string
	MinPrice        *float64
	MaxPrice        *float64
}

// SimilarityService embeds listings into the vector index and answers
// "more like this" queries. Both the store and the embedder may be nil
// when unconfigured; every method then degrades to a no-op.
type SimilarityService struct {
	store    Store
	embedder ai.EmbeddingProvider
	logger   logger.Logger
}

// NewSimilarityService wires the similarity feature.
func NewSimilarityService(store Store, embedder ai.EmbeddingProvider, log logger.Logger) *SimilarityService {
	return &SimilarityService{
		store:    store,
		embedder: embedder,
		logger:   log,
	}
}

// Enabled reports whether both the index and the embedder are wired.
func (s *SimilarityService) Enabled() bool {
	return s.store != nil && s.embedder != nil
}

// Index embeds one listing and upserts it. Unpriced listings store a
// zero amount since the index cannot hold nulls.
func (s *SimilarityService) Index(ctx context.Context, listing models.Listing) error {
	if !s.Enabled() {
		return nil
	}

	text := fmt.Sprintf("%s %s %s %s", listing.Title, listing.Brand, listing.BagType, listing.Retailer)
	embedding, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return err
	}

	amount := 0.0
	if listing.Price.Amount != nil {
		amount = *listing.Price.Amount
	}

	return s.store.Upsert(ctx, []Record{{
		ID:     listing.ID,
		Values: embedding,
		Metadata: map[string]interface{}{
			"title":            listing.Title,
			"brand":            listing.Brand,
			"bag_type":         listing.BagType,
			"retailer":         listing.Retailer,
			"retailer_country": listing.RetailerCountry,
			"price_amount":     amount,
			"price_currency":   listing.Price.Currency,
			"image_url":        listing.ImageURL,
			"product_url":      listing.ProductURL,
			"scraped_at":       listing.ScrapedAt.Format(time.RFC3339),
		},
	}})
}

// IndexAll embeds a batch of listings, continuing past individual
// failures.
func (s *SimilarityService) IndexAll(ctx context.Context, listings []models.Listing) {
	if !s.Enabled() {
		return
	}
	for _, l := range listings {
		if err := s.Index(ctx, l); err != nil {
			s.logger.Warn("Failed to index listing", map[string]interface{}{
				"listing_id": l.ID,
				"error":      err.Error(),
			})
		}
	}
}

// SimilarByText embeds a query and returns the nearest listings.
func (s *SimilarityService) SimilarByText(ctx context.Context, query string, topK int, filters QueryFilters) ([]models.Listing, error) {
	if !s.Enabled() {
		return nil, nil
	}

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	matches, err := s.store.Query(ctx, embedding, topK, buildFilter(filters))
	if err != nil {
		return nil, err
	}
	return matchesToListings(matches), nil
}

// SimilarByID looks up an indexed listing and returns its nearest
// neighbors, excluding the anchor itself. An unindexed id yields an
// empty result rather than an error.
func (s *SimilarityService) SimilarByID(ctx context.Context, id string, topK int) ([]models.Listing, error) {
	if !s.Enabled() {
		return nil, nil
	}

	record, err := s.store.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil || len(record.Values) == 0 {
		return nil, nil
	}

	// Ask for one extra because the anchor is its own nearest neighbor.
	matches, err := s.store.Query(ctx, record.Values, topK+1, nil)
	if err != nil {
		return nil, err
	}

	filtered := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.ID == id {
			continue
		}
		filtered = append(filtered, m)
		if len(filtered) == topK {
			break
		}
	}
	return matchesToListings(filtered), nil
}

func buildFilter(filters QueryFilters) map[string]interface{} {
	filter := map[string]interface{}{}
	if filters.Brand != "" {
		filter["brand"] = map[string]interface{}{"$eq": filters.Brand}
	}
	if filters.BagType != "" {
		filter["bag_type"] = map[string]interface{}{"$eq": filters.BagType}
	}
	if filters.RetailerCountry != "" {
		filter["retailer_country"] = map[string]interface{}{"$eq": filters.RetailerCountry}
	}
	if filters.MinPrice != nil || filters.MaxPrice != nil {
		bounds := map[string]interface{}{}
		if filters.MinPrice != nil {
			bounds["$gte"] = *filters.MinPrice
		}
		if filters.MaxPrice != nil {
			bounds["$lte"] = *filters.MaxPrice
		}
		filter["price_amount"] = bounds
	}
	return filter
}

// matchesToListings rebuilds listings from indexed metadata. A zero
// price amount round-trips back to "price on request".
func matchesToListings(matches []Match) []models.Listing {
	listings := make([]models.Listing, 0, len(matches))
	for _, m := range matches {
		l := models.Listing{
			ID:              m.ID,
			Title:           metaString(m.Metadata, "title"),
			Brand:           metaString(m.Metadata, "brand"),
			BagType:         metaString(m.Metadata, "bag_type"),
			Retailer:        metaString(m.Metadata, "retailer"),
			RetailerCountry: metaString(m.Metadata, "retailer_country"),
			ImageURL:        metaString(m.Metadata, "image_url"),
			ProductURL:      metaString(m.Metadata, "product_url"),
		}

		code := metaString(m.Metadata, "price_currency")
		if code == "" {
			code = "USD"
		}
		l.Price.Currency = code
		if amount, ok := m.Metadata["price_amount"].(float64); ok && amount > 0 {
			l.Price.Amount = &amount
		}
		l.PriceDisplay = currency.Format(l.Price.Amount, code)

		if scraped, err := time.Parse(time.RFC3339, metaString(m.Metadata, "scraped_at")); err == nil {
			l.ScrapedAt = scraped
		}

		listings = append(listings, l)
	}
	return listings
}

func metaString(meta map[string]interface{}, key string) string {
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}
