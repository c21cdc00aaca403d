package assemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handbag-explorer/internal/models"
)

func fl(v float64) *float64 { return &v }

func rawResult(url, title, text string) models.RawResult {
	return models.RawResult{URL: url, Title: title, Text: text}
}

func TestAssembleNormalizesListing(t *testing.T) {
	raw := []models.RawResult{
		{
			URL:   "https://www.fashionphile.com/p/chanel-classic-flap-987654",
			Title: "Chanel Classic Flap Medium Black Lambskin | Luxury Resale",
			Text:  "Pre-owned Chanel classic flap in black lambskin, $8,200.00 with gold hardware.",
			Image: "https://cdn.fashionphile.com/product/flap.jpg",
		},
	}

	listings := Assemble(raw, "USD")
	require.Len(t, listings, 1)

	l := listings[0]
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "Chanel Classic Flap Medium Black Lambskin", l.Title)
	assert.Equal(t, "Chanel", l.Brand)
	assert.Equal(t, "Flap", l.BagType)
	assert.Equal(t, "Fashionphile", l.Retailer)
	assert.Equal(t, "US", l.RetailerCountry)
	require.NotNil(t, l.Price.Amount)
	assert.InDelta(t, 8200, *l.Price.Amount, 0.001)
	assert.Equal(t, "USD", l.Price.Currency)
	assert.Equal(t, "$8,200", l.PriceDisplay)
	assert.Equal(t, "https://cdn.fashionphile.com/product/flap.jpg", l.ImageURL)
	assert.Equal(t, "Black", l.Attributes.Color)
	assert.Equal(t, "Medium", l.Attributes.Size)
	assert.Equal(t, "Lambskin", l.Attributes.Material)
	assert.Equal(t, "Pre-owned", l.Attributes.Condition)
	assert.False(t, l.ScrapedAt.IsZero())
}

func TestAssembleConvertsCurrency(t *testing.T) {
	raw := []models.RawResult{
		rawResult(
			"https://www.mytheresa.com/en-us/gucci-jackie-small-p00912345",
			"Gucci Jackie 1961 small",
			"Gucci Jackie shoulder bag €920.00 in cream leather",
		),
	}

	listings := Assemble(raw, "USD")
	require.Len(t, listings, 1)

	require.NotNil(t, listings[0].Price.Amount)
	assert.InDelta(t, 1000, *listings[0].Price.Amount, 0.001)
	assert.Equal(t, "USD", listings[0].Price.Currency)
	assert.Equal(t, "$1,000", listings[0].PriceDisplay)
}

func TestAssembleDropsAndDedupes(t *testing.T) {
	raw := []models.RawResult{
		// Category page, not a product.
		rawResult("https://www.saks.com/women/handbags", "Designer Handbags", "shop all"),
		// Missing URL.
		rawResult("", "Hermès Kelly 28", "lovely"),
		// Two results with effectively the same title.
		rawResult("https://shop.a.com/bags/hermes-kelly-28-sellier-11111", "Hermès Kelly 28 Sellier!", "Hermès Kelly $32,000"),
		rawResult("https://shop.b.com/bags/hermes-kelly-28-sellier-22222", "Hermès Kelly 28 — Sellier", "Hermès Kelly $31,000"),
	}

	listings := Assemble(raw, "USD")
	require.Len(t, listings, 1)
	assert.Equal(t, "https://shop.a.com/bags/hermes-kelly-28-sellier-11111", listings[0].ProductURL)
}

func TestAssemblePlaceholderImage(t *testing.T) {
	raw := []models.RawResult{
		rawResult(
			"https://www.cettire.com/products/prada-re-edition-2005-54321",
			"Prada Re-Edition 2005",
			"Nylon shoulder bag $1,350",
		),
	}

	listings := Assemble(raw, "USD")
	require.Len(t, listings, 1)

	assert.True(t, strings.HasPrefix(listings[0].ImageURL, "https://source.unsplash.com/600x600/?luxury,handbag,prada,"))
}

func TestAssembleUnpricedListing(t *testing.T) {
	raw := []models.RawResult{
		rawResult(
			"https://www.hermes.com/us/en/product/birkin-30-togo-H078289",
			"Hermès Birkin 30 Togo",
			"Enquire in boutique for availability",
		),
	}

	listings := Assemble(raw, "USD")
	require.Len(t, listings, 1)

	assert.Nil(t, listings[0].Price.Amount)
	assert.Equal(t, "Price on request", listings[0].PriceDisplay)
}

func TestApplyFilters(t *testing.T) {
	listings := []models.Listing{
		{Title: "Chanel Classic Flap", Brand: "Chanel", BagType: "Flap", RetailerCountry: "US", Price: models.Price{Amount: fl(8200)}},
		{Title: "Gucci Jackie", Brand: "Gucci", BagType: "Shoulder", RetailerCountry: "IT", Price: models.Price{Amount: fl(2500)}},
		{Title: "Hermès Birkin", Brand: "Hermès", BagType: "Birkin", RetailerCountry: "FR", Price: models.Price{Amount: nil}},
	}

	t.Run("brand matches listing or title", func(t *testing.T) {
		out := ApplyFilters(listings, models.SearchFilters{Brands: []string{"gucci"}})
		assert.Len(t, out, 1)
		assert.Equal(t, "Gucci", out[0].Brand)
	})

	t.Run("country exact match", func(t *testing.T) {
		out := ApplyFilters(listings, models.SearchFilters{Countries: []string{"US", "FR"}})
		assert.Len(t, out, 2)
	})

	t.Run("unpriced listings survive price bounds", func(t *testing.T) {
		out := ApplyFilters(listings, models.SearchFilters{MinPrice: fl(3000)})
		assert.Len(t, out, 2)

		out = ApplyFilters(out, models.SearchFilters{MaxPrice: fl(9000)})
		assert.Len(t, out, 2)
	})

	t.Run("bag type matches title too", func(t *testing.T) {
		out := ApplyFilters(listings, models.SearchFilters{BagTypes: []string{"birkin"}})
		assert.Len(t, out, 1)
		assert.Equal(t, "Hermès", out[0].Brand)
	})

	t.Run("no filters returns everything", func(t *testing.T) {
		out := ApplyFilters(listings, models.SearchFilters{})
		assert.Len(t, out, 3)
	})
}

func TestPaginate(t *testing.T) {
	listings := make([]models.Listing, 30)

	resp := Paginate(listings, 2, 12)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 12, resp.PerPage)
	assert.Equal(t, 30, resp.Total)
	assert.Len(t, resp.Results, 12)

	resp = Paginate(listings, 3, 12)
	assert.Len(t, resp.Results, 6)

	resp = Paginate(listings, 9, 12)
	assert.Equal(t, 30, resp.Total)
	assert.Empty(t, resp.Results)

	resp = Paginate(listings, 0, 12)
	assert.Equal(t, 1, resp.Page)
	assert.Len(t, resp.Results, 12)
}
