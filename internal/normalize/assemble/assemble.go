// Package assemble turns raw provider results into normalized listings:
// it drops category pages and duplicates, extracts every structured
// attribute, converts prices into the requested currency, and applies
// the caller's filters and pagination.
package assemble

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"handbag-explorer/internal/common/metrics"
	"handbag-explorer/internal/models"
	"handbag-explorer/internal/normalize/currency"
	"handbag-explorer/internal/normalize/retailer"
	"handbag-explorer/internal/normalize/textextract"
)

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]`)

// normalizeTitle collapses a title to its first 40 significant
// characters for duplicate detection.
func normalizeTitle(title string) string {
	n := nonAlnumRe.ReplaceAllString(strings.ToLower(title), "")
	if len(n) > 40 {
		n = n[:40]
	}
	return n
}

// hashSeed mirrors a 32-bit string hash for stable placeholder image
// selection.
func hashSeed(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// Assemble normalizes raw search results into listings priced in
// targetCurrency. Non-product pages and near-duplicate titles or images
// are dropped; every listing always carries a displayable image, even
// if only a themed placeholder.
func Assemble(raw []models.RawResult, targetCurrency string) []models.Listing {
	seenTitles := map[string]bool{}
	seenImages := map[string]bool{}

	listings := make([]models.Listing, 0, len(raw))
	for _, result := range raw {
		if result.URL == "" {
			metrics.ListingsDropped.WithLabelValues("missing_url").Inc()
			continue
		}
		if !retailer.IsProductPage(result.URL) {
			metrics.ListingsDropped.WithLabelValues("not_product_page").Inc()
			continue
		}

		titleKey := normalizeTitle(result.Title)
		if titleKey != "" {
			if seenTitles[titleKey] {
				metrics.ListingsDropped.WithLabelValues("duplicate_title").Inc()
				continue
			}
			seenTitles[titleKey] = true
		}

		combined := result.Title + " " + result.Text + " " + strings.Join(result.Highlights, " ")

		amount, detected := currency.DetectFromText(combined)
		brand := textextract.Brand(combined)
		if brand == textextract.DefaultBrand {
			metrics.ExtractionFallbacks.WithLabelValues("brand").Inc()
		}
		bagType := textextract.BagType(combined)
		if bagType == textextract.DefaultBagType {
			metrics.ExtractionFallbacks.WithLabelValues("bag_type").Inc()
		}
		attrs := textextract.ExtractAttributes(combined)
		shop := retailer.Classify(result.URL)

		finalCurrency := detected
		if detected == "" {
			finalCurrency = targetCurrency
		}
		if amount != nil && detected != "" && detected != targetCurrency {
			converted := currency.Convert(*amount, detected, targetCurrency)
			amount = &converted
			finalCurrency = targetCurrency
		}

		imageURL := result.Image
		if imageURL == "" || seenImages[imageURL] {
			if extracted := textextract.ImageFromText(result.Text); extracted != "" && !seenImages[extracted] {
				imageURL = extracted
			}
		}
		if imageURL == "" || seenImages[imageURL] {
			seed := hashSeed(result.URL+result.Title) % 1000
			imageURL = fmt.Sprintf("https://source.unsplash.com/600x600/?luxury,handbag,%s,%d",
				strings.ToLower(brand), seed)
			metrics.ExtractionFallbacks.WithLabelValues("image").Inc()
		}
		seenImages[imageURL] = true

		listings = append(listings, models.Listing{
			ID:              uuid.NewString(),
			Title:           textextract.CleanTitle(result.Title),
			Brand:           brand,
			BagType:         bagType,
			Retailer:        shop.Name,
			RetailerCountry: shop.Country,
			Price: models.Price{
				Amount:   amount,
				Currency: finalCurrency,
			},
			PriceDisplay: currency.Format(amount, finalCurrency),
			ImageURL:     imageURL,
			ProductURL:   result.URL,
			ScrapedAt:    time.Now().UTC(),
			Attributes: models.Attributes{
				Color:     attrs.Color,
				Size:      attrs.Size,
				Material:  attrs.Material,
				Condition: textextract.Condition(combined, result.URL),
			},
		})
	}
	return listings
}

// ApplyFilters narrows assembled listings. Brand and bag type match
// against the listing field or the title, country matches exactly, and
// unpriced listings always survive price bounds so "price on request"
// pieces stay discoverable.
func ApplyFilters(listings []models.Listing, filters models.SearchFilters) []models.Listing {
	out := listings

	if len(filters.Brands) > 0 {
		out = keep(out, func(l models.Listing) bool {
			for _, b := range filters.Brands {
				lb := strings.ToLower(b)
				if strings.Contains(strings.ToLower(l.Brand), lb) ||
					strings.Contains(strings.ToLower(l.Title), lb) {
					return true
				}
			}
			return false
		})
	}

	if len(filters.BagTypes) > 0 {
		out = keep(out, func(l models.Listing) bool {
			for _, t := range filters.BagTypes {
				lt := strings.ToLower(t)
				if strings.Contains(strings.ToLower(l.BagType), lt) ||
					strings.Contains(strings.ToLower(l.Title), lt) {
					return true
				}
			}
			return false
		})
	}

	if len(filters.Countries) > 0 {
		out = keep(out, func(l models.Listing) bool {
			for _, c := range filters.Countries {
				if l.RetailerCountry == c {
					return true
				}
			}
			return false
		})
	}

	if filters.MinPrice != nil {
		out = keep(out, func(l models.Listing) bool {
			return l.Price.Amount == nil || *l.Price.Amount >= *filters.MinPrice
		})
	}
	if filters.MaxPrice != nil {
		out = keep(out, func(l models.Listing) bool {
			return l.Price.Amount == nil || *l.Price.Amount <= *filters.MaxPrice
		})
	}

	return out
}

func keep(listings []models.Listing, pred func(models.Listing) bool) []models.Listing {
	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}

// Paginate slices filtered listings into a response page. Pages are
// 1-based; out-of-range pages return an empty result set with the true
// total.
func Paginate(listings []models.Listing, page, perPage int) models.SearchResponse {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	start := (page - 1) * perPage
	end := start + perPage

	var window []models.Listing
	if start < len(listings) {
		if end > len(listings) {
			end = len(listings)
		}
		window = listings[start:end]
	} else {
		window = []models.Listing{}
	}

	return models.SearchResponse{
		Page:    page,
		PerPage: perPage,
		Total:   len(listings),
		Results: window,
	}
}
