// Package search abstracts the web-scale listing search behind a small
// provider interface. Two implementations exist: a hosted neural search
// API and a self-managed Elasticsearch index.
package search

import (
	"context"
	"strings"

	"handbag-explorer/internal/models"
)

// Provider executes a listing search and returns raw, unnormalized
// results. Implementations must respect ctx cancellation.
type Provider interface {
	Search(ctx context.Context, query string, numResults int) ([]models.RawResult, error)
}

// RetailerDomains is the allowlist sent to the hosted provider. Results
// from anywhere else are mostly editorial pages, not listings.
var RetailerDomains = []string{
	"therealreal.com",
	"fashionphile.com",
	"rebag.com",
	"vestiairecollective.com",
	"farfetch.com",
	"mytheresa.com",
	"net-a-porter.com",
	"ssense.com",
	"24s.com",
	"cettire.com",
}

// BuildQuery synthesizes the provider query string from user filters.
// A requested brand dominates, then free text, then a generic luxury
// query; the first bag type rides along as a suffix.
func BuildQuery(filters models.SearchFilters) string {
	var query string
	switch {
	case len(filters.Brands) > 0:
		query = filters.Brands[0] + " handbag bag for sale"
	case strings.TrimSpace(filters.Query) != "":
		query = filters.Query + " luxury handbag for sale price"
	default:
		query = "luxury designer handbag for sale price authentic"
	}

	if len(filters.BagTypes) > 0 {
		query += " " + filters.BagTypes[0]
	}
	return query
}
