// Package vector provides the similarity index behind the "more like
// this" feature. Listings are embedded and upserted as they are
// assembled, and queried either by free text or by anchor listing.
package vector

import "context"

// Record is one embedded listing in the index.
type Record struct {
	ID       string                 `json:"id"`
	Values   []float32              `json:"values"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Match is a scored query hit.
type Match struct {
	ID       string                 `json:"id"`
	Score    float64                `json:"score"`
	Values   []float32              `json:"values,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Store is the minimal surface of a vector database this service needs.
type Store interface {
	Upsert(ctx context.Context, records []Record) error
	Query(ctx context.Context, vector []float32, topK int, filter map[string]interface{}) ([]Match, error)
	Fetch(ctx context.Context, id string) (*Record, error)
}
