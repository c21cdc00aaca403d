// internal/models/search.go
package models

// RawResult is the shape a search provider hands back for one hit.
type RawResult struct {
	URL        string   `json:"url"`
	Title      string   `json:"title,omitempty"`
	Text       string   `json:"text,omitempty"`
	Image      string   `json:"image,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// SearchFilters are the request-level filter parameters of a search call.
type SearchFilters struct {
	Query     string
	Brands    []string
	BagTypes  []string
	Countries []string
	MinPrice  *float64
	MaxPrice  *float64
	Currency  string
	Page      int
	PerPage   int
}

// SearchResponse is the paginated listing payload returned to clients.
type SearchResponse struct {
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
	Total   int       `json:"total"`
	Results []Listing `json:"results"`
	Message string    `json:"message,omitempty"`
}

// ExploreCategory is one curated tile on the explore surface.
type ExploreCategory struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"image_url"`
	FilterURL      string    `json:"filter_url"`
	SampleProducts []Listing `json:"sample_products"`
}
