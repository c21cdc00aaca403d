// internal/models/query.go
package models

// ParsedQuery is the interpretation of a free-text utterance. SearchText is
// synthesized from the recognized tokens rather than copied from the input,
// because the downstream search is keyword based.
type ParsedQuery struct {
	SearchText string `json:"searchText"`
	Brand      string `json:"brand,omitempty"`
	Color      string `json:"color,omitempty"`
	BagType    string `json:"bagType,omitempty"`
	Occasion   string `json:"occasion,omitempty"`
	MinPrice   *int   `json:"minPrice,omitempty"`
	MaxPrice   *int   `json:"maxPrice,omitempty"`
}

// ConciergeFilters mirror ParsedQuery on the concierge wire format, where
// absent values are explicit nulls.
type ConciergeFilters struct {
	Brand    *string  `json:"brand"`
	Color    *string  `json:"color"`
	BagType  *string  `json:"bagType"`
	Occasion *string  `json:"occasion"`
	MinPrice *float64 `json:"minPrice"`
	MaxPrice *float64 `json:"maxPrice"`
}

// ConciergeReply is the response of the concierge endpoint.
type ConciergeReply struct {
	Message     string           `json:"message"`
	Filters     ConciergeFilters `json:"filters"`
	SearchQuery string           `json:"searchQuery"`
	Tip         *string          `json:"tip"`
}
