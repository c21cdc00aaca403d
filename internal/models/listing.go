// internal/models/listing.go
package models

import "time"

// Price carries a nullable amount; a nil Amount means "price on request".
type Price struct {
	Amount   *float64 `json:"amount"`
	Currency string   `json:"currency"`
}

// Attributes are independently detected; a missing attribute is omitted, not defaulted.
type Attributes struct {
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	Material  string `json:"material,omitempty"`
	Condition string `json:"condition,omitempty"`
}

// Listing is a normalized product record built fresh per search request.
// Brand and BagType are always populated, either with a detected value or
// with their fallback sentinels ("Designer" / "Handbag").
type Listing struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Brand           string     `json:"brand"`
	BagType         string     `json:"bag_type"`
	Retailer        string     `json:"retailer"`
	RetailerCountry string     `json:"retailer_country"`
	Price           Price      `json:"price"`
	PriceDisplay    string     `json:"price_display"`
	ImageURL        string     `json:"image_url"`
	ProductURL      string     `json:"product_url"`
	ScrapedAt       time.Time  `json:"scraped_at"`
	Attributes      Attributes `json:"attributes"`
}
