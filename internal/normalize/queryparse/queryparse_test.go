package queryparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

func TestParse(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedBrand   string
		expectedColor   string
		expectedBagType string
		expectedOccAs   string
		expectedMin     *int
		expectedMax     *int
		expectedSearch  string
	}{
		{
			name:            "brand color and budget",
			input:           "black Chanel bag under $3,000",
			expectedBrand:   "Chanel",
			expectedColor:   "black",
			expectedMax:     intp(3000),
			expectedSearch:  "Chanel black handbag",
		},
		{
			name:            "unaccented brand canonicalizes",
			input:           "hermes kelly in gold",
			expectedBrand:   "Hermès",
			expectedColor:   "gold",
			expectedSearch:  "Hermès gold handbag",
		},
		{
			name:            "occasion maps to bag type",
			input:           "something for a wedding",
			expectedBagType: "Clutch",
			expectedOccAs:   "wedding",
			expectedSearch:  "clutch handbag",
		},
		{
			name:            "occasion together with a budget",
			input:           "I need a bag for a cocktail party under $3000",
			expectedBagType: "Clutch",
			expectedOccAs:   "cocktail",
			expectedMax:     intp(3000),
			expectedSearch:  "clutch handbag",
		},
		{
			name:            "direct bag type suppresses occasion",
			input:           "a tote for work",
			expectedBagType: "Tote",
			expectedSearch:  "tote handbag",
		},
		{
			name:            "evening resolves through the bag type table",
			input:           "an evening bag please",
			expectedBagType: "Clutch",
			expectedSearch:  "clutch handbag",
		},
		{
			name:            "minimum price",
			input:           "gucci over $1,500",
			expectedBrand:   "Gucci",
			expectedMin:     intp(1500),
			expectedSearch:  "Gucci handbag",
		},
		{
			name:            "range overrides single bounds",
			input:           "a prada bag between $2,000 and $5,000",
			expectedBrand:   "Prada",
			expectedMin:     intp(2000),
			expectedMax:     intp(5000),
			expectedSearch:  "Prada handbag",
		},
		{
			name:            "range with dash",
			input:           "crossbody $800-1200",
			expectedBagType: "Crossbody",
			expectedMin:     intp(800),
			expectedMax:     intp(1200),
			expectedSearch:  "crossbody handbag",
		},
		{
			name:            "ysl abbreviation",
			input:           "YSL crossbody for travel",
			expectedBrand:   "Saint Laurent",
			expectedBagType: "Crossbody",
			expectedSearch:  "Saint Laurent crossbody handbag",
		},
		{
			name:           "nothing structured",
			input:          "something timeless",
			expectedSearch: "handbag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)

			assert.Equal(t, tt.expectedBrand, got.Brand)
			assert.Equal(t, tt.expectedColor, got.Color)
			assert.Equal(t, tt.expectedBagType, got.BagType)
			assert.Equal(t, tt.expectedOccAs, got.Occasion)
			assert.Equal(t, tt.expectedMin, got.MinPrice)
			assert.Equal(t, tt.expectedMax, got.MaxPrice)
			assert.Equal(t, tt.expectedSearch, got.SearchText)
		})
	}
}
