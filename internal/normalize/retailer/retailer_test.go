package retailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected Info
	}{
		{
			name:     "known uk retailer",
			url:      "https://www.farfetch.com/shopping/women/item-19483726.aspx",
			expected: Info{Name: "Farfetch", Country: "UK"},
		},
		{
			name:     "known us resale",
			url:      "https://www.fashionphile.com/p/chanel-flap-123456",
			expected: Info{Name: "Fashionphile", Country: "US"},
		},
		{
			name:     "brand boutique",
			url:      "https://www.hermes.com/us/en/product/kelly-28",
			expected: Info{Name: "Hermès", Country: "FR"},
		},
		{
			name:     "www prefix stripped",
			url:      "https://www.24s.com/en-us/bag-12345",
			expected: Info{Name: "24S", Country: "FR"},
		},
		{
			name:     "unknown host capitalizes first label",
			url:      "https://luxurycloset.com/item/123",
			expected: Info{Name: "Luxurycloset", Country: "US"},
		},
		{
			name:     "unparseable url",
			url:      "://not a url",
			expected: Info{Name: "Online Store", Country: "US"},
		},
		{
			name:     "relative url has no host",
			url:      "/women/bags",
			expected: Info{Name: "Online Store", Country: "US"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.url))
		})
	}
}

func TestIsProductPage(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{
			name:     "root path",
			url:      "https://www.selfridges.com/",
			expected: false,
		},
		{
			name:     "single segment",
			url:      "https://www.harrods.com/handbags",
			expected: false,
		},
		{
			name:     "category listing",
			url:      "https://www.saks.com/women/handbags",
			expected: false,
		},
		{
			name:     "category with subcategory",
			url:      "https://www.nordstrom.com/women/handbags/crossbody",
			expected: false,
		},
		{
			name:     "browse path",
			url:      "https://www.bloomingdales.com/browse/handbags/designer",
			expected: false,
		},
		{
			name:     "long numeric id",
			url:      "https://www.jomashop.com/bags/gucci-bag-1234567.html",
			expected: true,
		},
		{
			name:     "trailing four digit id",
			url:      "https://shop.example.com/bags/chanel-flap-4821",
			expected: true,
		},
		{
			name:     "sku in query string",
			url:      "https://store.example.com/women/view?sku=ab123",
			expected: true,
		},
		{
			name:     "farfetch item url",
			url:      "https://www.farfetch.com/shopping/women/item-19483726",
			expected: true,
		},
		{
			name:     "farfetch override rejects category",
			url:      "https://www.farfetch.com/shopping/women/handbags-2",
			expected: false,
		},
		{
			name:     "fashionphile product",
			url:      "https://www.fashionphile.com/p/chanel-classic-flap-987654",
			expected: true,
		},
		{
			name:     "rebag infinity listing",
			url:      "https://shop.rebag.com/infinity/hermes-kelly-28-sellier",
			expected: true,
		},
		{
			name:     "vestiaire shtml listing",
			url:      "https://www.vestiairecollective.com/women-bags/handbags/celine-triomphe-12345678.shtml",
			expected: true,
		},
		{
			name:     "generic product path",
			url:      "https://boutique.example.com/product/saddle-bag",
			expected: true,
		},
		{
			name:     "generic two segment article",
			url:      "https://blog.example.com/guides/best-bags",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsProductPage(tt.url))
		})
	}
}
