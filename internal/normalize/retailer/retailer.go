// Package retailer classifies listing URLs: which shop a page belongs
// to, which country that shop ships from, and whether the page is a
// specific product rather than a category or search surface.
package retailer

import (
	"net/url"
	"regexp"
	"strings"
)

// Info identifies the retailer behind a listing URL.
type Info struct {
	Name    string
	Country string
}

var retailers = map[string]Info{
	"farfetch.com":             {Name: "Farfetch", Country: "UK"},
	"net-a-porter.com":         {Name: "Net-a-Porter", Country: "UK"},
	"mytheresa.com":            {Name: "Mytheresa", Country: "DE"},
	"ssense.com":               {Name: "SSENSE", Country: "CA"},
	"nordstrom.com":            {Name: "Nordstrom", Country: "US"},
	"saks.com":                 {Name: "Saks Fifth Avenue", Country: "US"},
	"neimanmarcus.com":         {Name: "Neiman Marcus", Country: "US"},
	"bergdorfgoodman.com":      {Name: "Bergdorf Goodman", Country: "US"},
	"therealreal.com":          {Name: "The RealReal", Country: "US"},
	"vestiairecollective.com":  {Name: "Vestiaire Collective", Country: "FR"},
	"rebag.com":                {Name: "Rebag", Country: "US"},
	"fashionphile.com":         {Name: "Fashionphile", Country: "US"},
	"tradesy.com":              {Name: "Tradesy", Country: "US"},
	"yoogiscloset.com":         {Name: "Yoogi's Closet", Country: "US"},
	"collectorsquare.com":      {Name: "Collector Square", Country: "FR"},
	"labellov.com":             {Name: "LabelLOV", Country: "BE"},
	"24s.com":                  {Name: "24S", Country: "FR"},
	"matchesfashion.com":       {Name: "Matches Fashion", Country: "UK"},
	"bloomingdales.com":        {Name: "Bloomingdale's", Country: "US"},
	"selfridges.com":           {Name: "Selfridges", Country: "UK"},
	"harrods.com":              {Name: "Harrods", Country: "UK"},
	"luisaviaroma.com":         {Name: "LUISAVIAROMA", Country: "IT"},
	"brownsfashion.com":        {Name: "Browns Fashion", Country: "UK"},
	"italist.com":              {Name: "Italist", Country: "IT"},
	"cettire.com":              {Name: "Cettire", Country: "AU"},
	"modesens.com":             {Name: "ModeSens", Country: "US"},
	"jomashop.com":             {Name: "Jomashop", Country: "US"},

	// Marketplaces and brand boutiques.
	"stockx.com":        {Name: "StockX", Country: "US"},
	"ebay.com":          {Name: "eBay", Country: "US"},
	"louisvuitton.com":  {Name: "Louis Vuitton", Country: "FR"},
	"chanel.com":        {Name: "Chanel", Country: "FR"},
	"hermes.com":        {Name: "Hermès", Country: "FR"},
	"gucci.com":         {Name: "Gucci", Country: "IT"},
	"prada.com":         {Name: "Prada", Country: "IT"},
	"dior.com":          {Name: "Dior", Country: "FR"},
	"celine.com":        {Name: "Céline", Country: "FR"},
	"bottegaveneta.com": {Name: "Bottega Veneta", Country: "IT"},
	"balenciaga.com":    {Name: "Balenciaga", Country: "FR"},
	"ysl.com":           {Name: "Saint Laurent", Country: "FR"},
	"fendi.com":         {Name: "Fendi", Country: "IT"},
	"loewe.com":         {Name: "Loewe", Country: "ES"},
	"chloe.com":         {Name: "Chloé", Country: "FR"},
}

// Classify resolves the retailer for a listing URL. Unknown hosts are
// named after the first hostname label; country defaults to US, which
// matches how the hosted search provider skews. Unparseable URLs map to
// a generic storefront.
func Classify(rawURL string) Info {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return Info{Name: "Online Store", Country: "US"}
	}

	hostname := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if info, ok := retailers[hostname]; ok {
		return info
	}

	label := strings.Split(hostname, ".")[0]
	if label == "" {
		return Info{Name: "Online Store", Country: "US"}
	}
	return Info{
		Name:    strings.ToUpper(label[:1]) + label[1:],
		Country: "US",
	}
}

var categoryOnlyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^/(women|men|bags|handbags|accessories|shop|collection|category|search|browse|sale|new-arrivals?|designers?)/?$`),
	regexp.MustCompile(`^/(women|men)/(bags|handbags|accessories)/?$`),
	regexp.MustCompile(`^/(shop|browse|shopping)/(women|men|bags|handbags)/?$`),
	regexp.MustCompile(`^/(women|men)/(bags|handbags)/[a-z-]+/?$`),
	regexp.MustCompile(`/search\?`),
	regexp.MustCompile(`/browse/`),
}

var productIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{5,}`),
	regexp.MustCompile(`-\d{4,}$`),
	regexp.MustCompile(`-\d{4,}\.`),
	regexp.MustCompile(`(?i)item-\d+`),
	regexp.MustCompile(`(?i)-p\d{3,}`),
	regexp.MustCompile(`(?i)/p/[a-z0-9]+`),
	regexp.MustCompile(`(?i)sku[=:][a-z0-9]+`),
	regexp.MustCompile(`(?i)productid[=:]\d+`),
	regexp.MustCompile(`\.shtml$`),
	regexp.MustCompile(`(?i)-[a-f0-9]{8,}`),
}

// retailerProductPatterns override the generic heuristics: when the
// host is known, only its own URL shape counts as a product page.
var retailerProductPatterns = []struct {
	domain  string
	pattern *regexp.Regexp
}{
	{"therealreal.com", regexp.MustCompile(`/products/[^/]+/[^/]+/[^/]+-\d+`)},
	{"fashionphile.com", regexp.MustCompile(`/(product|p)/[a-z0-9-]+-\d+`)},
	{"rebag.com", regexp.MustCompile(`/infinity/[a-z0-9-]+|/clair/[a-z0-9-]+`)},
	{"vestiairecollective.com", regexp.MustCompile(`[a-z-]+-\d+\.shtml`)},
	{"farfetch.com", regexp.MustCompile(`/shopping/[^/]+/item-\d+`)},
	{"mytheresa.com", regexp.MustCompile(`[a-z-]+-p\d+`)},
	{"net-a-porter.com", regexp.MustCompile(`/product/\d+`)},
	{"ssense.com", regexp.MustCompile(`/[a-z]+/[a-z]+/[a-z0-9-]+-\d+`)},
	{"24s.com", regexp.MustCompile(`[a-z-]+-\d{5,}`)},
	{"cettire.com", regexp.MustCompile(`[a-z-]+-\d{5,}`)},
}

var genericProductIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)/product/[a-z0-9-]+$`),
	regexp.MustCompile(`(?i)/item/[a-z0-9-]+$`),
	regexp.MustCompile(`(?i)/p/[a-z0-9]+$`),
	regexp.MustCompile(`[a-z]+-[a-z]+-[a-z0-9]+-\d{3,}$`),
}

// IsProductPage reports whether a URL points at a specific product
// rather than a category, search, or landing page. Checks run in a
// fixed order: shallow and category paths are rejected, product-id
// shapes accepted, and known retailers get the final say over their own
// URL layout.
func IsProductPage(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	pathname := strings.ToLower(u.Path)
	hostname := strings.ToLower(u.Hostname())

	if pathname == "/" || pathname == "" {
		return false
	}

	var segments []string
	for _, seg := range strings.Split(pathname, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) < 2 {
		return false
	}

	// Query params carry sku= and productid= markers, so the id checks
	// see path plus query.
	fullPath := pathname
	if u.RawQuery != "" {
		fullPath += "?" + strings.ToLower(u.RawQuery)
	}

	for _, p := range categoryOnlyPatterns {
		if p.MatchString(pathname) || p.MatchString(fullPath) {
			return false
		}
	}

	lastSegment := segments[len(segments)-1]
	for _, p := range productIDPatterns {
		if p.MatchString(fullPath) || p.MatchString(lastSegment) {
			return true
		}
	}

	for _, rp := range retailerProductPatterns {
		if strings.Contains(hostname, rp.domain) {
			return rp.pattern.MatchString(pathname)
		}
	}

	for _, p := range genericProductIndicators {
		if p.MatchString(pathname) {
			return true
		}
	}
	return false
}
