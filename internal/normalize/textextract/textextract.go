// Package textextract derives structured listing attributes from the
// free text a search provider returns. Vocabularies are ordered; the
// first matching entry wins, which doubles as the tie-break policy.
package textextract

import (
	"regexp"
	"strings"
)

// brandEntry maps a matchable token to the canonical brand name shown
// to users. Abbreviations and unaccented spellings canonicalize.
type brandEntry struct {
	token string
	canon string
}

var brands = []brandEntry{
	{"Hermès", "Hermès"},
	{"Hermes", "Hermès"},
	{"Chanel", "Chanel"},
	{"Louis Vuitton", "Louis Vuitton"},
	{"LV", "Louis Vuitton"},
	{"Gucci", "Gucci"},
	{"Prada", "Prada"},
	{"Dior", "Dior"},
	{"Christian Dior", "Dior"},
	{"Celine", "Céline"},
	{"Céline", "Céline"},
	{"Bottega Veneta", "Bottega Veneta"},
	{"Balenciaga", "Balenciaga"},
	{"Saint Laurent", "Saint Laurent"},
	{"YSL", "Saint Laurent"},
	{"Fendi", "Fendi"},
	{"Loewe", "Loewe"},
	{"Chloé", "Chloé"},
	{"Chloe", "Chloé"},
	{"Givenchy", "Givenchy"},
	{"Valentino", "Valentino"},
	{"Burberry", "Burberry"},
	{"Goyard", "Goyard"},
}

// DefaultBrand is used when no known house appears in the text.
const DefaultBrand = "Designer"

// Brand returns the canonical brand mentioned first in the ordered
// vocabulary, or DefaultBrand when none matches.
func Brand(text string) string {
	lower := strings.ToLower(text)
	for _, b := range brands {
		if strings.Contains(lower, strings.ToLower(b.token)) {
			return b.canon
		}
	}
	return DefaultBrand
}

var bagTypes = []string{
	"tote",
	"shoulder",
	"crossbody",
	"clutch",
	"top-handle",
	"satchel",
	"hobo",
	"backpack",
	"bucket",
	"flap",
	"belt bag",
	"mini bag",
	"birkin",
	"kelly",
	"classic flap",
	"boy bag",
	"speedy",
	"neverfull",
	"lady dior",
}

// DefaultBagType is used when the text names no recognizable silhouette.
const DefaultBagType = "Handbag"

// BagType returns the first matching silhouette, title-cased, or
// DefaultBagType.
func BagType(text string) string {
	lower := strings.ToLower(text)
	for _, t := range bagTypes {
		if strings.Contains(lower, t) {
			return strings.ToUpper(t[:1]) + t[1:]
		}
	}
	return DefaultBagType
}

var (
	colors = []string{
		"black", "brown", "tan", "beige", "white", "cream", "red", "blue",
		"green", "pink", "gold", "silver", "navy", "burgundy", "orange",
		"yellow", "purple", "grey", "gray", "nude", "camel",
	}
	sizes = []string{
		"mini", "small", "medium", "large", "jumbo", "25", "30", "35", "40",
		"pm", "mm", "gm", "nano", "micro",
	}
	materials = []string{
		"leather", "canvas", "suede", "exotic", "tweed", "denim", "nylon",
		"lambskin", "calfskin", "caviar", "togo", "epsom", "clemence",
		"crocodile", "python",
	}
)

// Attributes holds the optional descriptors extracted from listing text.
type Attributes struct {
	Color    string
	Size     string
	Material string
}

// ExtractAttributes scans for the first color, size, and material
// mentioned in the text. Matching is plain substring scanning, the
// same policy as Brand and BagType; short tokens can fire inside
// longer words ("25" inside "25cm"). Missing attributes stay empty.
func ExtractAttributes(text string) Attributes {
	lower := strings.ToLower(text)

	var attrs Attributes
	for _, c := range colors {
		if strings.Contains(lower, c) {
			attrs.Color = strings.ToUpper(c[:1]) + c[1:]
			break
		}
	}
	for _, s := range sizes {
		if strings.Contains(lower, s) {
			attrs.Size = strings.ToUpper(s[:1]) + s[1:]
			break
		}
	}
	for _, m := range materials {
		if strings.Contains(lower, m) {
			attrs.Material = strings.ToUpper(m[:1]) + m[1:]
			break
		}
	}
	return attrs
}

var resaleHosts = []string{"therealreal", "vestiaire", "rebag", "fashionphile", "ebay"}

// Condition classifies the item condition from listing text, falling
// back to the hosting site: resale marketplaces only carry pre-owned
// stock, everything else is assumed new.
func Condition(text, productURL string) string {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "pre-owned"),
		strings.Contains(lower, "preowned"),
		strings.Contains(lower, "pre owned"):
		return "Pre-owned"
	case strings.Contains(lower, "vintage"):
		return "Vintage"
	case strings.Contains(lower, "like new"),
		strings.Contains(lower, "excellent condition"):
		return "Like New"
	case strings.Contains(lower, "gently used"),
		strings.Contains(lower, "good condition"):
		return "Good"
	}

	lowerURL := strings.ToLower(productURL)
	for _, host := range resaleHosts {
		if strings.Contains(lowerURL, host) {
			return "Pre-owned"
		}
	}
	return "New"
}

var (
	retailerSuffixRe = regexp.MustCompile(`(?i)\s*[-|]\s*(Farfetch|The RealReal|Fashionphile|Rebag|SSENSE|Mytheresa|Net-a-Porter|Vestiaire Collective|24S|Cettire).*$`)
	pipeSuffixRe     = regexp.MustCompile(`\s*\|\s*.*$`)
	shopPrefixRe     = regexp.MustCompile(`(?i)(?:buy|shop)\s+`)
)

// CleanTitle strips retailer branding and storefront boilerplate from a
// scraped page title.
func CleanTitle(title string) string {
	cleaned := retailerSuffixRe.ReplaceAllString(title, "")
	cleaned = pipeSuffixRe.ReplaceAllString(cleaned, "")
	cleaned = shopPrefixRe.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

var (
	imagePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)https?://[^\s"'<>]+\.(?:jpg|jpeg|png|webp|gif)(?:\?[^\s"'<>]*)?`),
		regexp.MustCompile(`(?i)https?://[^\s"'<>]*(?:image|img|photo|pic)[^\s"'<>]*\.(?:jpg|jpeg|png|webp)`),
	}

	imageExcludes = []string{"logo", "icon", "avatar", "placeholder"}
	imagePrefers  = []string{"product", "bag", "item"}
)

// ImageFromText pulls a usable product image URL out of raw page text.
// Site chrome is skipped. A candidate is accepted when it looks like a
// product shot, or when it is one of the first few matches (product
// pages usually lead with the hero image). Returns "" when nothing
// qualifies.
func ImageFromText(text string) string {
	for _, re := range imagePatterns {
		matches := re.FindAllString(text, -1)
		for i, m := range matches {
			lower := strings.ToLower(m)

			excluded := false
			for _, ex := range imageExcludes {
				if strings.Contains(lower, ex) {
					excluded = true
					break
				}
			}
			if excluded {
				continue
			}

			preferred := i < 3
			for _, pref := range imagePrefers {
				if strings.Contains(lower, pref) {
					preferred = true
					break
				}
			}
			if preferred {
				return m
			}
		}
	}
	return ""
}
