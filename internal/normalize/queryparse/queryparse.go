// Package queryparse turns conversational shopping requests into
// structured query filters without calling a language model. It is the
// deterministic fallback behind the concierge and is cheap enough to
// run on every request.
package queryparse

import (
	"regexp"
	"strconv"
	"strings"

	"handbag-explorer/internal/models"
)

// vocabEntry maps a matchable phrase to its canonical value. Slices
// keep lookup order deterministic; the first match wins.
type vocabEntry struct {
	key   string
	value string
}

var brandVocab = []vocabEntry{
	{"hermes", "Hermès"},
	{"hermès", "Hermès"},
	{"chanel", "Chanel"},
	{"louis vuitton", "Louis Vuitton"},
	{"lv", "Louis Vuitton"},
	{"gucci", "Gucci"},
	{"prada", "Prada"},
	{"dior", "Dior"},
	{"celine", "Céline"},
	{"céline", "Céline"},
	{"bottega veneta", "Bottega Veneta"},
	{"bottega", "Bottega Veneta"},
	{"balenciaga", "Balenciaga"},
	{"saint laurent", "Saint Laurent"},
	{"ysl", "Saint Laurent"},
	{"fendi", "Fendi"},
	{"loewe", "Loewe"},
	{"chloe", "Chloé"},
	{"chloé", "Chloé"},
	{"givenchy", "Givenchy"},
	{"valentino", "Valentino"},
	{"burberry", "Burberry"},
	{"goyard", "Goyard"},
}

var colorVocab = []string{
	"black", "white", "red", "blue", "green", "pink", "gold", "silver",
	"brown", "tan", "beige", "cream", "navy", "burgundy", "orange",
	"yellow", "purple", "grey", "gray", "nude", "camel", "cognac",
}

var bagTypeVocab = []vocabEntry{
	{"tote", "Tote"},
	{"shoulder", "Shoulder"},
	{"shoulder bag", "Shoulder"},
	{"crossbody", "Crossbody"},
	{"cross body", "Crossbody"},
	{"clutch", "Clutch"},
	{"top handle", "Top-handle"},
	{"top-handle", "Top-handle"},
	{"satchel", "Satchel"},
	{"hobo", "Hobo"},
	{"backpack", "Backpack"},
	{"bucket", "Bucket"},
	{"bucket bag", "Bucket"},
	{"flap", "Flap"},
	{"flap bag", "Flap"},
	{"belt bag", "Belt Bag"},
	{"mini bag", "Mini Bag"},
	{"mini", "Mini Bag"},
	{"evening bag", "Clutch"},
	{"evening", "Clutch"},
	{"work bag", "Tote"},
	{"office bag", "Tote"},
	{"travel bag", "Tote"},
	{"weekend bag", "Tote"},
}

// occasionVocab only applies when no bag type was named directly.
var occasionVocab = []vocabEntry{
	{"cocktail", "Clutch"},
	{"cocktail dinner", "Clutch"},
	{"dinner", "Clutch"},
	{"party", "Clutch"},
	{"evening", "Clutch"},
	{"night out", "Clutch"},
	{"date night", "Clutch"},
	{"wedding", "Clutch"},
	{"gala", "Clutch"},
	{"formal", "Clutch"},
	{"work", "Tote"},
	{"office", "Tote"},
	{"business", "Tote"},
	{"professional", "Tote"},
	{"everyday", "Shoulder"},
	{"daily", "Shoulder"},
	{"casual", "Crossbody"},
	{"weekend", "Crossbody"},
	{"travel", "Tote"},
	{"vacation", "Crossbody"},
	{"brunch", "Crossbody"},
	{"shopping", "Tote"},
}

const amount = `(\d{1,3}(?:,?\d{3})*)`

var maxPricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)under\s*\$?\s*` + amount),
	regexp.MustCompile(`(?i)below\s*\$?\s*` + amount),
	regexp.MustCompile(`(?i)less than\s*\$?\s*` + amount),
	regexp.MustCompile(`(?i)max\s*\$?\s*` + amount),
	regexp.MustCompile(`(?i)up to\s*\$?\s*` + amount),
	regexp.MustCompile(`(?i)budget\s*(?:of|is)?\s*\$?\s*` + amount),
	regexp.MustCompile(`(?i)\$\s*` + amount + `\s*(?:or less|max|maximum)`),
}

var minPricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)over\s*\$?\s*` + amount),
	regexp.MustCompile(`(?i)above\s*\$?\s*` + amount),
	regexp.MustCompile(`(?i)more than\s*\$?\s*` + amount),
	regexp.MustCompile(`(?i)at least\s*\$?\s*` + amount),
	regexp.MustCompile(`(?i)starting\s*(?:at|from)?\s*\$?\s*` + amount),
}

// rangePattern runs last and overwrites both bounds, so "between
// $2,000 and $5,000" beats whatever the single-bound patterns saw.
var rangePattern = regexp.MustCompile(`(?i)\$?\s*` + amount + `\s*(?:to|-|and)\s*\$?\s*` + amount)

// Parse interprets a conversational query into structured filters and a
// synthesized search string.
func Parse(input string) models.ParsedQuery {
	lower := strings.ToLower(strings.TrimSpace(input))

	var parsed models.ParsedQuery

	for _, b := range brandVocab {
		if strings.Contains(lower, b.key) {
			parsed.Brand = b.value
			break
		}
	}

	for _, c := range colorVocab {
		if strings.Contains(lower, c) {
			parsed.Color = c
			break
		}
	}

	for _, t := range bagTypeVocab {
		if strings.Contains(lower, t.key) {
			parsed.BagType = t.value
			break
		}
	}

	if parsed.BagType == "" {
		for _, o := range occasionVocab {
			if strings.Contains(lower, o.key) {
				parsed.Occasion = o.key
				parsed.BagType = o.value
				break
			}
		}
	}

	for _, p := range maxPricePatterns {
		if m := p.FindStringSubmatch(input); m != nil {
			parsed.MaxPrice = parseAmount(m[1])
			break
		}
	}

	for _, p := range minPricePatterns {
		if m := p.FindStringSubmatch(input); m != nil {
			parsed.MinPrice = parseAmount(m[1])
			break
		}
	}

	if m := rangePattern.FindStringSubmatch(input); m != nil {
		parsed.MinPrice = parseAmount(m[1])
		parsed.MaxPrice = parseAmount(m[2])
	}

	var parts []string
	if parsed.Brand != "" {
		parts = append(parts, parsed.Brand)
	}
	if parsed.Color != "" {
		parts = append(parts, parsed.Color)
	}
	if parsed.BagType != "" {
		parts = append(parts, strings.ToLower(parsed.BagType))
	}
	parts = append(parts, "handbag")
	parsed.SearchText = strings.Join(parts, " ")

	return parsed
}

func parseAmount(raw string) *int {
	v, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return nil
	}
	return &v
}
