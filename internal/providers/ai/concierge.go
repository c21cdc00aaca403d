package ai

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/xeipuuv/gojsonschema"

	"handbag-explorer/internal/common/logger"
	"handbag-explorer/internal/models"
	"handbag-explorer/internal/normalize/queryparse"
)

const conciergeSystemPrompt = `You are a luxury handbag concierge assistant for "Luxury Handbag Explorer". You help customers find their perfect designer bag.

Your personality:
- Warm, knowledgeable, and sophisticated
- You speak like a personal shopper at a high-end boutique
- Enthusiastic about luxury fashion but not pushy

When users ask about bags, you should:
1. Acknowledge their request warmly
2. Provide helpful context about the type of bag that would suit their needs
3. Mention specific brands or styles that match their criteria
4. Give a brief tip or insider knowledge about that category

Extract these filters from the user's message (return as JSON):
- brand: specific brand mentioned (Hermès, Chanel, Louis Vuitton, Gucci, Prada, Dior, YSL/Saint Laurent, Bottega Veneta, etc.)
- color: color mentioned (black, gold, red, beige, tan, cream, brown, navy, etc.)
- maxPrice: maximum budget mentioned (number only, e.g., 5000)
- minPrice: minimum budget if mentioned (number only)
- bagType: type of bag (Clutch, Tote, Shoulder, Crossbody, Top-handle, etc.)
- occasion: event or use case (cocktail, dinner, work, everyday, wedding, etc.)
- searchQuery: optimized search terms to find matching bags

Always respond in this JSON format:
{
  "message": "Your conversational response here (2-3 sentences max)",
  "filters": {
    "brand": null or "Brand Name",
    "color": null or "color",
    "maxPrice": null or number,
    "minPrice": null or number,
    "bagType": null or "Type",
    "occasion": null or "occasion"
  },
  "searchQuery": "optimized search query for finding bags",
  "tip": "A short insider tip related to their request (optional, 1 sentence)"
}

Examples:

User: "I need a bag for a cocktail party under $3000"
Response: {
  "message": "How exciting! For a cocktail party, you'll want something elegant yet compact. A classic clutch or small shoulder bag would be perfect - they're chic, easy to carry, and make a statement.",
  "filters": {
    "brand": null,
    "color": null,
    "maxPrice": 3000,
    "minPrice": null,
    "bagType": "Clutch",
    "occasion": "cocktail"
  },
  "searchQuery": "evening clutch cocktail party elegant designer",
  "tip": "Pro tip: A metallic or jewel-toned clutch photographs beautifully at events!"
}

User: "Show me black YSL bags"
Response: {
  "message": "Excellent choice! Saint Laurent is renowned for their sleek, Parisian aesthetic. Their black bags are timeless investments - the Loulou and Kate are particularly iconic.",
  "filters": {
    "brand": "Saint Laurent",
    "color": "black",
    "maxPrice": null,
    "minPrice": null,
    "bagType": null,
    "occasion": null
  },
  "searchQuery": "Saint Laurent YSL black handbag",
  "tip": "The YSL Loulou in black lambskin is a fan favorite that works day to night."
}

User: "I want a small evening bag in gold"
Response: {
  "message": "A gold evening bag is such a glamorous choice! It pairs beautifully with both neutral and bold outfits. I'd recommend looking at minaudières or small clutches for that perfect touch of luxury.",
  "filters": {
    "brand": null,
    "color": "gold",
    "maxPrice": null,
    "minPrice": null,
    "bagType": "Clutch",
    "occasion": "evening"
  },
  "searchQuery": "gold evening clutch small metallic designer",
  "tip": "Gold hardware on a neutral bag is another way to add that golden glow!"
}

Keep responses concise and helpful. Focus on being a knowledgeable shopping assistant.`

// conciergeReplySchema guards against model output that has the right
// shape of braces but the wrong structure.
const conciergeReplySchema = `{
  "type": "object",
  "required": ["message", "filters", "searchQuery"],
  "properties": {
    "message": {"type": "string"},
    "searchQuery": {"type": "string"},
    "tip": {"type": ["string", "null"]},
    "filters": {
      "type": "object",
      "properties": {
        "brand": {"type": ["string", "null"]},
        "color": {"type": ["string", "null"]},
        "bagType": {"type": ["string", "null"]},
        "occasion": {"type": ["string", "null"]},
        "minPrice": {"type": ["number", "null"]},
        "maxPrice": {"type": ["number", "null"]}
      }
    }
  }
}`

var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// Concierge answers conversational shopping requests. It prefers the
// chat model; when the model is unavailable or returns something that
// is not a valid reply, the deterministic query parser takes over so
// the endpoint never fails outright.
type Concierge struct {
	chat   ChatProvider
	schema *gojsonschema.Schema
	logger logger.Logger
}

// NewConcierge wires a concierge service. chat may be nil when no model
// provider is configured.
func NewConcierge(chat ChatProvider, log logger.Logger) *Concierge {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(conciergeReplySchema))
	if err != nil {
		// The schema is a compile-time constant; failing to parse it is
		// a programming error.
		panic(err)
	}
	return &Concierge{
		chat:   chat,
		schema: schema,
		logger: log,
	}
}

// Ask produces a concierge reply for one user message.
func (c *Concierge) Ask(ctx context.Context, message string) *models.ConciergeReply {
	if c.chat == nil {
		return c.fallback(message)
	}

	raw, err := c.chat.Complete(ctx, conciergeSystemPrompt, message)
	if err != nil {
		c.logger.Warn("Concierge completion failed, using parser fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return c.fallback(message)
	}

	reply, ok := c.parseReply(raw)
	if !ok {
		c.logger.Warn("Concierge returned unparseable output, using parser fallback", map[string]interface{}{
			"output_length": len(raw),
		})
		fb := c.fallback(message)
		if raw != "" {
			// Keep the model's prose even when its structure is broken.
			fb.Message = raw
		}
		return fb
	}

	if reply.Message == "" {
		reply.Message = "I'd be happy to help you find the perfect bag!"
	}
	if reply.SearchQuery == "" {
		reply.SearchQuery = message
	}
	return reply
}

// parseReply extracts and validates the JSON block of a completion.
func (c *Concierge) parseReply(raw string) (*models.ConciergeReply, bool) {
	block := jsonBlockRe.FindString(raw)
	if block == "" {
		return nil, false
	}

	result, err := c.schema.Validate(gojsonschema.NewStringLoader(block))
	if err != nil || !result.Valid() {
		return nil, false
	}

	var reply models.ConciergeReply
	if err := json.Unmarshal([]byte(block), &reply); err != nil {
		return nil, false
	}
	return &reply, true
}

// fallback derives a reply from the deterministic query parser.
func (c *Concierge) fallback(message string) *models.ConciergeReply {
	parsed := queryparse.Parse(message)

	reply := &models.ConciergeReply{
		Message:     "I'd be happy to help you find the perfect bag! Here is what I found based on your request.",
		SearchQuery: parsed.SearchText,
	}
	if parsed.Brand != "" {
		reply.Filters.Brand = &parsed.Brand
	}
	if parsed.Color != "" {
		reply.Filters.Color = &parsed.Color
	}
	if parsed.BagType != "" {
		reply.Filters.BagType = &parsed.BagType
	}
	if parsed.Occasion != "" {
		reply.Filters.Occasion = &parsed.Occasion
	}
	if parsed.MinPrice != nil {
		v := float64(*parsed.MinPrice)
		reply.Filters.MinPrice = &v
	}
	if parsed.MaxPrice != nil {
		v := float64(*parsed.MaxPrice)
		reply.Filters.MaxPrice = &v
	}
	return reply
}
