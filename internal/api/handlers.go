// Package api exposes the HTTP surface: listing search, the concierge,
// similarity lookups, and the curated explore categories.
package api

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"handbag-explorer/internal/common/config"
	stderrors "handbag-explorer/internal/common/errors"
	"handbag-explorer/internal/common/logger"
	"handbag-explorer/internal/models"
	"handbag-explorer/internal/normalize/assemble"
	"handbag-explorer/internal/providers/ai"
	"handbag-explorer/internal/providers/search"
	"handbag-explorer/internal/providers/vector"
)

// Handler carries the service dependencies of all routes. The search
// provider and similarity service may be nil; the corresponding routes
// then degrade to empty results instead of erroring.
type Handler struct {
	cfg        *config.Config
	search     search.Provider
	concierge  *ai.Concierge
	similarity *vector.SimilarityService
	logger     logger.Logger
}

// NewHandler wires the route handlers.
func NewHandler(cfg *config.Config, searchProvider search.Provider, concierge *ai.Concierge, similarity *vector.SimilarityService, log logger.Logger) *Handler {
	return &Handler{
		cfg:        cfg,
		search:     searchProvider,
		concierge:  concierge,
		similarity: similarity,
		logger:     log,
	}
}

// parseSearchFilters reads the search query parameters, applying the
// configured defaults and per-page cap.
func (h *Handler) parseSearchFilters(c *fiber.Ctx) models.SearchFilters {
	filters := models.SearchFilters{
		Query:     strings.TrimSpace(c.Query("q")),
		Brands:    splitCSV(c.Query("brands")),
		BagTypes:  splitCSV(c.Query("bag_type")),
		Countries: splitCSV(c.Query("country")),
		Currency:  c.Query("currency", h.cfg.Listings.DefaultCurrency),
	}

	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		filters.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		filters.MaxPrice = &v
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.Query("per_page", strconv.Itoa(h.cfg.Listings.DefaultPerPage)))
	if perPage < 1 || perPage > h.cfg.Listings.MaxPerPage {
		perPage = h.cfg.Listings.DefaultPerPage
	}
	filters.Page = page
	filters.PerPage = perPage

	return filters
}

// Search handles GET /api/search.
func (h *Handler) Search(c *fiber.Ctx) error {
	filters := h.parseSearchFilters(c)

	if h.search == nil {
		cfgErr := stderrors.NewSearchNotConfiguredError()
		h.logger.Warn(cfgErr.Message, map[string]interface{}{"code": string(cfgErr.Code)})
		return c.JSON(models.SearchResponse{
			Page:    filters.Page,
			PerPage: filters.PerPage,
			Total:   0,
			Results: []models.Listing{},
			Message: cfgErr.Message + ".",
		})
	}

	query := search.BuildQuery(filters)
	raw, err := h.search.Search(c.UserContext(), query, h.cfg.Search.NumResults)
	if err != nil {
		h.logger.Error("Search provider call failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return c.Status(stderrors.StatusFor(err)).JSON(fiber.Map{
			"error": "Failed to search for handbags. Please try again.",
		})
	}

	listings := assemble.Assemble(raw, filters.Currency)
	filtered := assemble.ApplyFilters(listings, filters)

	// Feed the similarity index in the background; searches should not
	// wait on embedding calls.
	if h.similarity != nil && h.similarity.Enabled() && len(filtered) > 0 {
		toIndex := make([]models.Listing, len(filtered))
		copy(toIndex, filtered)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			h.similarity.IndexAll(ctx, toIndex)
		}()
	}

	return c.JSON(assemble.Paginate(filtered, filters.Page, filters.PerPage))
}

type conciergeRequest struct {
	Message string `json:"message"`
}

// Concierge handles POST /api/concierge.
func (h *Handler) Concierge(c *fiber.Ctx) error {
	var req conciergeRequest
	if err := c.BodyParser(&req); err != nil {
		reqErr := stderrors.NewInvalidRequestError("request body is not valid JSON")
		return c.Status(stderrors.StatusFor(reqErr)).JSON(fiber.Map{"error": "Message is required"})
	}
	if strings.TrimSpace(req.Message) == "" {
		reqErr := stderrors.NewInvalidRequestError("message is empty")
		return c.Status(stderrors.StatusFor(reqErr)).JSON(fiber.Map{"error": "Message is required"})
	}

	return c.JSON(h.concierge.Ask(c.UserContext(), req.Message))
}

// Similar handles GET /api/similar. Listings must have been indexed by
// prior searches for this to return anything.
func (h *Handler) Similar(c *fiber.Ctx) error {
	productID := c.Query("id")
	query := c.Query("q")
	topK, _ := strconv.Atoi(c.Query("topK", "5"))
	if topK < 1 {
		topK = 5
	}

	if productID == "" && query == "" {
		reqErr := stderrors.NewInvalidRequestError("either id or q parameter is required")
		return c.Status(stderrors.StatusFor(reqErr)).JSON(fiber.Map{
			"error": "Either id or q parameter is required",
		})
	}

	var (
		results []models.Listing
		err     error
	)
	switch {
	case h.similarity == nil || !h.similarity.Enabled():
		results = nil
	case productID != "":
		results, err = h.similarity.SimilarByID(c.UserContext(), productID, topK)
	default:
		qf := vector.QueryFilters{
			Brand:           c.Query("brand"),
			BagType:         c.Query("bag_type"),
			RetailerCountry: c.Query("country"),
		}
		if v, perr := strconv.ParseFloat(c.Query("min_price"), 64); perr == nil {
			qf.MinPrice = &v
		}
		if v, perr := strconv.ParseFloat(c.Query("max_price"), 64); perr == nil {
			qf.MaxPrice = &v
		}
		results, err = h.similarity.SimilarByText(c.UserContext(), query, topK, qf)
	}
	if err != nil {
		h.logger.Error("Similarity lookup failed", map[string]interface{}{"error": err.Error()})
		return c.Status(stderrors.StatusFor(err)).JSON(fiber.Map{
			"error": "Failed to find similar products",
		})
	}

	if len(results) == 0 {
		return c.JSON(fiber.Map{
			"results": []models.Listing{},
			"message": "No similar products found. Vector search requires indexed products.",
		})
	}
	return c.JSON(fiber.Map{"results": results})
}

// Explore handles GET /api/explore.
func (h *Handler) Explore(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": exploreCategories})
}

// Health handles GET /healthz.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"name":    h.cfg.App.Name,
		"version": h.cfg.App.Version,
	})
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
