package api

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/manayush/ajax-new/internal/client"
	"github.com/manayush/ajax-new/internal/domain"
	"github.com/manayush/ajax-new/internal/httpclient"
	"github.com/manayush/ajax-new/internal/render"
)

// PageRenderer fills the detail page regions for one country code.
type PageRenderer interface {
	Render(ctx context.Context, identifier string, page *render.Page) error
}

// CountryLookup fetches raw country records for the JSON endpoint.
type CountryLookup interface {
	GetCountryByCode(ctx context.Context, code string) ([]*domain.Country, error)
}

// CountryHandler handles HTTP requests for country information.
type CountryHandler struct {
	renderer PageRenderer
	lookup   CountryLookup
	logger   *slog.Logger
}

// NewCountryHandler creates a new handler with the given renderer and lookup.
func NewCountryHandler(renderer PageRenderer, lookup CountryLookup, logger *slog.Logger) *CountryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CountryHandler{
		renderer: renderer,
		lookup:   lookup,
		logger:   logger,
	}
}

// DetailPage serves the country detail document for ?country=XX. Render
// failures are part of the page, so the status is 200 unless the document
// itself cannot be produced.
func (h *CountryHandler) DetailPage(c *gin.Context) {
	page := render.NewPage()
	c.Header(httpclient.RequestIDHeader, page.RequestID)

	if err := h.renderer.Render(c.Request.Context(), c.Query("country"), page); err != nil {
		h.logger.Debug("page rendered with error", "request_id", page.RequestID, "error", err)
	}

	var buf bytes.Buffer
	if err := page.WriteHTML(&buf); err != nil {
		h.logger.Error("failed to write page", "request_id", page.RequestID, "error", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// GetCountry is the handler for the /api/countries/:code endpoint.
func (h *CountryHandler) GetCountry(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path parameter 'code' is required"})
		return
	}

	countries, err := h.lookup.GetCountryByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
			return
		}
		h.logger.Error("failed to fetch country", "country", code, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream error"})
		return
	}

	country, ok := domain.First(countries)
	if !ok || country == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		return
	}

	c.JSON(http.StatusOK, country)
}

// Health reports that the server is up.
func (h *CountryHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
