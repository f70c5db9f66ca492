package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SirClappington/seo-architect/internal/errors"
	"github.com/SirClappington/seo-architect/internal/export"
	"github.com/SirClappington/seo-architect/internal/models"
	"github.com/SirClappington/seo-architect/internal/services"
)

type ListingGenerator interface {
	GenerateListing(ctx context.Context, productName, referenceURL string) (*models.ListingResult, error)
}

type CompetitorFinder interface {
	FindCompetitors(ctx context.Context, productName string) (*models.CompetitorSearchResult, error)
}

type CategoryAssigner interface {
	AssignCategories(ctx context.Context, products []string) ([]models.CategoryMapping, error)
}

// Dependencies are the services the HTTP handlers call. Archive may be nil.
type Dependencies struct {
	Listings    ListingGenerator
	Competitors CompetitorFinder
	Categories  CategoryAssigner
	Archive     services.Archive
	Logger      logrus.FieldLogger
}

type handler struct {
	Dependencies
}

func NewRouter(deps Dependencies) *gin.Engine {
	h := &handler{Dependencies: deps}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/listing", h.generateListing)
	r.POST("/listing/export", h.exportListing)
	r.POST("/competitors", h.findCompetitors)
	r.POST("/categories", h.assignCategories)

	return r
}

func (h *handler) handleError(c *gin.Context, err error) {
	if apiErr, ok := errors.AsAPIError(err); ok {
		switch apiErr.Type {
		case errors.ErrorTypeValidation:
			c.JSON(http.StatusBadRequest, apiErr)
		case errors.ErrorTypeExternal:
			h.Logger.WithError(err).Error("External service failure")
			c.JSON(http.StatusServiceUnavailable, apiErr)
		default:
			h.Logger.WithError(err).Error("Request failed")
			c.JSON(http.StatusInternalServerError, apiErr)
		}
		return
	}

	// Handle unknown errors
	h.Logger.WithError(err).Error("Request failed")
	c.JSON(http.StatusInternalServerError, errors.NewInternalError(err))
}

func (h *handler) generateListing(c *gin.Context) {
	var request struct {
		ProductName  string `json:"productName" binding:"required"`
		ReferenceURL string `json:"referenceUrl"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		h.handleError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.Listings.GenerateListing(c.Request.Context(), request.ProductName, request.ReferenceURL)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) exportListing(c *gin.Context) {
	var request struct {
		ProductName string                 `json:"productName" binding:"required"`
		Listing     *models.ProductListing `json:"listing" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		h.handleError(c, errors.NewValidationError(err.Error()))
		return
	}

	var (
		data        []byte
		filename    string
		contentType string
	)
	switch format := c.DefaultQuery("format", "csv"); format {
	case "csv":
		data = export.ListingCSV(request.ProductName, request.Listing)
		filename = export.CSVFilename(request.ProductName)
		contentType = export.CSVContentType
	case "pdf":
		var buf bytes.Buffer
		if err := export.WriteListingPDF(&buf, request.ProductName, request.Listing); err != nil {
			h.handleError(c, errors.NewInternalError(err))
			return
		}
		data = buf.Bytes()
		filename = export.PDFFilename(request.ProductName)
		contentType = export.PDFContentType
	default:
		h.handleError(c, errors.NewValidationError(fmt.Sprintf("unsupported export format %q", format)))
		return
	}

	if c.Query("archive") == "true" {
		if h.Archive == nil {
			h.handleError(c, errors.NewValidationError("export archive is not configured"))
			return
		}
		location, err := h.Archive.Put(c.Request.Context(), filename, contentType, data)
		if err != nil {
			h.handleError(c, errors.NewExternalError("firebase", err))
			return
		}
		c.Header("X-Archive-Object", location)
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}

func (h *handler) findCompetitors(c *gin.Context) {
	var request struct {
		ProductName string `json:"productName" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		h.handleError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.Competitors.FindCompetitors(c.Request.Context(), request.ProductName)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// assignCategories accepts either a products array or a pasted text block
// with one product per line. Blank entries are dropped before the request.
func (h *handler) assignCategories(c *gin.Context) {
	var request struct {
		Products []string `json:"products"`
		Text     string   `json:"text"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		h.handleError(c, errors.NewValidationError(err.Error()))
		return
	}

	products := models.NonBlank(request.Products)
	products = append(products, models.ProductLines(request.Text)...)

	mappings, err := h.Categories.AssignCategories(c.Request.Context(), products)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, export.CategoryLines(mappings))
		return
	}
	c.JSON(http.StatusOK, gin.H{"mappings": mappings})
}
