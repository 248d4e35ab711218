package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"track-recommender/internal/api/middleware"
	"track-recommender/internal/api/v1/dto"
	"track-recommender/internal/api/v1/services"
)

// CatalogHandler handles catalog service search and import endpoints
type CatalogHandler struct {
	service services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service services.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ImportTrack handles POST /api/v1/tracks
//
// @Summary Import a track
// @Description Fetches a track from the catalog service and stores it with its album and artists. Existing rows are kept.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.ImportTrackRequest true "Track to import"
// @Success 201 {object} dto.ImportTrackResponse "Track stored"
// @Success 200 {object} dto.ImportTrackResponse "Track already stored"
// @Failure 404 {object} errors.APIError "Track not found in the catalog service"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 503 {object} errors.APIError "Catalog service unavailable or not configured"
// @Router /tracks [post]
func (h *CatalogHandler) ImportTrack(c *gin.Context) {
	var req dto.ImportTrackRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.ImportTrack(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	status := http.StatusOK
	if response.Created {
		status = http.StatusCreated
	}
	c.JSON(status, response)
}

// Search handles GET /api/v1/search
//
// @Summary Search the catalog service
// @Description Searches tracks in the catalog service; results are not stored
// @Tags catalog
// @Produce json
// @Param q query string true "Search query, e.g. genre:pop"
// @Param limit query int false "Maximum results" default(10) minimum(1) maximum(50)
// @Success 200 {object} dto.SearchResponse "Search results"
// @Failure 400 {object} errors.APIError "Bad request - invalid query parameters"
// @Failure 503 {object} errors.APIError "Catalog service unavailable or not configured"
// @Router /search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	var query dto.SearchQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Import handles POST /api/v1/imports
//
// @Summary Bulk import search results
// @Description Searches the catalog service and stores every result, reporting created and existing tracks
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.ImportRequest false "Search to import; defaults to genre:pop with 20 results"
// @Success 200 {object} dto.ImportResponse "Import summary"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 503 {object} errors.APIError "Catalog service unavailable or not configured"
// @Router /imports [post]
func (h *CatalogHandler) Import(c *gin.Context) {
	var req dto.ImportRequest
	if c.Request.ContentLength == 0 {
		if err := req.Validate(); err != nil {
			middleware.HandleError(c, err)
			return
		}
	} else if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Import(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
