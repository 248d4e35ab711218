package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"track-recommender/internal/api/errors"
	"track-recommender/internal/api/middleware"
	"track-recommender/internal/api/v1/dto"
	"track-recommender/internal/api/v1/services"
)

// TrackHandler handles track and recommendation endpoints
type TrackHandler struct {
	tracks          services.TrackService
	recommendations services.RecommendationService
}

// NewTrackHandler creates a new track handler
func NewTrackHandler(tracks services.TrackService, recommendations services.RecommendationService) *TrackHandler {
	return &TrackHandler{
		tracks:          tracks,
		recommendations: recommendations,
	}
}

// List handles GET /api/v1/tracks
//
// @Summary List stored tracks
// @Description Retrieves a page of stored tracks ordered by id
// @Tags tracks
// @Produce json
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Items per page" default(20) minimum(1) maximum(100)
// @Success 200 {object} dto.PaginatedTracksResponse "Page of tracks"
// @Failure 400 {object} errors.APIError "Bad request - invalid query parameters"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Header 200 {string} X-Total-Count "Total number of stored tracks"
// @Router /tracks [get]
func (h *TrackHandler) List(c *gin.Context) {
	var query dto.ListTracksQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.tracks.ListTracks(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(response.Pagination.Total))
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/tracks/:id
//
// @Summary Get track by ID
// @Description Retrieves a stored track with its album, artists, markets and external ids
// @Tags tracks
// @Produce json
// @Param id path string true "Track ID"
// @Success 200 {object} dto.TrackResponse "Track details"
// @Failure 404 {object} errors.APIError "Track not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /tracks/{id} [get]
func (h *TrackHandler) Get(c *gin.Context) {
	id, ok := trackID(c)
	if !ok {
		return
	}

	response, err := h.tracks.GetTrack(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Recommendations handles GET /api/v1/tracks/:id/recommendations
//
// @Summary Recommend similar tracks
// @Description Ranks every other stored track by cosine similarity of normalized duration and popularity
// @Tags recommendations
// @Produce json
// @Param id path string true "Seed track ID"
// @Param k query int false "Number of recommendations" default(5) minimum(1)
// @Success 200 {object} dto.RecommendationsResponse "Recommendations, most similar first"
// @Failure 400 {object} errors.APIError "Bad request - invalid k"
// @Failure 404 {object} errors.APIError "Seed track not found"
// @Failure 422 {object} errors.APIError "k above the configured maximum"
// @Failure 503 {object} errors.APIError "Catalog store unavailable"
// @Router /tracks/{id}/recommendations [get]
func (h *TrackHandler) Recommendations(c *gin.Context) {
	id, ok := trackID(c)
	if !ok {
		return
	}

	var query dto.RecommendationQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.recommendations.Recommend(c.Request.Context(), id, query.K)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func trackID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Invalid track ID"))
		return "", false
	}
	return id, true
}
