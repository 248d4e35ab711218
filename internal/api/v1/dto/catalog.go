package dto

import (
	"github.com/samber/lo"

	"track-recommender/internal/api/errors"
	"track-recommender/internal/app/importer"
)

// ImportTrackRequest asks for one track to be copied from the catalog service
type ImportTrackRequest struct {
	TrackID string `json:"track_id" binding:"required,alphanum,max=64"`
}

// ImportTrackResponse reports a single track import
type ImportTrackResponse struct {
	Created bool          `json:"created"`
	Track   TrackResponse `json:"track"`
}

// SearchQuery represents query parameters for a catalog search
type SearchQuery struct {
	Q     string `form:"q" binding:"required"`
	Limit int    `form:"limit,default=10" binding:"min=1,max=50"`
}

// SearchResponse lists catalog search results; nothing is stored
type SearchResponse struct {
	Query  string          `json:"query"`
	Tracks []TrackResponse `json:"tracks"`
}

// ImportRequest asks for every result of a catalog search to be stored
type ImportRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit" binding:"omitempty,min=1,max=50"`
}

// Validate fills defaults for omitted fields
func (r *ImportRequest) Validate() error {
	if r.Query == "" {
		r.Query = importer.DefaultQuery
	}
	if r.Limit == 0 {
		r.Limit = importer.DefaultLimit
	}
	if len(r.Query) > 256 {
		return errors.NewValidationError("Invalid import request", map[string]string{
			"query": "must be at most 256 characters",
		})
	}
	return nil
}

// ImportResultResponse is the outcome of importing one search result
type ImportResultResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Created bool   `json:"created"`
	Error   string `json:"error,omitempty"`
}

// ImportResponse reports a bulk import
type ImportResponse struct {
	Query    string                 `json:"query"`
	Created  int                    `json:"created"`
	Existing int                    `json:"existing"`
	Failed   int                    `json:"failed"`
	Results  []ImportResultResponse `json:"results"`
}

// ToImportResponse converts an importer summary
func ToImportResponse(summary *importer.ImportSummary) ImportResponse {
	return ImportResponse{
		Query:    summary.Query,
		Created:  summary.Created,
		Existing: summary.Existing,
		Failed:   summary.Failed,
		Results: lo.Map(summary.Results, func(r importer.Result, _ int) ImportResultResponse {
			resp := ImportResultResponse{ID: r.ID, Name: r.Name, Created: r.Created}
			if r.Err != nil {
				resp.Error = r.Err.Error()
			}
			return resp
		}),
	}
}
