package dto

import (
	"github.com/samber/lo"

	"track-recommender/internal/app/model"
)

// ArtistResponse represents an artist in API responses
type ArtistResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URI         string `json:"uri,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
}

// ImageResponse represents an album cover rendition
type ImageResponse struct {
	URL    string `json:"url"`
	Height *int   `json:"height,omitempty"`
	Width  *int   `json:"width,omitempty"`
}

// AlbumResponse represents an album in API responses
type AlbumResponse struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	AlbumType            string           `json:"album_type,omitempty"`
	TotalTracks          int              `json:"total_tracks,omitempty"`
	ReleaseDate          string           `json:"release_date,omitempty"`
	ReleaseDatePrecision string           `json:"release_date_precision,omitempty"`
	URI                  string           `json:"uri,omitempty"`
	Artists              []ArtistResponse `json:"artists,omitempty"`
	Images               []ImageResponse  `json:"images,omitempty"`
}

// ExternalIDsResponse holds industry identifiers of a track
type ExternalIDsResponse struct {
	ISRC string `json:"isrc,omitempty"`
	EAN  string `json:"ean,omitempty"`
	UPC  string `json:"upc,omitempty"`
}

// TrackResponse represents a track in API responses
type TrackResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	DurationMs  *int                 `json:"duration_ms"`
	Popularity  *int                 `json:"popularity"`
	Explicit    bool                 `json:"explicit"`
	DiscNumber  *int                 `json:"disc_number,omitempty"`
	TrackNumber *int                 `json:"track_number,omitempty"`
	URI         string               `json:"uri,omitempty"`
	ExternalURL string               `json:"external_url,omitempty"`
	PreviewURL  string               `json:"preview_url,omitempty"`
	IsPlayable  bool                 `json:"is_playable"`
	Album       *AlbumResponse       `json:"album,omitempty"`
	Artists     []ArtistResponse     `json:"artists"`
	Markets     []string             `json:"available_markets,omitempty"`
	ExternalIDs *ExternalIDsResponse `json:"external_ids,omitempty"`
}

// ListTracksQuery represents query parameters for listing tracks
type ListTracksQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

// Offset returns the number of tracks preceding the requested page
func (q ListTracksQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// PaginatedTracksResponse represents a page of stored tracks
type PaginatedTracksResponse struct {
	Tracks     []TrackResponse    `json:"tracks"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewPagination computes pagination metadata for a page of a result set
func NewPagination(page, limit, total int) PaginationResponse {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PaginationResponse{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// ToTrackResponse converts a model to response DTO
func ToTrackResponse(t model.Track) TrackResponse {
	resp := TrackResponse{
		ID:          t.ID,
		Name:        t.Name,
		DurationMs:  t.DurationMs,
		Popularity:  t.Popularity,
		Explicit:    t.Explicit,
		DiscNumber:  t.DiscNumber,
		TrackNumber: t.TrackNumber,
		URI:         t.URI,
		ExternalURL: t.ExternalURL,
		PreviewURL:  t.PreviewURL,
		IsPlayable:  t.IsPlayable,
		Artists:     toArtistResponses(t.Artists),
		Markets:     t.Markets,
	}

	if t.Album != nil {
		resp.Album = &AlbumResponse{
			ID:                   t.Album.ID,
			Name:                 t.Album.Name,
			AlbumType:            t.Album.AlbumType,
			TotalTracks:          t.Album.TotalTracks,
			ReleaseDate:          t.Album.ReleaseDate,
			ReleaseDatePrecision: t.Album.ReleaseDatePrecision,
			URI:                  t.Album.URI,
			Artists:              toArtistResponses(t.Album.Artists),
			Images: lo.Map(t.Album.Images, func(img model.Image, _ int) ImageResponse {
				return ImageResponse{URL: img.URL, Height: img.Height, Width: img.Width}
			}),
		}
	}

	if t.ExternalIDs != nil && !t.ExternalIDs.IsEmpty() {
		resp.ExternalIDs = &ExternalIDsResponse{
			ISRC: t.ExternalIDs.ISRC,
			EAN:  t.ExternalIDs.EAN,
			UPC:  t.ExternalIDs.UPC,
		}
	}

	return resp
}

// ToTrackResponses converts a slice of tracks, keeping their order
func ToTrackResponses(tracks []model.Track) []TrackResponse {
	return lo.Map(tracks, func(t model.Track, _ int) TrackResponse {
		return ToTrackResponse(t)
	})
}

func toArtistResponses(artists []model.Artist) []ArtistResponse {
	return lo.Map(artists, func(a model.Artist, _ int) ArtistResponse {
		return ArtistResponse{ID: a.ID, Name: a.Name, URI: a.URI, ExternalURL: a.ExternalURL}
	})
}
