package spotify

import "track-recommender/internal/app/model"

// ExternalURLs holds the public web links of a catalog object
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// ImageObject is an album cover rendition
type ImageObject struct {
	URL    string `json:"url"`
	Height *int   `json:"height"`
	Width  *int   `json:"width"`
}

// ArtistObject is the simplified artist embedded in tracks and albums
type ArtistObject struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Href         string       `json:"href"`
	URI          string       `json:"uri"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// AlbumObject is the simplified album embedded in a track
type AlbumObject struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	AlbumType            string         `json:"album_type"`
	TotalTracks          int            `json:"total_tracks"`
	ReleaseDate          string         `json:"release_date"`
	ReleaseDatePrecision string         `json:"release_date_precision"`
	Href                 string         `json:"href"`
	URI                  string         `json:"uri"`
	ExternalURLs         ExternalURLs   `json:"external_urls"`
	Artists              []ArtistObject `json:"artists"`
	Images               []ImageObject  `json:"images"`
}

// ExternalIDsObject holds industry identifiers
type ExternalIDsObject struct {
	ISRC string `json:"isrc"`
	EAN  string `json:"ean"`
	UPC  string `json:"upc"`
}

// TrackObject is a full track as returned by /tracks/{id} and /search
type TrackObject struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	DiscNumber       *int              `json:"disc_number"`
	DurationMs       *int              `json:"duration_ms"`
	Explicit         bool              `json:"explicit"`
	Href             string            `json:"href"`
	URI              string            `json:"uri"`
	ExternalURLs     ExternalURLs      `json:"external_urls"`
	Popularity       *int              `json:"popularity"`
	PreviewURL       *string           `json:"preview_url"`
	TrackNumber      *int              `json:"track_number"`
	IsPlayable       *bool             `json:"is_playable"`
	IsLocal          bool              `json:"is_local"`
	Album            *AlbumObject      `json:"album"`
	Artists          []ArtistObject    `json:"artists"`
	AvailableMarkets []string          `json:"available_markets"`
	ExternalIDs      ExternalIDsObject `json:"external_ids"`
}

type pagingTracks struct {
	Href  string        `json:"href"`
	Items []TrackObject `json:"items"`
	Limit int           `json:"limit"`
	Total int           `json:"total"`
}

type searchResponse struct {
	Tracks pagingTracks `json:"tracks"`
}

type errorResponse struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a ArtistObject) toModel() model.Artist {
	return model.Artist{
		ID:          a.ID,
		Name:        a.Name,
		Href:        a.Href,
		URI:         a.URI,
		ExternalURL: a.ExternalURLs.Spotify,
	}
}

// ToModel converts the wire representation into a catalog track.
// A missing is_playable is treated as playable.
func (t TrackObject) ToModel() model.Track {
	track := model.Track{
		ID:          t.ID,
		Name:        t.Name,
		DiscNumber:  t.DiscNumber,
		DurationMs:  t.DurationMs,
		Explicit:    t.Explicit,
		Href:        t.Href,
		URI:         t.URI,
		ExternalURL: t.ExternalURLs.Spotify,
		Popularity:  t.Popularity,
		TrackNumber: t.TrackNumber,
		IsPlayable:  t.IsPlayable == nil || *t.IsPlayable,
		IsLocal:     t.IsLocal,
		Markets:     t.AvailableMarkets,
	}
	if t.PreviewURL != nil {
		track.PreviewURL = *t.PreviewURL
	}

	for _, a := range t.Artists {
		track.Artists = append(track.Artists, a.toModel())
	}

	if t.Album != nil && t.Album.ID != "" {
		album := &model.Album{
			ID:                   t.Album.ID,
			Name:                 t.Album.Name,
			AlbumType:            t.Album.AlbumType,
			TotalTracks:          t.Album.TotalTracks,
			ReleaseDate:          t.Album.ReleaseDate,
			ReleaseDatePrecision: t.Album.ReleaseDatePrecision,
			Href:                 t.Album.Href,
			URI:                  t.Album.URI,
			ExternalURL:          t.Album.ExternalURLs.Spotify,
		}
		for _, a := range t.Album.Artists {
			album.Artists = append(album.Artists, a.toModel())
		}
		for _, img := range t.Album.Images {
			album.Images = append(album.Images, model.Image{URL: img.URL, Height: img.Height, Width: img.Width})
		}
		track.Album = album
		track.AlbumID = album.ID
	}

	ids := model.ExternalIDs{ISRC: t.ExternalIDs.ISRC, EAN: t.ExternalIDs.EAN, UPC: t.ExternalIDs.UPC}
	if !ids.IsEmpty() {
		track.ExternalIDs = &ids
	}

	return track
}
