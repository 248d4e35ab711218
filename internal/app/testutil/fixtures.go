package testutil

import (
	"fmt"

	"track-recommender/internal/app/model"
)

// Track builds a minimal track with the two ranking features set
func Track(id string, durationMs, popularity int) model.Track {
	return model.Track{
		ID:         id,
		Name:       "Track " + id,
		URI:        "spotify:track:" + id,
		DurationMs: model.IntPtr(durationMs),
		Popularity: model.IntPtr(popularity),
		IsPlayable: true,
	}
}

// WorkedExampleTracks returns a seed and three candidates whose top-2 is A then C
func WorkedExampleTracks() []model.Track {
	return []model.Track{
		Track("seed", 150000, 60),
		Track("A", 200000, 80),
		Track("B", 200000, 10),
		Track("C", 100000, 50),
	}
}

// FixtureTracks returns fully populated tracks sharing one album
func FixtureTracks() []model.Track {
	album := &model.Album{
		ID:                   "album1",
		Name:                 "Fixture Album",
		AlbumType:            "album",
		TotalTracks:          3,
		ReleaseDate:          "2021-03-05",
		ReleaseDatePrecision: "day",
		URI:                  "spotify:album:album1",
		Artists:              []model.Artist{{ID: "artist1", Name: "First Artist"}},
		Images: []model.Image{
			{URL: "https://i.scdn.co/image/large", Height: model.IntPtr(640), Width: model.IntPtr(640)},
			{URL: "https://i.scdn.co/image/small", Height: model.IntPtr(64), Width: model.IntPtr(64)},
		},
	}

	artists := []model.Artist{
		{ID: "artist1", Name: "First Artist", URI: "spotify:artist:artist1"},
		{ID: "artist2", Name: "Second Artist", URI: "spotify:artist:artist2"},
	}

	specs := []struct {
		duration, popularity int
	}{
		{215000, 72},
		{187000, 55},
		{243000, 31},
	}

	tracks := make([]model.Track, 0, len(specs))
	for i, s := range specs {
		t := Track(fmt.Sprintf("track%d", i+1), s.duration, s.popularity)
		t.DiscNumber = model.IntPtr(1)
		t.TrackNumber = model.IntPtr(i + 1)
		t.Explicit = i == 1
		t.Album = album
		t.AlbumID = album.ID
		t.Artists = artists[:1+i%2]
		t.Markets = []string{"US", "GB", "DE"}
		t.ExternalIDs = &model.ExternalIDs{ISRC: fmt.Sprintf("USRC1700000%d", i+1)}
		tracks = append(tracks, t)
	}
	return tracks
}
