package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "track-recommender/internal/app/errors"
)

const trackJSON = `{
	"id": "4uLU6hMCjMI75M1A2tKUQC",
	"name": "Never Gonna Give You Up",
	"disc_number": 1,
	"duration_ms": 213573,
	"explicit": false,
	"href": "https://api.spotify.com/v1/tracks/4uLU6hMCjMI75M1A2tKUQC",
	"uri": "spotify:track:4uLU6hMCjMI75M1A2tKUQC",
	"external_urls": {"spotify": "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC"},
	"popularity": 77,
	"preview_url": null,
	"track_number": 1,
	"is_local": false,
	"album": {
		"id": "6N9PS4QXF1D0OWPk0Sxtb4",
		"name": "Whenever You Need Somebody",
		"album_type": "album",
		"total_tracks": 10,
		"release_date": "1987-11-12",
		"release_date_precision": "day",
		"uri": "spotify:album:6N9PS4QXF1D0OWPk0Sxtb4",
		"external_urls": {"spotify": "https://open.spotify.com/album/6N9PS4QXF1D0OWPk0Sxtb4"},
		"artists": [{"id": "0gxyHStUsqpMadRV0Di1Qt", "name": "Rick Astley"}],
		"images": [{"url": "https://i.scdn.co/image/ab67616d0000b273", "height": 640, "width": 640}]
	},
	"artists": [{"id": "0gxyHStUsqpMadRV0Di1Qt", "name": "Rick Astley", "uri": "spotify:artist:0gxyHStUsqpMadRV0Di1Qt"}],
	"available_markets": ["GB", "US"],
	"external_ids": {"isrc": "GBARL9300135"}
}`

type fakeSpotify struct {
	server      *httptest.Server
	apiCalls    atomic.Int32
	tokenStatus int
	handler     http.HandlerFunc
}

func newFakeSpotify(t *testing.T, handler http.HandlerFunc) *fakeSpotify {
	t.Helper()
	f := &fakeSpotify{tokenStatus: http.StatusOK, handler: handler}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		id, secret, ok := r.BasicAuth()
		if !ok || id != "client-id" || secret != "client-secret" || f.tokenStatus != http.StatusOK {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid_client"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"test-token","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/v1/", func(w http.ResponseWriter, r *http.Request) {
		f.apiCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		f.handler(w, r)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeSpotify) client(t *testing.T, threshold uint32) *Client {
	t.Helper()
	c, err := NewClient(Config{
		ClientID:         "client-id",
		ClientSecret:     "client-secret",
		BaseURL:          f.server.URL + "/v1",
		TokenURL:         f.server.URL + "/api/token",
		Market:           "US",
		Timeout:          2 * time.Second,
		RateLimit:        1000,
		Burst:            100,
		FailureThreshold: threshold,
		OpenTimeout:      time.Minute,
	}, nil)
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(Config{ClientID: "id"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrMissingCredentials)
}

func TestSearchTracks(t *testing.T) {
	var gotQuery string
	fake := newFakeSpotify(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"tracks":{"items":[` + trackJSON + `],"limit":50,"total":1}}`))
	})

	tracks, err := fake.client(t, 5).SearchTracks(context.Background(), "genre:pop", 80)
	require.NoError(t, err)

	require.Len(t, tracks, 1)
	assert.Equal(t, "Never Gonna Give You Up", tracks[0].Name)
	assert.Contains(t, gotQuery, "q=genre%3Apop")
	assert.Contains(t, gotQuery, "type=track")
	assert.Contains(t, gotQuery, "limit=50")
	assert.Contains(t, gotQuery, "market=US")
}

func TestSearchTracksRequiresQuery(t *testing.T) {
	fake := newFakeSpotify(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := fake.client(t, 5).SearchTracks(context.Background(), "", 10)

	assert.Error(t, err)
	assert.Equal(t, int32(0), fake.apiCalls.Load())
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 10},
		{-5, 1},
		{1, 1},
		{20, 20},
		{50, 50},
		{51, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampLimit(tt.in), "limit %d", tt.in)
	}
}

func TestGetTrack(t *testing.T) {
	fake := newFakeSpotify(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tracks/4uLU6hMCjMI75M1A2tKUQC", r.URL.Path)
		assert.False(t, r.URL.Query().Has("market"), "market must not be sent when fetching a track")
		w.Write([]byte(trackJSON))
	})

	obj, err := fake.client(t, 5).GetTrack(context.Background(), "4uLU6hMCjMI75M1A2tKUQC")
	require.NoError(t, err)

	track := obj.ToModel()
	assert.Equal(t, 213573, *track.DurationMs)
	assert.Equal(t, 77, *track.Popularity)
	assert.True(t, track.IsPlayable)
	assert.Empty(t, track.PreviewURL)
	assert.Equal(t, "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC", track.ExternalURL)
	assert.Equal(t, []string{"Rick Astley"}, track.ArtistNames())
	assert.Equal(t, []string{"GB", "US"}, track.Markets)
	require.NotNil(t, track.Album)
	assert.Equal(t, "6N9PS4QXF1D0OWPk0Sxtb4", track.AlbumID)
	assert.Equal(t, 640, *track.Album.Images[0].Width)
	require.NotNil(t, track.ExternalIDs)
	assert.Equal(t, "GBARL9300135", track.ExternalIDs.ISRC)
}

func TestGetTrackNotFound(t *testing.T) {
	fake := newFakeSpotify(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"status":404,"message":"Non existing id"}}`))
	})
	client := fake.client(t, 1)

	for i := 0; i < 3; i++ {
		_, err := client.GetTrack(context.Background(), "missing")
		assert.ErrorIs(t, err, apperrors.ErrTrackNotFound)
		assert.NotErrorIs(t, err, apperrors.ErrCatalogUnavailable)
	}
	// not-found responses never open the breaker
	assert.Equal(t, int32(3), fake.apiCalls.Load())
}

func TestClientErrorDoesNotTripBreaker(t *testing.T) {
	fake := newFakeSpotify(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"status":400,"message":"invalid id"}}`))
	})
	client := fake.client(t, 1)

	for i := 0; i < 2; i++ {
		_, err := client.GetTrack(context.Background(), "bad id")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrRequestFailed)
		assert.Contains(t, err.Error(), "invalid id")
		assert.NotErrorIs(t, err, apperrors.ErrCatalogUnavailable)
	}
	assert.Equal(t, int32(2), fake.apiCalls.Load())
}

func TestServerErrorsOpenBreaker(t *testing.T) {
	fake := newFakeSpotify(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	client := fake.client(t, 2)

	for i := 0; i < 2; i++ {
		_, err := client.GetTrack(context.Background(), "t")
		assert.ErrorIs(t, err, apperrors.ErrCatalogUnavailable)
		assert.ErrorIs(t, err, apperrors.ErrRequestFailed)
	}

	_, err := client.GetTrack(context.Background(), "t")
	assert.ErrorIs(t, err, apperrors.ErrCatalogUnavailable)
	assert.Contains(t, err.Error(), "circuit breaker is open")
	assert.Equal(t, int32(2), fake.apiCalls.Load())
}

func TestInvalidJSON(t *testing.T) {
	fake := newFakeSpotify(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": `))
	})

	_, err := fake.client(t, 5).GetTrack(context.Background(), "t")

	assert.ErrorIs(t, err, apperrors.ErrResponseInvalid)
}

func TestRejectedCredentials(t *testing.T) {
	fake := newFakeSpotify(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(trackJSON))
	})
	fake.tokenStatus = http.StatusUnauthorized

	_, err := fake.client(t, 5).GetTrack(context.Background(), "t")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, int32(0), fake.apiCalls.Load())
}

func TestCancelledContext(t *testing.T) {
	fake := newFakeSpotify(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(trackJSON))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fake.client(t, 5).GetTrack(ctx, "t")

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "context canceled"))
}
