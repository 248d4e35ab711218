package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	v1routes "track-recommender/internal/api/v1/routes"
	"track-recommender/internal/api/v1/services"
	"track-recommender/internal/app/recommender"
	"track-recommender/internal/app/testutil"
)

func newTestServer(t *testing.T, config Config) *Server {
	t.Helper()
	store := testutil.NewMemoryCatalog(testutil.WorkedExampleTracks()...)
	container := &v1routes.ServiceContainer{
		TrackService:          services.NewTrackService(store),
		RecommendationService: services.NewRecommendationService(recommender.NewEngine(store, nil), nil, 5, 100),
	}
	return NewServer(config, container, zap.NewNop())
}

func serve(s *Server, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, Config{Environment: "test"})

	rec := serve(s, http.MethodGet, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestIndexListsEndpoints(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := serve(s, http.MethodGet, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/tracks")
	assert.Contains(t, rec.Body.String(), "/swagger/index.html")
}

func TestMetricsEndpointExposesHTTPCounters(t *testing.T) {
	s := newTestServer(t, Config{})

	require.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/api/v1/tracks/seed/recommendations?k=2").Code)
	rec := serve(s, http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `recsys_http_requests_total{method="GET",route="/api/v1/tracks/:id/recommendations",status="200"}`)
	assert.Contains(t, rec.Body.String(), "recsys_recommendations_total")
}

func TestAPIRoutesMounted(t *testing.T) {
	s := newTestServer(t, Config{})

	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/api/v1/tracks").Code)
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/api/v1/tracks/A").Code)
	assert.Equal(t, http.StatusNotFound, serve(s, http.MethodGet, "/api/v1/search?q=x").Code)
}

func TestSwaggerServed(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := serve(s, http.MethodGet, "/swagger/doc.json")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/tracks/{id}/recommendations")
}

func TestAddr(t *testing.T) {
	s := newTestServer(t, Config{Host: "127.0.0.1", Port: "9090"})
	assert.Equal(t, "127.0.0.1:9090", s.Addr())
}

func TestRunShutsDownOnCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	_, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)
	require.NoError(t, listener.Close())

	s := newTestServer(t, Config{Host: "127.0.0.1", Port: port})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, 5*time.Second) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + s.Addr() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunReportsListenFailure(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	_, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)

	s := newTestServer(t, Config{Host: "127.0.0.1", Port: port})

	assert.Error(t, s.Run(context.Background(), time.Second))
}
