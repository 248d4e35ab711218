// Package spotify is a client for the Spotify Web API catalog endpoints,
// authenticated with the client-credentials flow.
package spotify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	apperrors "track-recommender/internal/app/errors"
	"track-recommender/internal/app/metrics"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50

	breakerName = "spotify"
)

// errNotFound marks a 404 so it can be reported with the requested id
var errNotFound = errors.New("resource not found")

// Config configures the catalog client
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	TokenURL     string
	// Market restricts search results only
	Market       string
	Timeout      time.Duration
	RateLimit    float64
	Burst        int

	// FailureThreshold is the number of consecutive failures that opens the breaker
	FailureThreshold uint32
	// OpenTimeout is how long the breaker stays open before probing again
	OpenTimeout time.Duration
}

// Catalog is the read contract of the remote catalog
type Catalog interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]TrackObject, error)
	GetTrack(ctx context.Context, id string) (*TrackObject, error)
}

// Client calls the Spotify Web API. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	market  string
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  *zap.Logger
}

var _ Catalog = (*Client)(nil)

// NewClient creates a client whose token is fetched and refreshed on demand
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, apperrors.ErrMissingCredentials
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 10
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	credentials := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// the token endpoint is called through the same timeout-bounded client
	base := &http.Client{Timeout: cfg.Timeout}
	httpClient := credentials.Client(context.WithValue(context.Background(), oauth2.HTTPClient, base))
	httpClient.Timeout = cfg.Timeout

	c := &Client{
		http:    httpClient,
		baseURL: cfg.BaseURL,
		market:  cfg.Market,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		logger:  logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("catalog circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerGauge(to))
		},
		// client errors say nothing about the health of the service
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errNotFound) || isClientError(err)
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return c, nil
}

func breakerGauge(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}

// SearchTracks searches the catalog for tracks matching query.
// limit is clamped to [1, 50]; zero selects the default of 10.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]TrackObject, error) {
	if query == "" {
		return nil, apperrors.RequiredField("query")
	}
	limit = ClampLimit(limit)

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(limit))
	if c.market != "" {
		params.Set("market", c.market)
	}

	body, err := c.get(ctx, "search", "/search", params)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrResponseInvalid.Error())
	}
	return resp.Tracks.Items, nil
}

// GetTrack fetches a full track. An unknown id yields apperrors.ErrTrackNotFound.
func (c *Client) GetTrack(ctx context.Context, id string) (*TrackObject, error) {
	if id == "" {
		return nil, apperrors.RequiredField("track id")
	}

	// no market: a market applies relinking and drops available_markets
	body, err := c.get(ctx, "track", "/tracks/"+url.PathEscape(id), url.Values{})
	if errors.Is(err, errNotFound) {
		return nil, apperrors.TrackNotFound(id)
	}
	if err != nil {
		return nil, err
	}

	var track TrackObject
	if err := json.Unmarshal(body, &track); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrResponseInvalid.Error())
	}
	if track.ID == "" {
		return nil, apperrors.Wrapf(apperrors.ErrResponseInvalid, "track %s has no id", id)
	}
	return &track, nil
}

// ClampLimit bounds a search page size to what the API accepts
func ClampLimit(limit int) int {
	switch {
	case limit == 0:
		return DefaultSearchLimit
	case limit < 1:
		return 1
	case limit > MaxSearchLimit:
		return MaxSearchLimit
	default:
		return limit
	}
}

// get performs a rate-limited, breaker-guarded GET and returns the body of a 200 response
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		metrics.CatalogRequests.WithLabelValues(endpoint, "rate_limited").Inc()
		return nil, apperrors.Wrap(err, "wait for rate limiter")
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.do(ctx, endpoint, path, params)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CatalogRequests.WithLabelValues(endpoint, "circuit_open").Inc()
		return nil, apperrors.Unavailable(err, "spotify "+endpoint)
	}
	return body, err
}

func (c *Client) do(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrRequestFailed.Error())
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.CatalogRequests.WithLabelValues(endpoint, "error").Inc()
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, &clientError{apperrors.Wrapf(apperrors.ErrInvalidCredentials, "token request: %v", retrieveErr)}
		}
		return nil, apperrors.Unavailable(apperrors.Wrap(err, apperrors.ErrRequestFailed.Error()), "spotify "+endpoint)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	metrics.CatalogRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	c.logger.Debug("catalog request",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)
	if err != nil {
		return nil, apperrors.Unavailable(apperrors.Wrap(err, "read response body"), "spotify "+endpoint)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, errNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, apperrors.Unavailable(statusError(resp.StatusCode, body), "spotify "+endpoint)
	default:
		return nil, &clientError{statusError(resp.StatusCode, body)}
	}
}

func statusError(status int, body []byte) error {
	var apiErr errorResponse
	message := http.StatusText(status)
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		message = apiErr.Error.Message
	}
	return apperrors.Wrapf(apperrors.ErrRequestFailed, "status %d: %s", status, message)
}

// clientError is a 4xx response caused by the request rather than the service
type clientError struct {
	err error
}

func (e *clientError) Error() string { return e.err.Error() }

func (e *clientError) Unwrap() error { return e.err }

func isClientError(err error) bool {
	var ce *clientError
	return errors.As(err, &ce)
}

