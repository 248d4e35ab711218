package config

import "time"

// Default configuration constants
const (
	// Server defaults
	DefaultHTTPPort     = "8080"
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 30 * time.Second

	// Catalog defaults
	DefaultSpotifyAPIURL    = "https://api.spotify.com/v1"
	DefaultSpotifyTokenURL  = "https://accounts.spotify.com/api/token"
	DefaultSpotifyTimeout   = 10 * time.Second
	DefaultSpotifyRateLimit = 5.0
	DefaultSpotifyBurst     = 10

	// Storage defaults
	DefaultSQLitePath = "data/catalog.db"
	DefaultRedisAddr  = "localhost:6379"
	DefaultCacheTTL   = 10 * time.Minute
	DefaultBucket     = "recsys-exports"

	// Recommendation defaults
	DefaultK = 5
	MaxK     = 100
)
