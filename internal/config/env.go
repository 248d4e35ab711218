package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"

	apperrors "track-recommender/internal/app/errors"
)

// SpotifyCredentials holds the client-credentials pair loaded from environment
type SpotifyCredentials struct {
	ClientID     string
	ClientSecret string
}

var credentialPattern = regexp.MustCompile(`^[0-9a-fA-F]{32}$`)

// LoadEnv loads environment variables from the first .env file found.
// A missing file is not an error; variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetSpotifyCredentials reads SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET.
// Empty values are allowed; malformed ones are rejected.
func GetSpotifyCredentials() (*SpotifyCredentials, error) {
	creds := &SpotifyCredentials{
		ClientID:     strings.TrimSpace(os.Getenv("SPOTIFY_CLIENT_ID")),
		ClientSecret: strings.TrimSpace(os.Getenv("SPOTIFY_CLIENT_SECRET")),
	}

	if creds.ClientID != "" && !credentialPattern.MatchString(creds.ClientID) {
		return nil, fmt.Errorf("invalid SPOTIFY_CLIENT_ID format: expected 32 hex characters")
	}
	if creds.ClientSecret != "" && !credentialPattern.MatchString(creds.ClientSecret) {
		return nil, fmt.Errorf("invalid SPOTIFY_CLIENT_SECRET format: expected 32 hex characters")
	}

	return creds, nil
}

// Configured reports whether both halves of the credentials are present
func (c *SpotifyCredentials) Configured() bool {
	return c != nil && c.ClientID != "" && c.ClientSecret != ""
}

// RequireSpotifyCredentials fails for operations that must reach the catalog
func RequireSpotifyCredentials(creds *SpotifyCredentials) error {
	if !creds.Configured() {
		return apperrors.Wrap(apperrors.ErrMissingCredentials, "set SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET in environment or .env file")
	}
	return nil
}

// GetProjectRoot finds the project root directory by looking for go.mod
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod not found)")
}
