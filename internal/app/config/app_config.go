package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "track-recommender/internal/app/errors"
	envconfig "track-recommender/internal/config"
)

// AppConfig represents the recommender service configuration file
type AppConfig struct {
	Database    DatabaseConfig    `yaml:"database"`
	Server      ServerConfig      `yaml:"server"`
	Spotify     SpotifyConfig     `yaml:"spotify"`
	Recommender RecommenderConfig `yaml:"recommender"`
	Cache       CacheConfig       `yaml:"cache,omitempty"`
	Storage     StorageConfig     `yaml:"storage,omitempty"`
}

// DatabaseConfig selects the catalog store
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout,omitempty"`
	WriteTimeout time.Duration `yaml:"write_timeout,omitempty"`
	Environment  string        `yaml:"environment,omitempty"`
}

// SpotifyConfig configures the catalog client
type SpotifyConfig struct {
	BaseURL   string        `yaml:"base_url,omitempty"`
	TokenURL  string        `yaml:"token_url,omitempty"`
	// Market narrows search results; empty searches every market
	Market    string        `yaml:"market,omitempty"`
	Timeout   time.Duration `yaml:"timeout,omitempty"`
	RateLimit float64       `yaml:"rate_limit,omitempty"`
	Burst     int           `yaml:"burst,omitempty"`
}

// RecommenderConfig bounds the recommendation count
type RecommenderConfig struct {
	DefaultK int `yaml:"default_k"`
	MaxK     int `yaml:"max_k"`
}

// CacheConfig configures the redis result cache
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr,omitempty"`
	Password string        `yaml:"password,omitempty"`
	DB       int           `yaml:"db,omitempty"`
	TTL      time.Duration `yaml:"ttl,omitempty"`
}

// StorageConfig configures the MinIO bucket exports are uploaded to
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint,omitempty"`
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
	Bucket    string `yaml:"bucket,omitempty"`
	UseSSL    bool   `yaml:"use_ssl,omitempty"`
}

// LoadAppConfig loads configuration from a YAML file, applying environment
// overrides and defaults
func LoadAppConfig(configPath string) (*AppConfig, error) {
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config AppConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.finish(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadOrDefault loads configPath when it exists and falls back to defaults otherwise
func LoadOrDefault(configPath string) (*AppConfig, error) {
	if configPath != "" {
		if _, err := os.Stat(os.ExpandEnv(configPath)); err == nil {
			return LoadAppConfig(configPath)
		}
	}

	config := DefaultAppConfig()
	if err := config.finish(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *AppConfig) finish() error {
	c.expandEnvironmentVariables()
	c.applyEnvOverrides()
	c.setDefaults()

	return c.Validate()
}

// SaveAppConfig saves configuration to a YAML file
func SaveAppConfig(config *AppConfig, configPath string) error {
	configPath = os.ExpandEnv(configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// expandEnvironmentVariables replaces ${VAR} values with the variable's content
func (c *AppConfig) expandEnvironmentVariables() {
	for _, field := range []*string{
		&c.Database.DSN,
		&c.Cache.Addr,
		&c.Cache.Password,
		&c.Storage.Endpoint,
		&c.Storage.AccessKey,
		&c.Storage.SecretKey,
	} {
		value := strings.TrimSpace(*field)
		if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
			envVar := strings.TrimSuffix(strings.TrimPrefix(value, "${"), "}")
			*field = os.Getenv(envVar)
		}
	}
}

func (c *AppConfig) applyEnvOverrides() {
	if v := os.Getenv("RECSYS_DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("RECSYS_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("RECSYS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Addr = v
		c.Cache.Enabled = true
	}
}

// setDefaults sets default values for the configuration
func (c *AppConfig) setDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite3"
	}
	if c.Database.DSN == "" && c.Database.Driver == "sqlite3" {
		c.Database.DSN = envconfig.DefaultSQLitePath
	}

	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port, _ = strconv.Atoi(envconfig.DefaultHTTPPort)
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = envconfig.DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = envconfig.DefaultWriteTimeout
	}
	if c.Server.Environment == "" {
		c.Server.Environment = "development"
	}

	if c.Spotify.BaseURL == "" {
		c.Spotify.BaseURL = envconfig.DefaultSpotifyAPIURL
	}
	if c.Spotify.TokenURL == "" {
		c.Spotify.TokenURL = envconfig.DefaultSpotifyTokenURL
	}
	if c.Spotify.Timeout == 0 {
		c.Spotify.Timeout = envconfig.DefaultSpotifyTimeout
	}
	if c.Spotify.RateLimit == 0 {
		c.Spotify.RateLimit = envconfig.DefaultSpotifyRateLimit
	}
	if c.Spotify.Burst == 0 {
		c.Spotify.Burst = envconfig.DefaultSpotifyBurst
	}

	if c.Recommender.DefaultK == 0 {
		c.Recommender.DefaultK = envconfig.DefaultK
	}
	if c.Recommender.MaxK == 0 {
		c.Recommender.MaxK = envconfig.MaxK
	}

	if c.Cache.Addr == "" {
		c.Cache.Addr = envconfig.DefaultRedisAddr
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = envconfig.DefaultCacheTTL
	}

	if c.Storage.Bucket == "" {
		c.Storage.Bucket = envconfig.DefaultBucket
	}
}

// Validate validates the configuration. Failures match apperrors.ErrInvalidConfig.
func (c *AppConfig) Validate() error {
	return apperrors.WrapAs(c.validate(), apperrors.ErrInvalidConfig, "app config")
}

func (c *AppConfig) validate() error {
	switch c.Database.Driver {
	case "sqlite3":
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database dsn is required for postgres")
		}
	default:
		return fmt.Errorf("unsupported database driver '%s'", c.Database.Driver)
	}

	if err := envconfig.ValidatePort(c.Server.Port, "server"); err != nil {
		return err
	}
	if err := envconfig.ValidateTimeout(c.Spotify.Timeout, "spotify"); err != nil {
		return err
	}
	if err := envconfig.ValidateRateLimit(c.Spotify.RateLimit, c.Spotify.Burst, "spotify"); err != nil {
		return err
	}
	if err := envconfig.ValidateURL(c.Spotify.BaseURL, "spotify api"); err != nil {
		return err
	}
	if err := envconfig.ValidateURL(c.Spotify.TokenURL, "spotify token"); err != nil {
		return err
	}

	if c.Recommender.MaxK < 1 {
		return fmt.Errorf("recommender max_k must be positive")
	}
	if err := envconfig.ValidateK(c.Recommender.DefaultK, c.Recommender.MaxK); err != nil {
		return fmt.Errorf("recommender default_k: %w", err)
	}

	if c.Cache.Enabled && c.Cache.TTL < time.Second {
		return fmt.Errorf("cache ttl must be at least one second")
	}

	return nil
}

// ListenAddr returns the address the API server binds to
func (c *AppConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// IsProduction reports whether the server runs in production mode
func (c *AppConfig) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	if path := os.Getenv("RECSYS_CONFIG_PATH"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "recsys.yaml"
	}

	return filepath.Join(home, ".recsys", "config.yaml")
}

// DefaultAppConfig returns the configuration used when no file is present
func DefaultAppConfig() *AppConfig {
	config := &AppConfig{
		Database: DatabaseConfig{
			Driver: "sqlite3",
			DSN:    envconfig.DefaultSQLitePath,
		},
		Cache: CacheConfig{
			Enabled: false,
		},
		Storage: StorageConfig{
			Endpoint:  "${MINIO_ENDPOINT}",
			AccessKey: "${MINIO_ACCESS_KEY}",
			SecretKey: "${MINIO_SECRET_KEY}",
		},
	}
	config.setDefaults()
	return config
}
