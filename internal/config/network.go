package config

import (
	"fmt"
	"os"
)

// NetworkConfig holds addresses of the services the recommender talks to
type NetworkConfig struct {
	HTTPPort      string
	RedisAddr     string
	MinioEndpoint string
	DatabaseURL   string
}

// GetNetworkConfig returns network configuration from environment or defaults
func GetNetworkConfig() *NetworkConfig {
	return &NetworkConfig{
		HTTPPort:      getEnvOrDefault("RECSYS_PORT", DefaultHTTPPort),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", DefaultRedisAddr),
		MinioEndpoint: getEnvOrDefault("MINIO_ENDPOINT", "localhost:9000"),
		DatabaseURL:   getEnvOrDefault("DATABASE_URL", ""),
	}
}

// GetPostgresConnectionString constructs the PostgreSQL DSN
func (nc *NetworkConfig) GetPostgresConnectionString() string {
	if nc.DatabaseURL != "" {
		return nc.DatabaseURL
	}

	host := getEnvOrDefault("DB_HOST", "localhost")
	port := getEnvOrDefault("DB_PORT", "5432")
	user := getEnvOrDefault("DB_USER", "postgres")
	password := getEnvOrDefault("DB_PASSWORD", "")
	dbname := getEnvOrDefault("DB_NAME", "recsys")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

// ListenAddr returns the host:port the API server binds to
func (nc *NetworkConfig) ListenAddr(host string) string {
	return fmt.Sprintf("%s:%s", host, nc.HTTPPort)
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
