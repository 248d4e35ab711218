package config

import (
	"fmt"
	"strings"
	"time"
)

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidateRateLimit validates a requests-per-second limit and its burst
func ValidateRateLimit(rps float64, burst int, name string) error {
	if rps <= 0 {
		return fmt.Errorf("%s rate limit must be positive", name)
	}
	if burst < 1 {
		return fmt.Errorf("%s burst must be at least 1", name)
	}
	return nil
}

// ValidateURL validates URL format
func ValidateURL(url string, name string) error {
	if url == "" {
		return fmt.Errorf("%s URL is required", name)
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%s URL must start with http:// or https://", name)
	}

	return nil
}

// ValidatePort validates port number
func ValidatePort(port int, name string) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s port invalid: %d", name, port)
	}
	return nil
}

// ValidateK validates a recommendation count bound
func ValidateK(k, maxK int) error {
	if k < 1 {
		return fmt.Errorf("k must be at least 1")
	}
	if k > maxK {
		return fmt.Errorf("k too high (max %d)", maxK)
	}
	return nil
}
