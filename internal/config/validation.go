package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "yolo-transcript/internal/app/errors"
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

// ValidateRequired rejects blank values
func ValidateRequired(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s: %w", name, apperrors.ErrMissingConfig)
	}
	return nil
}

// ValidateAPIKey validates API key format
func ValidateAPIKey(apiKey string, keyType string) error {
	if apiKey == "" {
		return fmt.Errorf("%s API key: %w", keyType, apperrors.ErrMissingConfig)
	}
	if len(apiKey) < 16 {
		return fmt.Errorf("invalid %s API key format: too short", keyType)
	}
	return nil
}

// ValidateURL validates URL format
func ValidateURL(url string, name string) error {
	if url == "" {
		return fmt.Errorf("%s URL: %w", name, apperrors.ErrMissingConfig)
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%s URL must start with http:// or https://", name)
	}

	return nil
}

// ValidatePort validates port number
func ValidatePort(port string, name string) error {
	if port == "" {
		return fmt.Errorf("%s port: %w", name, apperrors.ErrMissingConfig)
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%s port invalid", name)
	}

	return nil
}

// ValidateDelays requires a non-empty, strictly increasing schedule
func ValidateDelays(delays []time.Duration) error {
	if len(delays) == 0 {
		return fmt.Errorf("poll delays cannot be empty")
	}
	for i, d := range delays {
		if d <= 0 {
			return fmt.Errorf("poll delay %s must be positive", d)
		}
		if i > 0 && d <= delays[i-1] {
			return fmt.Errorf("poll delays must increase")
		}
	}
	return nil
}
