package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	apperrors "yolo-transcript/internal/app/errors"
)

// envPaths are searched in order; the first file found is loaded
var envPaths = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// LoadEnv loads environment variables from the first .env file found.
// Variables already set in the process environment win. It returns the
// loaded path, or "" when no file exists.
func LoadEnv() (string, error) {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return "", fmt.Errorf("error loading %s file: %w", envPath, err)
		}
		return envPath, nil
	}
	return "", nil
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

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// envReader accumulates parse errors so Load can report them all at once
type envReader struct {
	errs []string
}

func (r *envReader) string(key, def string) string {
	return getEnvOrDefault(key, def)
}

func (r *envReader) int(key string, def int) int {
	raw := getEnvOrDefault(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: %q is not an integer", key, raw))
		return def
	}
	return v
}

func (r *envReader) bool(key string, def bool) bool {
	raw := getEnvOrDefault(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: %q is not a boolean", key, raw))
		return def
	}
	return v
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	raw := getEnvOrDefault(key, "")
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Sprintf("%s: %q is not a duration", key, raw))
		return def
	}
	return v
}

func (r *envReader) durations(key string, def []time.Duration) []time.Duration {
	raw := getEnvOrDefault(key, "")
	if raw == "" {
		return def
	}
	var out []time.Duration
	for _, part := range r.list(key) {
		d, err := time.ParseDuration(part)
		if err != nil {
			r.errs = append(r.errs, fmt.Sprintf("%s: %q is not a duration", key, part))
			return def
		}
		out = append(out, d)
	}
	return out
}

// list splits a comma separated variable, dropping blanks
func (r *envReader) list(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnvOrDefault(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (r *envReader) err() error {
	if len(r.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", apperrors.ErrInvalidConfig, strings.Join(r.errs, "; "))
}
