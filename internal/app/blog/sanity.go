package blog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "yolo-transcript/internal/app/errors"
)

// SanityConfig locates a CMS dataset
type SanityConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	// BaseURL overrides https://<project>.apicdn.sanity.io
	BaseURL string
	Timeout time.Duration
}

// Enabled reports whether a project is configured
func (c SanityConfig) Enabled() bool {
	return c.ProjectID != "" || c.BaseURL != ""
}

// SanityClient runs GROQ queries over HTTP
type SanityClient struct {
	config SanityConfig
	client *http.Client
}

// NewSanityClient creates a CMS client
func NewSanityClient(config SanityConfig) *SanityClient {
	if config.Dataset == "" {
		config.Dataset = "production"
	}
	if config.APIVersion == "" {
		config.APIVersion = "v2023-05-03"
	}
	if config.BaseURL == "" {
		config.BaseURL = fmt.Sprintf("https://%s.apicdn.sanity.io", config.ProjectID)
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	return &SanityClient{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Query runs a GROQ query and decodes its result into out. String params
// are bound as $name.
func (c *SanityClient) Query(ctx context.Context, groq string, params map[string]string, out interface{}) error {
	q := url.Values{}
	q.Set("query", groq)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return apperrors.Wrapf(err, "encode param %s", name)
		}
		q.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/%s/data/query/%s?%s",
		strings.TrimRight(c.config.BaseURL, "/"), c.config.APIVersion, url.PathEscape(c.config.Dataset), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperrors.Wrap(err, "create cms request")
	}
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrRequestFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return apperrors.Wrapf(apperrors.ErrRequestFailed, "cms returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return apperrors.Wrap(apperrors.ErrResponseInvalid, err.Error())
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return apperrors.ErrNotFound
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return apperrors.Wrap(apperrors.ErrResponseInvalid, err.Error())
	}
	return nil
}
