package assemblyai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.assemblyai.com"

// Provider job statuses
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// Config represents configuration for the speech-to-text client
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client talks to the speech-to-text REST API
type Client struct {
	config Config
	client *http.Client
}

// TranscriptParams is the body of a create-transcript request
type TranscriptParams struct {
	AudioURL          string   `json:"audio_url"`
	SpeakerLabels     bool     `json:"speaker_labels,omitempty"`
	WordBoost         []string `json:"word_boost,omitempty"`
	BoostParam        string   `json:"boost_param,omitempty"`
	SentimentAnalysis bool     `json:"sentiment_analysis,omitempty"`
	LanguageDetection bool     `json:"language_detection,omitempty"`
	WebhookURL        string   `json:"webhook_url,omitempty"`
}

// Transcript is a provider transcription job
type Transcript struct {
	ID                       string            `json:"id"`
	Status                   string            `json:"status"`
	AudioURL                 string            `json:"audio_url"`
	Text                     string            `json:"text"`
	AudioDuration            float64           `json:"audio_duration"`
	Confidence               *float64          `json:"confidence"`
	LanguageCode             string            `json:"language_code"`
	Error                    string            `json:"error"`
	Utterances               []Utterance       `json:"utterances"`
	SentimentAnalysisResults []SentimentResult `json:"sentiment_analysis_results"`
}

// Utterance is a speaker turn produced by diarization
type Utterance struct {
	Speaker    string  `json:"speaker"`
	Text       string  `json:"text"`
	Start      int64   `json:"start"`
	End        int64   `json:"end"`
	Confidence float64 `json:"confidence"`
}

// SentimentResult is the sentiment of a single sentence
type SentimentResult struct {
	Text       string  `json:"text"`
	Start      int64   `json:"start"`
	End        int64   `json:"end"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Speaker    string  `json:"speaker,omitempty"`
}

// APIError is returned for non-2xx provider responses
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("speech-to-text API returned %d: %s", e.StatusCode, e.Message)
}

// Retryable reports whether the request may succeed if repeated
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// NewClient creates a new speech-to-text client
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Upload streams media to the provider and returns a private URL for it
func (c *Client) Upload(ctx context.Context, r io.Reader) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v2/upload", r)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	var out struct {
		UploadURL string `json:"upload_url"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	if out.UploadURL == "" {
		return "", fmt.Errorf("upload response missing upload_url")
	}
	return out.UploadURL, nil
}

// CreateTranscript submits a new transcription job
func (c *Client) CreateTranscript(ctx context.Context, params TranscriptParams) (*Transcript, error) {
	if params.AudioURL == "" {
		return nil, fmt.Errorf("audio_url is required")
	}
	if len(params.WordBoost) > 0 && params.BoostParam == "" {
		params.BoostParam = "high"
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transcript params: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/v2/transcript", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var transcript Transcript
	if err := c.do(req, &transcript); err != nil {
		return nil, err
	}
	return &transcript, nil
}

// GetTranscript fetches the current state of a job
func (c *Client) GetTranscript(ctx context.Context, id string) (*Transcript, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v2/transcript/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var transcript Transcript
	if err := c.do(req, &transcript); err != nil {
		return nil, err
	}
	return &transcript, nil
}

// GetUtterances returns the speaker turns of a completed job
func (c *Client) GetUtterances(ctx context.Context, id string) ([]Utterance, error) {
	t, err := c.GetTranscript(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Utterances == nil {
		return []Utterance{}, nil
	}
	return t.Utterances, nil
}

// GetSentiment returns the sentence-level sentiment of a completed job
func (c *Client) GetSentiment(ctx context.Context, id string) ([]SentimentResult, error) {
	t, err := c.GetTranscript(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.SentimentAnalysisResults == nil {
		return []SentimentResult{}, nil
	}
	return t.SentimentAnalysisResults, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.config.APIKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call speech-to-text API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error string `json:"error"`
		}
		msg := strings.TrimSpace(string(body))
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			msg = errResp.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
