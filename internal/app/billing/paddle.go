package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "yolo-transcript/internal/app/errors"
)

const (
	DefaultPaddleBaseURL = "https://api.paddle.com"
	SandboxPaddleBaseURL = "https://sandbox-api.paddle.com"

	EventTransactionCompleted = "transaction.completed"
)

// Event is the envelope of a payment provider webhook
type Event struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

// Transaction is the subset of a payment provider transaction the service uses
type Transaction struct {
	ID         string            `json:"id"`
	Status     string            `json:"status"`
	CustomerID string            `json:"customer_id"`
	Currency   string            `json:"currency_code"`
	Items      []TransactionItem `json:"items"`
	Details    struct {
		Totals struct {
			Total string `json:"total"`
		} `json:"totals"`
	} `json:"details"`
	CustomData map[string]interface{} `json:"custom_data"`
}

// TransactionItem is a purchased price and quantity
type TransactionItem struct {
	Price struct {
		ID string `json:"id"`
	} `json:"price"`
	Quantity int `json:"quantity"`
}

// Customer is a payment provider customer
type Customer struct {
	ID         string                 `json:"id"`
	Email      string                 `json:"email"`
	Name       string                 `json:"name"`
	CustomData map[string]interface{} `json:"custom_data"`
}

// TotalMinor parses the transaction total in minor currency units
func (t *Transaction) TotalMinor() int64 {
	total, err := strconv.ParseInt(t.Details.Totals.Total, 10, 64)
	if err != nil {
		return 0
	}
	return total
}

// CustomString reads a string value from custom_data
func (t *Transaction) CustomString(key string) string {
	return customString(t.CustomData, key)
}

// CustomInt reads an integer value from custom_data, accepting JSON numbers or strings
func (t *Transaction) CustomInt(key string) (int, bool) {
	switch v := t.CustomData[key].(type) {
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}

func customString(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// PaddleClient calls the payment provider REST API
type PaddleClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewPaddleClient creates a client; an empty baseURL uses the production API
func NewPaddleClient(baseURL, apiKey string, httpClient *http.Client) *PaddleClient {
	if baseURL == "" {
		baseURL = DefaultPaddleBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &PaddleClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// GetTransaction fetches a transaction by id
func (c *PaddleClient) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	var tx Transaction
	if err := c.get(ctx, "/transactions/"+url.PathEscape(id), &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetCustomer fetches a customer by id
func (c *PaddleClient) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	var customer Customer
	if err := c.get(ctx, "/customers/"+url.PathEscape(id), &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *PaddleClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrRequestFailed, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apperrors.Wrap(err, "read payment provider response")
	}
	if resp.StatusCode != http.StatusOK {
		return apperrors.Wrapf(apperrors.ErrRequestFailed, "payment provider %s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apperrors.Wrap(apperrors.ErrResponseInvalid, err.Error())
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return apperrors.Wrap(apperrors.ErrResponseInvalid, fmt.Sprintf("decode %s: %v", path, err))
	}
	return nil
}
