package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

const ProviderGoogleDrive = "google-drive"

// IntegrationStatus is the connection state of an integration
type IntegrationStatus string

const (
	IntegrationConnected    IntegrationStatus = "connected"
	IntegrationDisconnected IntegrationStatus = "disconnected"
	IntegrationError        IntegrationStatus = "error"
)

// Integration is a connected cloud-storage account
type Integration struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	Provider  string              `json:"provider"`
	Status    IntegrationStatus   `json:"status"`
	Settings  IntegrationSettings `json:"settings"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// IntegrationID builds the "<provider>-<user_id>" key
func IntegrationID(provider, userID string) string {
	return provider + "-" + userID
}

// IntegrationSettings holds OAuth tokens and sync preferences
type IntegrationSettings struct {
	AccessToken  string    `json:"access_token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
	AutoSync     bool      `json:"auto_sync"`
	FolderID     string    `json:"folder_id,omitempty"`
	AccountEmail string    `json:"account_email,omitempty"`
	LastSyncAt   time.Time `json:"last_sync_at,omitempty"`
}

// Value implements driver.Valuer
func (s IntegrationSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *IntegrationSettings) Scan(src interface{}) error {
	return scanJSON(src, s)
}
