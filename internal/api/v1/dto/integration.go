package dto

import (
	"time"

	"github.com/samber/lo"

	"yolo-transcript/internal/app/model"
)

// IntegrationResponse describes a connected account without its tokens
type IntegrationResponse struct {
	ID           string                  `json:"id"`
	Provider     string                  `json:"provider"`
	Status       model.IntegrationStatus `json:"status"`
	Connected    bool                    `json:"connected"`
	AutoSync     bool                    `json:"auto_sync"`
	FolderID     string                  `json:"folder_id,omitempty"`
	AccountEmail string                  `json:"account_email,omitempty"`
	LastSyncAt   *time.Time              `json:"last_sync_at,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// ToIntegrationResponse converts a model to response DTO
func ToIntegrationResponse(i *model.Integration) IntegrationResponse {
	resp := IntegrationResponse{
		ID:           i.ID,
		Provider:     i.Provider,
		Status:       i.Status,
		Connected:    i.Status == model.IntegrationConnected,
		AutoSync:     i.Settings.AutoSync,
		FolderID:     i.Settings.FolderID,
		AccountEmail: i.Settings.AccountEmail,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
	if !i.Settings.LastSyncAt.IsZero() {
		last := i.Settings.LastSyncAt
		resp.LastSyncAt = &last
	}
	return resp
}

// ToIntegrationResponses converts a list of integrations
func ToIntegrationResponses(is []model.Integration) []IntegrationResponse {
	return lo.Map(is, func(i model.Integration, _ int) IntegrationResponse {
		return ToIntegrationResponse(&i)
	})
}

// ConnectResponse carries the OAuth consent URL
type ConnectResponse struct {
	URL string `json:"url"`
}

// OAuthCallbackQuery is the redirect from the consent screen
type OAuthCallbackQuery struct {
	Code  string `form:"code"`
	State string `form:"state"`
	Error string `form:"error"`
}

// DriveSettingsRequest updates Google Drive sync preferences
type DriveSettingsRequest struct {
	AutoSync bool   `json:"auto_sync"`
	FolderID string `json:"folder_id" binding:"max=200"`
}

// DriveSyncResponse reports a manual sync
type DriveSyncResponse struct {
	DriveFileID string `json:"drive_file_id"`
	Name        string `json:"name"`
	WebViewLink string `json:"web_view_link,omitempty"`
}
