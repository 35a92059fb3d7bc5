package services

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	"yolo-transcript/internal/api/errors"
	"yolo-transcript/internal/api/v1/dto"
	apperrors "yolo-transcript/internal/app/errors"
	"yolo-transcript/internal/app/integrations/googledrive"
	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
)

// DriveIntegration is the Google Drive flow used by the service
type DriveIntegration interface {
	AuthURL(ctx context.Context, userID string) (string, error)
	Complete(ctx context.Context, code, state string) (*model.Integration, error)
	UpdateSettings(ctx context.Context, userID string, autoSync bool, folderID string) (*model.Integration, error)
	Disconnect(ctx context.Context, userID string) error
	Sync(ctx context.Context, t *model.Transcription) (*googledrive.DriveFile, error)
}

// IntegrationServiceImpl implements IntegrationService
type IntegrationServiceImpl struct {
	store  repository.Store
	drive  DriveIntegration
	logger *zap.Logger
}

// NewIntegrationService creates a new integration service. drive may be
// nil when OAuth credentials are not configured.
func NewIntegrationService(store repository.Store, drive DriveIntegration, logger *zap.Logger) *IntegrationServiceImpl {
	return &IntegrationServiceImpl{store: store, drive: drive, logger: logger}
}

// ListIntegrations lists the user's connected accounts
func (s *IntegrationServiceImpl) ListIntegrations(ctx context.Context, userID string) ([]dto.IntegrationResponse, error) {
	is, err := s.store.ListIntegrations(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list integrations")
	}
	return dto.ToIntegrationResponses(is), nil
}

// Disconnect forgets the credentials of a provider
func (s *IntegrationServiceImpl) Disconnect(ctx context.Context, userID, provider string) error {
	if provider != model.ProviderGoogleDrive {
		return errors.NewNotFoundError("Integration provider")
	}
	if err := s.requireDrive(); err != nil {
		return err
	}
	return mapIntegrationError(s.drive.Disconnect(ctx, userID))
}

// ConnectDrive returns the Google consent URL
func (s *IntegrationServiceImpl) ConnectDrive(ctx context.Context, userID string) (*dto.ConnectResponse, error) {
	if err := s.requireDrive(); err != nil {
		return nil, err
	}
	authURL, err := s.drive.AuthURL(ctx, userID)
	if err != nil {
		s.logger.Error("failed to start oauth flow", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.NewInternalError("Failed to start authorization")
	}
	return &dto.ConnectResponse{URL: authURL}, nil
}

// CompleteDrive finishes the OAuth flow. Unknown states are forbidden.
func (s *IntegrationServiceImpl) CompleteDrive(ctx context.Context, query dto.OAuthCallbackQuery) (*dto.IntegrationResponse, error) {
	if err := s.requireDrive(); err != nil {
		return nil, err
	}
	if query.Error != "" {
		return nil, errors.NewBadRequestError("Authorization denied: " + query.Error)
	}
	integration, err := s.drive.Complete(ctx, query.Code, query.State)
	if err != nil {
		return nil, mapIntegrationError(err)
	}
	resp := dto.ToIntegrationResponse(integration)
	return &resp, nil
}

// UpdateDriveSettings changes sync preferences
func (s *IntegrationServiceImpl) UpdateDriveSettings(ctx context.Context, userID string, req *dto.DriveSettingsRequest) (*dto.IntegrationResponse, error) {
	if err := s.requireDrive(); err != nil {
		return nil, err
	}
	integration, err := s.drive.UpdateSettings(ctx, userID, req.AutoSync, req.FolderID)
	if err != nil {
		return nil, mapIntegrationError(err)
	}
	resp := dto.ToIntegrationResponse(integration)
	return &resp, nil
}

// SyncTranscription uploads a completed transcript to Drive on demand
func (s *IntegrationServiceImpl) SyncTranscription(ctx context.Context, userID, transcriptionID string) (*dto.DriveSyncResponse, error) {
	if err := s.requireDrive(); err != nil {
		return nil, err
	}
	t, err := s.store.GetTranscriptionForUser(ctx, transcriptionID, userID)
	if stderrors.Is(err, apperrors.ErrNotFound) {
		return nil, errors.NewNotFoundError("Transcription")
	}
	if err != nil {
		return nil, errors.NewInternalError("Failed to retrieve transcription")
	}
	if t.Status != model.StatusCompleted {
		return nil, errors.NewConflictError("Transcription is not completed")
	}

	file, err := s.drive.Sync(ctx, t)
	if err != nil {
		return nil, mapIntegrationError(err)
	}
	return &dto.DriveSyncResponse{DriveFileID: file.ID, Name: file.Name, WebViewLink: file.WebViewLink}, nil
}

func (s *IntegrationServiceImpl) requireDrive() error {
	if s.drive == nil {
		return errors.NewServiceUnavailableError("Google Drive integration is not configured")
	}
	return nil
}

func mapIntegrationError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, apperrors.ErrNotFound), stderrors.Is(err, apperrors.ErrNotConnected):
		return errors.NewNotFoundError("Google Drive integration")
	case stderrors.Is(err, apperrors.ErrUnknownState):
		return errors.NewForbiddenError("Invalid or expired OAuth state")
	case stderrors.Is(err, apperrors.ErrTokenRejected):
		return errors.NewBadRequestError("Google rejected the authorization, reconnect Google Drive")
	case stderrors.Is(err, apperrors.ErrRequestFailed):
		return errors.NewServiceUnavailableError("Google Drive is unavailable")
	default:
		var apiErr *errors.APIError
		if stderrors.As(err, &apiErr) {
			return apiErr
		}
		return errors.NewInternalError("Integration request failed")
	}
}
