package googledrive

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	apperrors "yolo-transcript/internal/app/errors"
	"yolo-transcript/internal/app/metrics"
	"yolo-transcript/internal/app/model"
	"yolo-transcript/internal/app/repository"
)

// Service runs the Google Drive OAuth flow and syncs transcripts
type Service struct {
	oauth          *oauth2.Config
	states         *StateStore
	integrations   repository.IntegrationDAO
	transcriptions repository.TranscriptionDAO
	drive          DriveAPI
	logger         *zap.Logger
	metrics        *metrics.Metrics
	now            func() time.Time
}

// NewService creates a Drive integration service
func NewService(oauth *oauth2.Config, states *StateStore, integrations repository.IntegrationDAO, transcriptions repository.TranscriptionDAO, drive DriveAPI, logger *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{
		oauth:          oauth,
		states:         states,
		integrations:   integrations,
		transcriptions: transcriptions,
		drive:          drive,
		logger:         logger,
		metrics:        m,
		now:            time.Now,
	}
}

// AuthURL starts the consent flow for userID
func (s *Service) AuthURL(ctx context.Context, userID string) (string, error) {
	state, err := s.states.Issue(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

// Complete exchanges the authorization code for tokens and stores the
// connected integration. Unknown states return errors.ErrUnknownState.
func (s *Service) Complete(ctx context.Context, code, state string) (*model.Integration, error) {
	userID, err := s.states.Consume(ctx, state)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, apperrors.Wrap(apperrors.ErrTokenRejected, "authorization code missing")
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrTokenRejected, err.Error())
	}

	settings := model.IntegrationSettings{}
	existing, err := s.integrations.GetIntegration(ctx, userID, model.ProviderGoogleDrive)
	switch {
	case err == nil:
		settings = existing.Settings
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}
	// Google only returns a refresh token on the first consent, so an
	// existing one is kept when the exchange omits it.
	applyToken(&settings, token)

	if email, err := s.drive.AccountEmail(ctx, s.oauth.TokenSource(ctx, token)); err != nil {
		s.logger.Warn("fetch drive account email", zap.String("user_id", userID), zap.Error(err))
	} else {
		settings.AccountEmail = email
	}

	integration := &model.Integration{
		ID:       model.IntegrationID(model.ProviderGoogleDrive, userID),
		UserID:   userID,
		Provider: model.ProviderGoogleDrive,
		Status:   model.IntegrationConnected,
		Settings: settings,
	}
	if err := s.integrations.UpsertIntegration(ctx, integration); err != nil {
		return nil, err
	}
	s.logger.Info("google drive connected", zap.String("user_id", userID))
	return integration, nil
}

// UpdateSettings changes the sync preferences of a connected account
func (s *Service) UpdateSettings(ctx context.Context, userID string, autoSync bool, folderID string) (*model.Integration, error) {
	integration, err := s.integrations.GetIntegration(ctx, userID, model.ProviderGoogleDrive)
	if err != nil {
		return nil, err
	}
	integration.Settings.AutoSync = autoSync
	integration.Settings.FolderID = strings.TrimSpace(folderID)
	if err := s.integrations.UpdateIntegrationSettings(ctx, integration.ID, integration.Settings); err != nil {
		return nil, err
	}
	return integration, nil
}

// Disconnect forgets the tokens and marks the account disconnected
func (s *Service) Disconnect(ctx context.Context, userID string) error {
	integration, err := s.integrations.GetIntegration(ctx, userID, model.ProviderGoogleDrive)
	if err != nil {
		return err
	}
	integration.Settings.AccessToken = ""
	integration.Settings.RefreshToken = ""
	integration.Settings.Expiry = time.Time{}
	if err := s.integrations.UpdateIntegrationSettings(ctx, integration.ID, integration.Settings); err != nil {
		return err
	}
	return s.integrations.SetIntegrationStatus(ctx, integration.ID, model.IntegrationDisconnected)
}

// SyncHook returns a completion hook that uploads finished transcripts
// when the job asked for it or the account has auto sync enabled.
func (s *Service) SyncHook() func(ctx context.Context, t *model.Transcription) {
	return func(ctx context.Context, t *model.Transcription) {
		if t.Metadata.DriveFileID != "" {
			return
		}
		integration, err := s.integrations.GetIntegration(ctx, t.UserID, model.ProviderGoogleDrive)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.logger.Warn("load drive integration", zap.String("user_id", t.UserID), zap.Error(err))
			}
			return
		}
		if !t.Metadata.SyncToDrive && !integration.Settings.AutoSync {
			return
		}
		if _, err := s.sync(ctx, integration, t); err != nil {
			s.logger.Warn("drive sync failed",
				zap.String("transcription_id", t.ID),
				zap.String("user_id", t.UserID),
				zap.Error(err))
		}
	}
}

// Sync uploads the transcript text of t to the owner's Drive
func (s *Service) Sync(ctx context.Context, t *model.Transcription) (*DriveFile, error) {
	integration, err := s.integrations.GetIntegration(ctx, t.UserID, model.ProviderGoogleDrive)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrNotConnected
	}
	if err != nil {
		return nil, err
	}
	return s.sync(ctx, integration, t)
}

func (s *Service) sync(ctx context.Context, integration *model.Integration, t *model.Transcription) (*DriveFile, error) {
	if integration.Status != model.IntegrationConnected || (integration.Settings.RefreshToken == "" && integration.Settings.AccessToken == "") {
		return nil, apperrors.ErrNotConnected
	}

	token, err := s.freshToken(ctx, integration)
	if err != nil {
		s.metrics.DriveSync("token_rejected")
		if statusErr := s.integrations.SetIntegrationStatus(ctx, integration.ID, model.IntegrationError); statusErr != nil {
			s.logger.Warn("mark integration errored", zap.String("integration_id", integration.ID), zap.Error(statusErr))
		}
		s.recordSyncError(ctx, t, err)
		return nil, err
	}

	file, err := s.drive.UploadText(ctx, oauth2.StaticTokenSource(token), TranscriptFileName(t.FileName), integration.Settings.FolderID, t.TranscriptionText)
	if err != nil {
		s.metrics.DriveSync("failed")
		s.recordSyncError(ctx, t, err)
		return nil, err
	}

	metadata := t.Metadata
	metadata.DriveFileID = file.ID
	metadata.DriveSyncError = ""
	if err := s.transcriptions.UpdateMetadata(ctx, t.ID, metadata); err != nil {
		return nil, err
	}
	t.Metadata = metadata

	integration.Settings.LastSyncAt = s.now().UTC()
	applyToken(&integration.Settings, token)
	if err := s.integrations.UpdateIntegrationSettings(ctx, integration.ID, integration.Settings); err != nil {
		s.logger.Warn("persist drive sync time", zap.String("integration_id", integration.ID), zap.Error(err))
	}

	s.metrics.DriveSync("synced")
	s.logger.Info("transcript synced to drive",
		zap.String("transcription_id", t.ID),
		zap.String("drive_file_id", file.ID))
	return file, nil
}

// freshToken returns a valid access token, refreshing and persisting it
// when the stored one has expired.
func (s *Service) freshToken(ctx context.Context, integration *model.Integration) (*oauth2.Token, error) {
	stored := &oauth2.Token{
		AccessToken:  integration.Settings.AccessToken,
		RefreshToken: integration.Settings.RefreshToken,
		TokenType:    integration.Settings.TokenType,
		Expiry:       integration.Settings.Expiry,
	}
	token, err := s.oauth.TokenSource(ctx, stored).Token()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrTokenRejected, err.Error())
	}
	if token.AccessToken != stored.AccessToken {
		applyToken(&integration.Settings, token)
		if err := s.integrations.UpdateIntegrationSettings(ctx, integration.ID, integration.Settings); err != nil {
			return nil, err
		}
		s.logger.Debug("refreshed drive token", zap.String("integration_id", integration.ID))
	}
	return token, nil
}

func (s *Service) recordSyncError(ctx context.Context, t *model.Transcription, cause error) {
	metadata := t.Metadata
	metadata.DriveSyncError = cause.Error()
	if err := s.transcriptions.UpdateMetadata(ctx, t.ID, metadata); err != nil {
		s.logger.Warn("record drive sync error", zap.String("transcription_id", t.ID), zap.Error(err))
		return
	}
	t.Metadata = metadata
}

func applyToken(settings *model.IntegrationSettings, token *oauth2.Token) {
	settings.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		settings.RefreshToken = token.RefreshToken
	}
	settings.TokenType = token.TokenType
	settings.Expiry = token.Expiry
}

// TranscriptFileName names the Drive file "<file_name>.txt"
func TranscriptFileName(fileName string) string {
	base := path.Base(strings.TrimSpace(fileName))
	if base == "" || base == "." || base == "/" {
		base = "transcript"
	}
	return base + ".txt"
}
