package googledrive

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	apperrors "yolo-transcript/internal/app/errors"
)

const transcriptMimeType = "text/plain"

// DriveFile is the subset of the Drive file resource we read back
type DriveFile struct {
	ID          string
	Name        string
	WebViewLink string
}

// DriveAPI calls Drive v3 on behalf of a user. Endpoint overrides the API
// base URL and is only set in tests.
type DriveAPI struct {
	Endpoint string
}

func (d DriveAPI) service(ctx context.Context, ts oauth2.TokenSource) (*drive.Service, error) {
	opts := []option.ClientOption{option.WithTokenSource(ts)}
	if d.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(d.Endpoint))
	}
	srv, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, apperrors.Wrap(err, "create drive service")
	}
	return srv, nil
}

// UploadText creates a plain-text file named name in folderID (root when empty)
func (d DriveAPI) UploadText(ctx context.Context, ts oauth2.TokenSource, name, folderID, content string) (*DriveFile, error) {
	srv, err := d.service(ctx, ts)
	if err != nil {
		return nil, err
	}

	file := &drive.File{Name: name, MimeType: transcriptMimeType}
	if folderID != "" {
		file.Parents = []string{folderID}
	}
	created, err := srv.Files.Create(file).
		Media(strings.NewReader(content), googleapi.ContentType(transcriptMimeType+"; charset=UTF-8")).
		Fields("id", "name", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return nil, driveError("upload transcript", err)
	}
	return &DriveFile{ID: created.Id, Name: created.Name, WebViewLink: created.WebViewLink}, nil
}

// AccountEmail returns the email of the authorized Drive user
func (d DriveAPI) AccountEmail(ctx context.Context, ts oauth2.TokenSource) (string, error) {
	srv, err := d.service(ctx, ts)
	if err != nil {
		return "", err
	}
	about, err := srv.About.Get().Fields("user").Context(ctx).Do()
	if err != nil {
		return "", driveError("read drive account", err)
	}
	if about.User == nil {
		return "", apperrors.Wrap(apperrors.ErrResponseInvalid, "drive about has no user")
	}
	return about.User.EmailAddress, nil
}

// driveError maps auth failures to ErrTokenRejected so callers can mark the
// integration as errored.
func driveError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			return apperrors.Wrapf(apperrors.ErrTokenRejected, "%s: drive returned %d: %s", op, apiErr.Code, apiErr.Message)
		}
		return apperrors.Wrapf(apperrors.ErrRequestFailed, "%s: drive returned %d: %s", op, apiErr.Code, apiErr.Message)
	}
	var tokenErr *oauth2.RetrieveError
	if errors.As(err, &tokenErr) {
		return apperrors.Wrapf(apperrors.ErrTokenRejected, "%s: %v", op, err)
	}
	return apperrors.Wrapf(apperrors.ErrRequestFailed, "%s: %v", op, err)
}
