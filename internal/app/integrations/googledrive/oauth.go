package googledrive

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes requested on the consent screen. drive.file only grants access
// to files the app itself creates.
var Scopes = []string{
	"https://www.googleapis.com/auth/drive.file",
	"https://www.googleapis.com/auth/userinfo.email",
}

// OAuthConfig holds the Google OAuth client credentials
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether credentials are configured
func (c OAuthConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// NewOAuth2Config builds the oauth2 config for Google
func NewOAuth2Config(c OAuthConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Scopes:       Scopes,
		Endpoint:     google.Endpoint,
	}
}
