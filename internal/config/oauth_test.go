package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validOAuthJSON = `{
  "installed": {
    "client_id": "test-client-id.apps.googleusercontent.com",
    "project_id": "test-project",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
    "client_secret": "test-secret",
    "redirect_uris": ["http://localhost"]
  }
}`

func validOAuthClient() *OAuthClientConfig {
	return &OAuthClientConfig{
		Installed: OAuthInstalled{
			ClientID:                "test-client-id.apps.googleusercontent.com",
			ProjectID:               "test-project",
			AuthURI:                 "https://accounts.google.com/o/oauth2/auth",
			TokenURI:                "https://oauth2.googleapis.com/token",
			AuthProviderX509CertURL: "https://www.googleapis.com/oauth2/v1/certs",
			ClientSecret:            "test-secret",
			RedirectURIs:            []string{"http://localhost"},
		},
	}
}

func TestValidateOAuthClient(t *testing.T) {
	assert.NoError(t, ValidateOAuthClient(validOAuthClient()))

	tests := []struct {
		name   string
		mutate func(c *OAuthInstalled)
	}{
		{name: "missing client id", mutate: func(c *OAuthInstalled) { c.ClientID = "" }},
		{name: "invalid auth uri", mutate: func(c *OAuthInstalled) { c.AuthURI = "not-a-valid-url" }},
		{name: "no redirect uris", mutate: func(c *OAuthInstalled) { c.RedirectURIs = []string{} }},
		{name: "invalid redirect uri", mutate: func(c *OAuthInstalled) { c.RedirectURIs = []string{"not a valid uri"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validOAuthClient()
			tt.mutate(&cfg.Installed)

			err := ValidateOAuthClient(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestLoadOAuthClientFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oauthClient.json")
	require.NoError(t, os.WriteFile(path, []byte(validOAuthJSON), 0644))

	cfg, err := LoadOAuthClientFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, validOAuthClient(), cfg)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{"installed": {"client_id": "x" "project_id": "y"}}`), 0644))
	_, err = LoadOAuthClientFromPath(badPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse oauth client file")

	_, err = LoadOAuthClientFromPath(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read oauth client file")
}

func TestLoadOAuthClientWithEnv_FileVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(validOAuthJSON), 0644))
	t.Setenv(OAuthClientFileEnv, path)

	cfg, err := LoadOAuthClientWithEnv("prod")
	require.NoError(t, err)
	assert.Equal(t, "test-project", cfg.Installed.ProjectID)
}

func TestLoadOAuthClientWithEnv_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	t.Setenv(OAuthClientFileEnv, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "oauthClient.test.json"), []byte(validOAuthJSON), 0644))

	cfg, err := LoadOAuthClientWithEnv("test")
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Installed.ClientSecret)
}
