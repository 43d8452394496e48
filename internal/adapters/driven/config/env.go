// Package config loads Google Ads credentials from the environment.
// A .env file in the working directory is supported, mirroring the
// GOOGLE_ADS_* variables the Ads client libraries conventionally use.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/Meganathan02/seo-keyword-code/internal/adapters/driven/googleads"
	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
	"github.com/Meganathan02/seo-keyword-code/internal/logger"
)

// Environment variable names for Ads API credentials.
const (
	EnvClientID          = "GOOGLE_ADS_CLIENT_ID"
	EnvClientSecret      = "GOOGLE_ADS_CLIENT_SECRET"
	EnvDeveloperToken    = "GOOGLE_ADS_DEVELOPER_TOKEN"
	EnvRefreshToken      = "GOOGLE_ADS_REFRESH_TOKEN"
	EnvCustomerID        = "GOOGLE_ADS_CUSTOMER_ID"
	EnvLoginCustomerID   = "GOOGLE_ADS_LOGIN_CUSTOMER_ID"
	EnvClientSecretsPath = "GOOGLE_ADS_CLIENT_TOKEN_PATH"
)

// LoadEnvFile loads variables from a .env file into the process
// environment. With an empty path the default ./.env is tried; a missing
// default file is not an error. Existing environment variables win.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return fmt.Errorf("loading .env: %w", err)
		}
		logger.Debug("loaded .env")
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Debug("loaded env file %s", path)
	return nil
}

// CredentialsFromEnv reads Ads credentials from the environment.
// The result is normalised but NOT validated; callers decide which
// fields their operation requires.
func CredentialsFromEnv() domain.AdsCredentials {
	creds := domain.AdsCredentials{
		ClientID:        os.Getenv(EnvClientID),
		ClientSecret:    os.Getenv(EnvClientSecret),
		DeveloperToken:  os.Getenv(EnvDeveloperToken),
		RefreshToken:    os.Getenv(EnvRefreshToken),
		CustomerID:      os.Getenv(EnvCustomerID),
		LoginCustomerID: os.Getenv(EnvLoginCustomerID),
	}
	creds.Normalize()
	return creds
}

// OAuthConfigFromClientSecrets reads a Google Cloud client_secret.json
// (installed-app format) and builds the OAuth2 config for the adwords
// scope.
func OAuthConfigFromClientSecrets(path string) (*oauth2.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading client secrets: %w", err)
	}

	cfg, err := google.ConfigFromJSON(data, googleads.AdWordsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing client secrets: %w", err)
	}
	return cfg, nil
}
