package domain

import (
	"fmt"
	"strings"
	"time"
)

// AdsCredentials holds everything needed to authenticate against the
// Google Ads API: the OAuth app credentials, the long-lived refresh
// token, the developer token, and the target customer ID.
//
// The login customer ID is only required when the authenticated user
// accesses the target account through a manager (MCC) account.
type AdsCredentials struct {
	// ClientID is the OAuth2 client ID of the Google Cloud app.
	ClientID string
	// ClientSecret is the OAuth2 client secret.
	ClientSecret string
	// DeveloperToken is the Ads API developer token.
	DeveloperToken string
	// RefreshToken is the long-lived OAuth2 credential exchanged for
	// short-lived access tokens.
	RefreshToken string
	// CustomerID is the Ads account the requests run against (digits only).
	CustomerID string
	// LoginCustomerID is the manager account ID, if any (digits only).
	LoginCustomerID string
}

// Normalize strips the dashes Google's UI displays in customer IDs
// (123-456-7890 -> 1234567890).
func (c *AdsCredentials) Normalize() {
	c.CustomerID = strings.ReplaceAll(strings.TrimSpace(c.CustomerID), "-", "")
	c.LoginCustomerID = strings.ReplaceAll(strings.TrimSpace(c.LoginCustomerID), "-", "")
}

// Validate reports the first missing required credential.
// The login customer ID is optional.
func (c AdsCredentials) Validate() error {
	switch {
	case c.ClientID == "":
		return fmt.Errorf("%w: client ID", ErrMissingConfig)
	case c.ClientSecret == "":
		return fmt.Errorf("%w: client secret", ErrMissingConfig)
	case c.DeveloperToken == "":
		return fmt.Errorf("%w: developer token", ErrMissingConfig)
	case c.RefreshToken == "":
		return fmt.Errorf("%w: refresh token", ErrMissingConfig)
	case c.CustomerID == "":
		return fmt.Errorf("%w: customer ID", ErrMissingConfig)
	}
	return nil
}

// AuthResult is the outcome of a completed authorization-code flow.
type AuthResult struct {
	// RefreshToken is the long-lived credential to place in configuration.
	RefreshToken string
	// AccessToken is the short-lived token granted alongside it.
	AccessToken string
	// Expiry is when the access token expires.
	Expiry time.Time
}
