// Package googleads is a minimal REST client for the Google Ads API
// surface this tool needs: keyword idea generation and test account
// creation. It speaks the JSON/REST transport rather than gRPC, so the
// only moving parts are an oauth2 token source and a handful of headers.
package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
	"github.com/Meganathan02/seo-keyword-code/internal/logger"
)

// AdWordsScope is the OAuth2 scope granting Google Ads API access.
const AdWordsScope = "https://www.googleapis.com/auth/adwords"

const (
	defaultEndpoint = "https://googleads.googleapis.com"
	apiVersion      = "v19"
	requestTimeout  = 60 * time.Second
)

// Client calls the Google Ads REST API for a single customer account.
type Client struct {
	httpClient      *http.Client
	endpoint        string
	developerToken  string
	customerID      string
	loginCustomerID string
	limiter         *RateLimiter
}

// Option customises a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint. Used in tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient overrides the HTTP client, bypassing the oauth2
// transport. Used in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimiter overrides the request pacing configuration.
func WithRateLimiter(l *RateLimiter) Option {
	return func(c *Client) { c.limiter = l }
}

// NewClient builds an authenticated Ads API client from credentials.
// Credentials are validated up front so a misconfigured environment
// fails before any network call.
func NewClient(ctx context.Context, creds domain.AdsCredentials, opts ...Option) (*Client, error) {
	creds.Normalize()
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	oauthCfg := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{AdWordsScope},
	}
	// The oauth2 transport trades the refresh token for access tokens as
	// needed; there is no explicit refresh handling anywhere else.
	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})

	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = requestTimeout

	c := &Client{
		httpClient:      httpClient,
		endpoint:        defaultEndpoint,
		developerToken:  creds.DeveloperToken,
		customerID:      creds.CustomerID,
		loginCustomerID: creds.LoginCustomerID,
		limiter:         NewRateLimiter(DefaultRateLimit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CustomerID returns the target customer ID (digits only).
func (c *Client) CustomerID() string {
	return c.customerID
}

// post issues one JSON POST against the API and decodes the response
// into out. Error responses are classified via WrapError.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	url := c.endpoint + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.developerToken)
	if c.loginCustomerID != "" {
		req.Header.Set("login-customer-id", c.loginCustomerID)
	}

	logger.Debug("POST %s", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests && c.limiter != nil {
		c.limiter.RecordRateLimitError(retryAfterSeconds(resp))
	}
	if err := checkResponse(resp); err != nil {
		return WrapError(err)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
