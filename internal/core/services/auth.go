package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
	"github.com/Meganathan02/seo-keyword-code/internal/core/ports/driven"
	"github.com/Meganathan02/seo-keyword-code/internal/core/ports/driving"
	"github.com/Meganathan02/seo-keyword-code/internal/logger"
)

// Callback port range for the loopback redirect.
const (
	callbackPortStart = 8080
	callbackPortEnd   = 8180
)

// DefaultAuthTimeout is how long Authorize waits for the user to complete
// the consent screen in the browser.
const DefaultAuthTimeout = 5 * time.Minute

// Ensure AuthService implements the interface.
var _ driving.AuthFlow = (*AuthService)(nil)

// ReceiverFactory builds a CodeReceiver listening on the given port and
// validating the given state parameter.
type ReceiverFactory func(port int, state string) driven.CodeReceiver

// AuthOptions configures an AuthService.
type AuthOptions struct {
	// NewReceiver builds the loopback callback receiver. Required.
	NewReceiver ReceiverFactory
	// OpenBrowser opens the consent URL in the user's browser.
	// Optional; when nil or failing, the URL is surfaced via Notify.
	OpenBrowser func(url string) error
	// Notify is called with the consent URL so the caller can display it.
	// Optional.
	Notify func(authURL string)
	// Timeout bounds the wait for the callback. Zero means
	// DefaultAuthTimeout.
	Timeout time.Duration
}

// AuthService performs the installed-app OAuth2 authorization-code flow
// with PKCE and a loopback redirect, yielding a refresh token.
type AuthService struct {
	cfg  *oauth2.Config
	opts AuthOptions
}

// NewAuthService creates an auth service for the given OAuth app config.
// The config's RedirectURL is set per flow to the loopback receiver.
func NewAuthService(cfg *oauth2.Config, opts AuthOptions) *AuthService {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultAuthTimeout
	}
	return &AuthService{cfg: cfg, opts: opts}
}

// Authorize runs the flow: start the loopback receiver, send the user to
// the consent screen, wait for the authorization code, and exchange it
// for tokens. access_type=offline and prompt=consent force Google to
// issue a refresh token even for previously-consented apps.
func (s *AuthService) Authorize(ctx context.Context) (*domain.AuthResult, error) {
	if s.cfg == nil || s.cfg.ClientID == "" {
		return nil, fmt.Errorf("%w: OAuth client not configured", domain.ErrAuthRequired)
	}
	if s.opts.NewReceiver == nil {
		return nil, domain.ErrNotImplemented
	}

	state, err := generateState()
	if err != nil {
		return nil, fmt.Errorf("generating state: %w", err)
	}
	verifier, err := generateCodeVerifier()
	if err != nil {
		return nil, fmt.Errorf("generating code verifier: %w", err)
	}
	challenge := generateCodeChallenge(verifier)

	port, err := FindAvailablePort(callbackPortStart, callbackPortEnd)
	if err != nil {
		return nil, err
	}

	receiver := s.opts.NewReceiver(port, state)
	if err := receiver.Start(); err != nil {
		return nil, fmt.Errorf("starting callback server: %w", err)
	}
	defer func() {
		if err := receiver.Stop(); err != nil {
			logger.Warn("stopping callback server: %v", err)
		}
	}()

	// Copy so the shared config is not mutated across flows.
	cfg := *s.cfg
	cfg.RedirectURL = receiver.RedirectURI()

	authURL := cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("code_challenge", challenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	if s.opts.Notify != nil {
		s.opts.Notify(authURL)
	}
	if s.opts.OpenBrowser != nil {
		if err := s.opts.OpenBrowser(authURL); err != nil {
			logger.Warn("opening browser: %v", err)
		}
	}

	code, err := receiver.WaitForCode(s.opts.Timeout)
	if err != nil {
		return nil, fmt.Errorf("waiting for authorization: %w", err)
	}

	token, err := cfg.Exchange(ctx, code,
		oauth2.SetAuthURLParam("code_verifier", verifier))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenExchangeFailed, err)
	}
	if token.RefreshToken == "" {
		return nil, fmt.Errorf("%w: no refresh token granted", domain.ErrTokenExchangeFailed)
	}

	return &domain.AuthResult{
		RefreshToken: token.RefreshToken,
		AccessToken:  token.AccessToken,
		Expiry:       token.Expiry,
	}, nil
}
