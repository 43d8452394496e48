package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
	"github.com/Meganathan02/seo-keyword-code/internal/core/ports/driven"
)

// fakeReceiver implements driven.CodeReceiver and hands back a canned
// authorization code without any HTTP round trip.
type fakeReceiver struct {
	code     string
	waitErr  error
	startErr error
	started  bool
	stopped  bool
}

func (f *fakeReceiver) Start() error {
	f.started = true
	return f.startErr
}

func (f *fakeReceiver) RedirectURI() string { return "http://localhost:9999/callback" }

func (f *fakeReceiver) WaitForCode(_ time.Duration) (string, error) {
	if f.waitErr != nil {
		return "", f.waitErr
	}
	return f.code, nil
}

func (f *fakeReceiver) Stop() error {
	f.stopped = true
	return nil
}

// newTokenEndpoint returns a test server that answers the token exchange
// with the given refresh token, asserting the posted authorization code.
func newTokenEndpoint(t *testing.T, wantCode, refreshToken string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, wantCode, r.FormValue("code"))
		assert.NotEmpty(t, r.FormValue("code_verifier"), "exchange should carry the PKCE verifier")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-abc",
			"refresh_token": refreshToken,
			"token_type":    "Bearer",
			"expires_in":    3600,
		})
	}))
}

func testOAuthConfig(tokenURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Scopes:       []string{"https://www.googleapis.com/auth/adwords"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://example.com/auth",
			TokenURL: tokenURL,
		},
	}
}

func TestAuthService_Authorize(t *testing.T) {
	t.Run("exchanges code for refresh token", func(t *testing.T) {
		srv := newTokenEndpoint(t, "auth-code-42", "refresh-xyz")
		defer srv.Close()

		receiver := &fakeReceiver{code: "auth-code-42"}
		var gotURL string
		svc := NewAuthService(testOAuthConfig(srv.URL), AuthOptions{
			NewReceiver: func(_ int, _ string) driven.CodeReceiver { return receiver },
			Notify:      func(u string) { gotURL = u },
		})

		result, err := svc.Authorize(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "refresh-xyz", result.RefreshToken)
		assert.Equal(t, "access-abc", result.AccessToken)
		assert.True(t, receiver.started)
		assert.True(t, receiver.stopped)

		assert.Contains(t, gotURL, "access_type=offline")
		assert.Contains(t, gotURL, "code_challenge_method=S256")
		assert.Contains(t, gotURL, "prompt=consent")
	})

	t.Run("fails when no refresh token granted", func(t *testing.T) {
		srv := newTokenEndpoint(t, "code", "")
		defer srv.Close()

		svc := NewAuthService(testOAuthConfig(srv.URL), AuthOptions{
			NewReceiver: func(_ int, _ string) driven.CodeReceiver {
				return &fakeReceiver{code: "code"}
			},
		})

		_, err := svc.Authorize(context.Background())

		assert.ErrorIs(t, err, domain.ErrTokenExchangeFailed)
	})

	t.Run("fails without client configuration", func(t *testing.T) {
		svc := NewAuthService(&oauth2.Config{}, AuthOptions{
			NewReceiver: func(_ int, _ string) driven.CodeReceiver { return &fakeReceiver{} },
		})

		_, err := svc.Authorize(context.Background())

		assert.ErrorIs(t, err, domain.ErrAuthRequired)
	})

	t.Run("propagates callback errors", func(t *testing.T) {
		svc := NewAuthService(testOAuthConfig("http://localhost:1/token"), AuthOptions{
			NewReceiver: func(_ int, _ string) driven.CodeReceiver {
				return &fakeReceiver{waitErr: context.DeadlineExceeded}
			},
		})

		_, err := svc.Authorize(context.Background())

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestFindAvailablePort(t *testing.T) {
	port, err := FindAvailablePort(18080, 18180)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, port, 18080)
	assert.LessOrEqual(t, port, 18180)
}
