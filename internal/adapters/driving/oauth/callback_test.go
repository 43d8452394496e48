//nolint:noctx // Test file uses http.Get for convenience
package oauth

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, state string) *CallbackServer {
	t.Helper()
	server := NewCallbackServer(0, state)
	require.NoError(t, server.Start())
	t.Cleanup(func() { _ = server.Stop() })
	return server
}

func TestCallbackServer_StartAssignsPort(t *testing.T) {
	server := startServer(t, "state-1")

	assert.NotZero(t, server.Port())
	assert.Equal(t, fmt.Sprintf("http://localhost:%d/callback", server.Port()), server.RedirectURI())
}

func TestCallbackServer_ReceivesCode(t *testing.T) {
	server := startServer(t, "expected-state")

	callbackURL := fmt.Sprintf("http://127.0.0.1:%d/callback?code=%s&state=%s",
		server.Port(), url.QueryEscape("auth-code-42"), "expected-state")
	resp, err := http.Get(callbackURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	code, err := server.WaitForCode(2 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "auth-code-42", code)
}

func TestCallbackServer_RejectsStateMismatch(t *testing.T) {
	server := startServer(t, "expected-state")

	callbackURL := fmt.Sprintf("http://127.0.0.1:%d/callback?code=abc&state=wrong",
		server.Port())
	resp, err := http.Get(callbackURL)
	require.NoError(t, err)
	defer resp.Body.Close()

	_, err = server.WaitForCode(2 * time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state mismatch")
}

func TestCallbackServer_ProviderError(t *testing.T) {
	server := startServer(t, "state")

	callbackURL := fmt.Sprintf(
		"http://127.0.0.1:%d/callback?error=access_denied&error_description=user+cancelled",
		server.Port())
	resp, err := http.Get(callbackURL)
	require.NoError(t, err)
	defer resp.Body.Close()

	_, err = server.WaitForCode(2 * time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_denied")
}

func TestCallbackServer_MissingCode(t *testing.T) {
	server := startServer(t, "state")

	callbackURL := fmt.Sprintf("http://127.0.0.1:%d/callback?state=state", server.Port())
	resp, err := http.Get(callbackURL)
	require.NoError(t, err)
	defer resp.Body.Close()

	_, err = server.WaitForCode(2 * time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no authorization code")
}

func TestCallbackServer_WaitTimeout(t *testing.T) {
	server := startServer(t, "state")

	start := time.Now()
	_, err := server.WaitForCode(100 * time.Millisecond)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
	assert.Less(t, time.Since(start), 2*time.Second)
}
