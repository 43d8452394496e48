package driven

import "time"

// CodeReceiver accepts the OAuth authorization-code redirect during the
// loopback flow. The production implementation is a local HTTP server.
type CodeReceiver interface {
	// Start begins listening for the redirect.
	Start() error

	// RedirectURI returns the redirect URI to register with the provider.
	RedirectURI() string

	// WaitForCode blocks until the authorization code arrives, the
	// provider reports an error, or the timeout elapses.
	WaitForCode(timeout time.Duration) (string, error)

	// Stop shuts the receiver down.
	Stop() error
}
