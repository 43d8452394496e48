package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/term"

	"github.com/Meganathan02/seo-keyword-code/internal/adapters/driven/config"
	"github.com/Meganathan02/seo-keyword-code/internal/adapters/driven/googleads"
	"github.com/Meganathan02/seo-keyword-code/internal/adapters/driving/oauth"
	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
	"github.com/Meganathan02/seo-keyword-code/internal/core/ports/driven"
	"github.com/Meganathan02/seo-keyword-code/internal/core/ports/driving"
	"github.com/Meganathan02/seo-keyword-code/internal/core/services"
)

var (
	authClientSecrets string
	authClientID      string
	authClientSecret  string
	authSave          bool
	authNoBrowser     bool
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Google Ads API authorization",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Obtain an OAuth refresh token",
	Long: `Runs the installed-app OAuth flow against Google and prints the
refresh token the other commands need.

A browser window opens on the Google consent screen; after approval the
token is captured via a local callback server. The OAuth app credentials
come from (in order) --client-secrets, the ` + config.EnvClientSecretsPath + `
environment variable, --client-id/--client-secret, the ` + config.EnvClientID + `
environment variable, or an interactive prompt.

Examples:
  seokw auth login --client-secrets ~/Downloads/client_secret.json
  seokw auth login --client-id "xxx" --client-secret "yyy" --save`,
	RunE: runAuthLogin,
}

func init() {
	authLoginCmd.Flags().StringVar(
		&authClientSecrets, "client-secrets", "", "path to a client_secret.json downloaded from Google Cloud")
	authLoginCmd.Flags().StringVar(
		&authClientID, "client-id", "", "OAuth client ID")
	authLoginCmd.Flags().StringVar(
		&authClientSecret, "client-secret", "", "OAuth client secret")
	authLoginCmd.Flags().BoolVar(
		&authSave, "save", false, "store the refresh token in the config file")
	authLoginCmd.Flags().BoolVar(
		&authNoBrowser, "no-browser", false, "print the consent URL instead of opening a browser")

	authCmd.AddCommand(authLoginCmd)
	rootCmd.AddCommand(authCmd)
}

// newAuthFlow builds the authorization flow. Replaced in tests.
var newAuthFlow = func(cfg *oauth2.Config, opts services.AuthOptions) driving.AuthFlow {
	return services.NewAuthService(cfg, opts)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	cfg, err := oauthAppConfig(cmd)
	if err != nil {
		return err
	}

	opts := services.AuthOptions{
		NewReceiver: func(port int, state string) driven.CodeReceiver {
			return oauth.NewCallbackServer(port, state)
		},
		Notify: func(authURL string) {
			cmd.Println("Complete authorization in your browser:")
			cmd.Println()
			cmd.Printf("  %s\n", authURL)
			cmd.Println()
		},
	}
	if !authNoBrowser {
		opts.OpenBrowser = oauth.OpenBrowser
	}

	result, err := newAuthFlow(cfg, opts).Authorize(cmd.Context())
	if err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	cmd.Println("Authorization complete.")
	cmd.Println()
	cmd.Printf("Refresh token:\n  %s\n", result.RefreshToken)
	cmd.Println()
	cmd.Printf("Set %s to this value (e.g. in your .env file).\n", config.EnvRefreshToken)

	if !authSave {
		return nil
	}

	store, err := ensureConfigStore()
	if err != nil {
		return err
	}
	if err := store.Set(configKeyRefreshToken, result.RefreshToken); err != nil {
		return fmt.Errorf("saving refresh token: %w", err)
	}
	cmd.Printf("Refresh token saved to %s\n", store.Path())
	return nil
}

// oauthAppConfig resolves the OAuth app credentials for the login flow.
func oauthAppConfig(cmd *cobra.Command) (*oauth2.Config, error) {
	path := authClientSecrets
	if path == "" {
		path = os.Getenv(config.EnvClientSecretsPath)
	}
	if path != "" {
		return config.OAuthConfigFromClientSecrets(path)
	}

	clientID := authClientID
	if clientID == "" {
		clientID = os.Getenv(config.EnvClientID)
	}
	clientSecret := authClientSecret
	if clientSecret == "" {
		clientSecret = os.Getenv(config.EnvClientSecret)
	}

	if clientID == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		var err error
		clientID, clientSecret, err = promptClientCredentials(cmd)
		if err != nil {
			return nil, err
		}
	}
	if clientID == "" {
		return nil, fmt.Errorf("%w: OAuth client ID (use --client-secrets or --client-id)", domain.ErrMissingConfig)
	}

	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{googleads.AdWordsScope},
	}, nil
}

// promptClientCredentials asks for the OAuth app credentials on the
// terminal. The secret is read without echo.
func promptClientCredentials(cmd *cobra.Command) (clientID, clientSecret string, err error) {
	reader := bufio.NewReader(os.Stdin)

	cmd.Print("OAuth client ID: ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", "", fmt.Errorf("reading client ID: %w", err)
	}
	clientID = strings.TrimSpace(line)

	cmd.Print("OAuth client secret: ")
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	cmd.Println()
	if err != nil {
		return "", "", fmt.Errorf("reading client secret: %w", err)
	}
	clientSecret = strings.TrimSpace(string(secret))

	return clientID, clientSecret, nil
}
