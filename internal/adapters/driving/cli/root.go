// Package cli wires the cobra command tree to the core services.
// Services are built lazily on first use so commands that need no Ads
// credentials (version, config, history) run without them; tests
// replace the service variables directly.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Meganathan02/seo-keyword-code/internal/adapters/driven/config"
	"github.com/Meganathan02/seo-keyword-code/internal/adapters/driven/config/file"
	"github.com/Meganathan02/seo-keyword-code/internal/adapters/driven/googleads"
	"github.com/Meganathan02/seo-keyword-code/internal/adapters/driven/storage/sqlite"
	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
	"github.com/Meganathan02/seo-keyword-code/internal/core/ports/driven"
	"github.com/Meganathan02/seo-keyword-code/internal/core/ports/driving"
	"github.com/Meganathan02/seo-keyword-code/internal/core/services"
	"github.com/Meganathan02/seo-keyword-code/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// configKeyRefreshToken is where 'auth login --save' stores the token.
const configKeyRefreshToken = "auth.refresh_token"

// Services used by the commands.
var (
	researchService driving.KeywordResearch
	accountManager  driven.AccountManager
	configStore     driven.ConfigStore
	runStore        driven.RunStore
)

var (
	flagVerbose bool
	flagEnvFile string
)

var rootCmd = &cobra.Command{
	Use:   "seokw",
	Short: "Keyword research powered by the Google Ads API",
	Long: `seokw expands seed keywords into keyword ideas with monthly search
volume, competition and bid estimates from the Google Ads Keyword
Planner, and exports them to CSV or JSON.

Credentials are read from GOOGLE_ADS_* environment variables; a .env
file in the working directory is picked up automatically. Run
'seokw auth login' once to obtain the OAuth refresh token.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return config.LoadEnvFile(flagEnvFile)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(
		&flagEnvFile, "env-file", "", "load environment variables from this file (default ./.env)")
}

// Execute runs the root command.
func Execute() error {
	defer closeServices()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

func closeServices() {
	if runStore != nil {
		if err := runStore.Close(); err != nil {
			logger.Warn("closing run store: %v", err)
		}
	}
}

// ensureConfigStore opens ~/.seokw/config.toml on first use.
func ensureConfigStore() (driven.ConfigStore, error) {
	if configStore != nil {
		return configStore, nil
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		return nil, fmt.Errorf("opening config store: %w", err)
	}
	configStore = store
	return store, nil
}

// ensureRunStore opens the run history database on first use. History is
// best-effort: on failure a warning is logged and nil is returned, which
// the research service treats as "do not record".
func ensureRunStore() driven.RunStore {
	if runStore != nil {
		return runStore
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("run history unavailable: %v", err)
		return nil
	}
	runStore = store
	return store
}

// loadCredentials reads Ads credentials from the environment, falling
// back to the config store for a refresh token saved by 'auth login'.
func loadCredentials() domain.AdsCredentials {
	creds := config.CredentialsFromEnv()
	if creds.RefreshToken == "" {
		if store, err := ensureConfigStore(); err == nil {
			creds.RefreshToken = store.GetString(configKeyRefreshToken)
		}
	}
	return creds
}

// ensureResearchService builds the Ads-backed research service on first use.
func ensureResearchService(ctx context.Context) error {
	if researchService != nil {
		return nil
	}

	client, err := googleads.NewClient(ctx, loadCredentials())
	if err != nil {
		return err
	}

	researchService = services.NewResearchService(client, ensureRunStore())
	if accountManager == nil {
		accountManager = client
	}
	return nil
}

// ensureAccountManager builds the Ads account manager on first use.
func ensureAccountManager(ctx context.Context) error {
	if accountManager != nil {
		return nil
	}

	client, err := googleads.NewClient(ctx, loadCredentials())
	if err != nil {
		return err
	}
	accountManager = client
	return nil
}
