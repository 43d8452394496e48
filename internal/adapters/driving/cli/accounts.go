package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var accountsName string

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage Google Ads accounts",
}

var accountsCreateTestCmd = &cobra.Command{
	Use:   "create-test",
	Short: "Create a test client account under the manager account",
	Long: `Creates a test client account under the configured manager (MCC)
account. Requires ` + "GOOGLE_ADS_LOGIN_CUSTOMER_ID" + ` to point at a test
manager account; developer tokens with test access cannot create
production accounts.`,
	RunE: runAccountsCreateTest,
}

func init() {
	accountsCreateTestCmd.Flags().StringVar(
		&accountsName, "name", "", "descriptive name for the account (default \"Test Account <timestamp>\")")

	accountsCmd.AddCommand(accountsCreateTestCmd)
	rootCmd.AddCommand(accountsCmd)
}

func runAccountsCreateTest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := ensureAccountManager(ctx); err != nil {
		return err
	}
	if accountManager == nil {
		return errors.New("account manager not configured")
	}

	name := accountsName
	if name == "" {
		name = "Test Account " + time.Now().Format("2006-01-02 15:04:05")
	}

	resourceName, err := accountManager.CreateTestAccount(ctx, name)
	if err != nil {
		return fmt.Errorf("creating test account: %w", err)
	}

	cmd.Printf("Created test account: %s\n", resourceName)
	cmd.Printf("  Name: %s\n", name)
	return nil
}
