package googleads

import (
	"context"
	"fmt"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
	"github.com/Meganathan02/seo-keyword-code/internal/core/ports/driven"
)

// Test accounts are created in USD / Eastern time, matching the manager
// account setup this tool targets.
const (
	testAccountCurrency = "USD"
	testAccountTimeZone = "America/New_York"
)

// Ensure Client implements the account manager port.
var _ driven.AccountManager = (*Client)(nil)

// CreateTestAccount creates a client account under the configured manager
// (login customer) account and returns its resource name. Only useful
// against test manager accounts; production account creation needs the
// standard access tier.
func (c *Client) CreateTestAccount(ctx context.Context, descriptiveName string) (string, error) {
	if c.loginCustomerID == "" {
		return "", fmt.Errorf("%w: login customer ID (manager account)", domain.ErrMissingConfig)
	}

	body := createCustomerClientRequest{
		CustomerClient: customerClient{
			DescriptiveName: descriptiveName,
			CurrencyCode:    testAccountCurrency,
			TimeZone:        testAccountTimeZone,
		},
	}

	path := fmt.Sprintf("/%s/customers/%s:createCustomerClient", apiVersion, c.loginCustomerID)

	var resp createCustomerClientResponse
	if err := c.post(ctx, path, body, &resp); err != nil {
		return "", err
	}
	return resp.ResourceName, nil
}
