package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCredentials() AdsCredentials {
	return AdsCredentials{
		ClientID:       "client-id",
		ClientSecret:   "client-secret",
		DeveloperToken: "dev-token",
		RefreshToken:   "refresh-token",
		CustomerID:     "1234567890",
	}
}

func TestAdsCredentials_Normalize(t *testing.T) {
	c := AdsCredentials{
		CustomerID:      " 123-456-7890 ",
		LoginCustomerID: "987-654-3210",
	}
	c.Normalize()

	assert.Equal(t, "1234567890", c.CustomerID)
	assert.Equal(t, "9876543210", c.LoginCustomerID)
}

func TestAdsCredentials_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validCredentials().Validate())
	})

	t.Run("login customer id optional", func(t *testing.T) {
		c := validCredentials()
		c.LoginCustomerID = ""
		assert.NoError(t, c.Validate())
	})

	tests := []struct {
		name  string
		strip func(*AdsCredentials)
	}{
		{"missing client id", func(c *AdsCredentials) { c.ClientID = "" }},
		{"missing client secret", func(c *AdsCredentials) { c.ClientSecret = "" }},
		{"missing developer token", func(c *AdsCredentials) { c.DeveloperToken = "" }},
		{"missing refresh token", func(c *AdsCredentials) { c.RefreshToken = "" }},
		{"missing customer id", func(c *AdsCredentials) { c.CustomerID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCredentials()
			tt.strip(&c)
			assert.ErrorIs(t, c.Validate(), ErrMissingConfig)
		})
	}
}
