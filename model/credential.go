package model

import "fmt"

// CredentialBundle is the service principal material required by every
// provider call. It is owned by the caller and passed by value.
type CredentialBundle struct {
	TenantID       string `json:"tenant_id" yaml:"tenant_id"`
	ClientID       string `json:"client_id" yaml:"client_id"`
	ClientSecret   string `json:"client_secret" yaml:"client_secret"`
	SubscriptionID string `json:"subscription_id" yaml:"subscription_id"`
}

func (c CredentialBundle) Validate() error {
	missing := ""
	switch {
	case c.TenantID == "":
		missing = "tenant_id"
	case c.ClientID == "":
		missing = "client_id"
	case c.ClientSecret == "":
		missing = "client_secret"
	case c.SubscriptionID == "":
		missing = "subscription_id"
	}
	if missing != "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidCredentials, missing)
	}
	return nil
}

// String never prints the secret.
func (c CredentialBundle) String() string {
	return fmt.Sprintf("tenant=%s client=%s subscription=%s secret=***", c.TenantID, c.ClientID, c.SubscriptionID)
}
