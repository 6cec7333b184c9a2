package config

import "time"

// Config is the top-level configuration structure for govreg.
type Config struct {
	Portal   PortalConfig   `yaml:"portal"`
	Defaults DefaultsConfig `yaml:"defaults"`
	LogLevel string         `yaml:"logLevel,omitempty"` // debug, info, warn, error
}

// PortalConfig describes how to reach the registrar portal.
type PortalConfig struct {
	// BaseURL is the root of the portal, e.g. "https://manage.get.gov".
	BaseURL string `yaml:"baseURL"`
	// SessionCookie is the value of the portal session cookie. Mutating
	// requests additionally require CSRFToken.
	SessionCookie string `yaml:"sessionCookie,omitempty"`
	// CSRFToken is the anti-forgery token sent with mutating requests.
	CSRFToken string `yaml:"csrfToken,omitempty"`
	// Timeout bounds every request to the portal.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// DefaultsConfig carries per-user defaults applied when a command does not
// override them with flags.
type DefaultsConfig struct {
	// Portfolio scopes collection queries to an owning organization.
	Portfolio string `yaml:"portfolio,omitempty"`
	// Email is the viewer-email hint some scoped views require.
	Email string `yaml:"email,omitempty"`
}
