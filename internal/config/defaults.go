package config

import "time"

// DefaultConfig returns the built-in configuration. It is valid on its own
// for anonymous use against the public portal; authenticated features need
// the session fields from a user or project config file.
func DefaultConfig() Config {
	return Config{
		Portal: PortalConfig{
			BaseURL: "https://manage.get.gov",
			Timeout: 30 * time.Second,
		},
		LogLevel: "info",
	}
}
