package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/govreg"
	projectConfigDir = ".govreg"
	configFileName   = "config.yaml"
)

// Load builds the effective configuration by layering the built-in
// defaults, the user config (~/.config/govreg/config.yaml) and the project
// config (./.govreg/config.yaml), in that order. A missing file is not an
// error; an unreadable or malformed one is.
func Load() (Config, error) {
	cfg := DefaultConfig()

	userPath, err := getUserConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userPath); !os.IsNotExist(err) {
		userCfg, err := loadFromFile(userPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading user config from %s: %w", userPath, err)
		}
		cfg = merge(cfg, userCfg)
	}

	projectPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectPath); !os.IsNotExist(err) {
		projectCfg, err := loadFromFile(projectPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading project config from %s: %w", projectPath, err)
		}
		cfg = merge(cfg, projectCfg)
	}

	return cfg, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func loadFromFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// merge overlays non-zero fields of overlay onto base.
func merge(base, overlay Config) Config {
	merged := base

	if overlay.Portal.BaseURL != "" {
		merged.Portal.BaseURL = overlay.Portal.BaseURL
	}
	if overlay.Portal.SessionCookie != "" {
		merged.Portal.SessionCookie = overlay.Portal.SessionCookie
	}
	if overlay.Portal.CSRFToken != "" {
		merged.Portal.CSRFToken = overlay.Portal.CSRFToken
	}
	if overlay.Portal.Timeout != 0 {
		merged.Portal.Timeout = overlay.Portal.Timeout
	}
	if overlay.Defaults.Portfolio != "" {
		merged.Defaults.Portfolio = overlay.Defaults.Portfolio
	}
	if overlay.Defaults.Email != "" {
		merged.Defaults.Email = overlay.Defaults.Email
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}

	return merged
}
