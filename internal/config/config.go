/*
Package config handles loading, saving, and validating deal-hub
configuration.

Configuration is stored in ~/.deal-hub.json:

	{
	  "defaultStoreId": "4332",
	  "apiBaseUrl": "https://order.dominos.com/power",
	  "dataDir": "~/.deal-hub",
	  "email": {
	    "host": "smtp.example.com",
	    "port": 587,
	    "from": "deals@example.com",
	    "to": "me@example.com"
	  },
	  "settings": {
	    "timeoutSeconds": 15
	  }
	}
*/
package config

import (
	"os"
	"path/filepath"
)

// FileName is the config file name in the user's home directory.
const FileName = ".deal-hub.json"

// Config represents the root configuration structure.
type Config struct {
	// DefaultStoreID is the store used when a command gives none.
	DefaultStoreID string `json:"defaultStoreId,omitempty"`

	// APIBaseURL overrides the ordering API endpoint (for testing or
	// regional mirrors). Empty selects the production endpoint.
	APIBaseURL string `json:"apiBaseUrl,omitempty"`

	// DataDir overrides where the profile database lives.
	// Empty selects ~/.deal-hub.
	DataDir string `json:"dataDir,omitempty"`

	// Email configures SMTP delivery for the email command.
	Email *EmailConfig `json:"email,omitempty"`

	// Settings contains global options.
	Settings *Settings `json:"settings,omitempty"`
}

// EmailConfig configures the email command.
type EmailConfig struct {
	// Host and Port locate the SMTP server.
	Host string `json:"host"`
	Port int    `json:"port"`

	// From is the sender address, To the default recipient.
	From string `json:"from"`
	To   string `json:"to,omitempty"`

	// Username enables SMTP PLAIN auth; the password is taken from the
	// DEAL_HUB_SMTP_PASSWORD environment variable, never the config file.
	Username string `json:"username,omitempty"`
}

// Settings contains global configuration options.
type Settings struct {
	// TimeoutSeconds bounds ordering API requests.
	TimeoutSeconds int `json:"timeoutSeconds"`
}

// NewConfig creates a config with default settings.
func NewConfig() *Config {
	return &Config{
		Settings: &Settings{TimeoutSeconds: 15},
	}
}

// DefaultPath returns the default config location, ~/.deal-hub.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, FileName), nil
}

// Load reads the config from the default path.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// TimeoutSeconds returns the configured API timeout, or the default.
func (c *Config) TimeoutSeconds() int {
	if c.Settings == nil || c.Settings.TimeoutSeconds <= 0 {
		return 15
	}
	return c.Settings.TimeoutSeconds
}
