package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks a config for values that would break commands later:
// a non-numeric store id, a malformed API URL, or half-configured email
// settings.
func Validate(cfg *Config) error {
	if cfg.DefaultStoreID != "" && !isNumeric(cfg.DefaultStoreID) {
		return fmt.Errorf("defaultStoreId %q: store ids are numeric", cfg.DefaultStoreID)
	}

	if cfg.APIBaseURL != "" {
		u, err := url.Parse(cfg.APIBaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("apiBaseUrl %q: must be an http(s) URL", cfg.APIBaseURL)
		}
	}

	if cfg.Email != nil {
		if err := validateEmail(cfg.Email); err != nil {
			return err
		}
	}

	return nil
}

func validateEmail(e *EmailConfig) error {
	if e.Host == "" {
		return fmt.Errorf("email.host: required when email is configured")
	}
	if e.Port <= 0 || e.Port > 65535 {
		return fmt.Errorf("email.port %d: must be in 1-65535", e.Port)
	}
	if !looksLikeAddress(e.From) {
		return fmt.Errorf("email.from %q: not a mail address", e.From)
	}
	if e.To != "" && !looksLikeAddress(e.To) {
		return fmt.Errorf("email.to %q: not a mail address", e.To)
	}
	return nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func looksLikeAddress(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1
}
