package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if strings.TrimSpace(c.Lexicon.Path) == "" {
		return fmt.Errorf("lexicon.path is required")
	}

	if !c.Fallback.Disabled {
		if err := c.Fallback.validate(); err != nil {
			return fmt.Errorf("fallback: %w", err)
		}
	}

	if !c.RateLimit.Disabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
		}
		if c.RateLimit.CleanupInterval <= 0 {
			return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
		}
	}

	return nil
}

func (f *FallbackConfig) validate() error {
	u, err := url.Parse(f.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute http(s) URL (got %q)", f.BaseURL)
	}
	if f.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", f.Timeout)
	}
	if f.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be > 0 (got %v)", f.RequestsPerSecond)
	}
	if f.Burst < 1 {
		return fmt.Errorf("burst must be >= 1 (got %d)", f.Burst)
	}

	masc := strings.TrimSpace(f.MasculineMarker)
	fem := strings.TrimSpace(f.FeminineMarker)
	if masc == "" || fem == "" {
		return fmt.Errorf("masculine_marker and feminine_marker are required")
	}
	if strings.EqualFold(masc, fem) {
		return fmt.Errorf("masculine_marker and feminine_marker must differ (both %q)", masc)
	}
	return nil
}
