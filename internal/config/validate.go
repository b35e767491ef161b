package config

import (
	"fmt"
	"net/url"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Environment != EnvDevelopment && c.Environment != EnvProduction {
		return fmt.Errorf("environment must be %q or %q (got %q)", EnvDevelopment, EnvProduction, c.Environment)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Relay.validate(); err != nil {
		return fmt.Errorf("relay: %w", err)
	}

	if err := c.CMS.validate(); err != nil {
		return fmt.Errorf("cms: %w", err)
	}

	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	return nil
}

func (r *RelayConfig) validate() error {
	if r.KeepAliveInterval < time.Second {
		return fmt.Errorf("keepalive_interval must be >= 1s (got %v)", r.KeepAliveInterval)
	}
	if r.SubscriberBuffer < 1 {
		return fmt.Errorf("subscriber_buffer must be >= 1 (got %d)", r.SubscriberBuffer)
	}
	if r.IngestRatePerMinute < 0 {
		return fmt.Errorf("ingest_rate_per_minute must be >= 0 (got %d)", r.IngestRatePerMinute)
	}
	if r.MaxPayloadBytes < 1 {
		return fmt.Errorf("max_payload_bytes must be >= 1 (got %d)", r.MaxPayloadBytes)
	}
	return nil
}

func (c *CMSConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", c.Timeout)
	}
	return nil
}

func (s *SessionConfig) validate() error {
	if s.CookieName == "" {
		return fmt.Errorf("cookie_name is required")
	}
	if s.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %v)", s.TTL)
	}
	if s.JWTSecret != "" && len(s.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters when set (got %d)", len(s.JWTSecret))
	}
	return nil
}
