package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Audit.validate(); err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	if c.NATS.URL != "" && c.NATS.SubjectPrefix == "" {
		return fmt.Errorf("nats.subject_prefix is required when nats.url is set")
	}

	if c.Redis.Addr != "" && c.Redis.LabelTTL <= 0 {
		return fmt.Errorf("redis.label_ttl must be > 0 when redis.addr is set (got %v)", c.Redis.LabelTTL)
	}

	return nil
}

func (a *AuditConfig) validate() error {
	if a.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be > 0 (got %d)", a.HistoryLimit)
	}
	if a.FallbackScanLimit <= 0 {
		return fmt.Errorf("fallback_scan_limit must be > 0 (got %d)", a.FallbackScanLimit)
	}
	if a.ReconstructTimeout <= 0 {
		return fmt.Errorf("reconstruct_timeout must be > 0 (got %v)", a.ReconstructTimeout)
	}
	return nil
}
