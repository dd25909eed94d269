package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn must not be empty")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be between 0 and max_conns (got %d)", c.Database.MinConns)
	}

	level := strings.ToLower(c.Log.Level)
	if !slices.Contains(validLogLevels, level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", validLogLevels, c.Log.Level)
	}
	format := strings.ToLower(c.Log.Format)
	if !slices.Contains(validLogFormats, format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", validLogFormats, c.Log.Format)
	}

	if strings.TrimSpace(c.Inventory.DefaultUserName) == "" {
		return fmt.Errorf("inventory.default_user_name must not be empty")
	}
	if c.Inventory.LogListLimit < 1 {
		return fmt.Errorf("inventory.log_list_limit must be >= 1 (got %d)", c.Inventory.LogListLimit)
	}

	return nil
}
