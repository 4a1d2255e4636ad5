package config

import "fmt"

// Validate checks that a loaded configuration is usable.
func Validate(cfg *Configuration) error {
	if cfg.MaxReleases <= 0 {
		return fmt.Errorf("config validation failed: max_releases must be positive (got %d)", cfg.MaxReleases)
	}
	if cfg.MaxItems <= 0 {
		return fmt.Errorf("config validation failed: max_items must be positive (got %d)", cfg.MaxItems)
	}
	return nil
}
