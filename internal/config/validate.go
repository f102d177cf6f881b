package config

import (
	"fmt"
	"time"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMetadata(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMetadata() error {
	if c.Metadata.FFprobeTimeout <= 0 {
		return fmt.Errorf("metadata.ffprobe_timeout must be positive, got %d", c.Metadata.FFprobeTimeout)
	}
	if c.plausibleAfter.IsZero() {
		return fmt.Errorf("metadata.plausible_after must be a valid date, got %q", c.Metadata.PlausibleAfter)
	}
	if c.plausibleAfter.After(time.Now()) {
		return fmt.Errorf("metadata.plausible_after %q lies in the future", c.Metadata.PlausibleAfter)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
