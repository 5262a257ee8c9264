package config

import (
	"errors"
	"fmt"
	"strings"
)

var validFormats = map[string]struct{}{
	"table": {},
	"json":  {},
	"csv":   {},
}

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate ensures the configuration is usable. Credentials are optional
// here: which credential a command needs is decided at dispatch time, and
// `auth login` must work before any credential exists.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAPI() error {
	if c.API.Key != "" && !strings.HasPrefix(c.API.Key, "test_") && !strings.HasPrefix(c.API.Key, "live_") {
		return errors.New("api.key should start with one of: test_, live_")
	}
	if c.API.AccessToken != "" && !strings.HasPrefix(c.API.AccessToken, "access_") {
		return errors.New("api.access_token should start with: access_")
	}
	if c.API.TimeoutSeconds <= 0 {
		return errors.New("api.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if _, ok := validFormats[c.Output.Format]; !ok {
		return fmt.Errorf("output.format must be one of: table, json, csv (got %q)", c.Output.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	if _, ok := validLogLevels[level]; !ok {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error (got %q)", c.Logging.Level)
	}
	c.Logging.Level = level

	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format == "" {
		format = defaultLogFormat
	}
	if format != "console" && format != "json" {
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	c.Logging.Format = format
	return nil
}
